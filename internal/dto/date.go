package dto

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

// Date is a calendar date serialised as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate wraps t truncated to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	parsed, err := ParseDate(strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// TimePtr returns the date as a *time.Time, nil when d is nil.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
