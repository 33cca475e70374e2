package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyQuotation is the exchange rate of one currency on a calendar date.
// ExchangeRate is the number of units of the reference currency per one unit
// of the quoted currency. At most one quotation exists per currency and date.
type CurrencyQuotation struct {
	ID           int64           `json:"id"`
	CurrencyID   int64           `json:"currencyId"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Date         time.Time       `json:"date"` // Calendar date, UTC midnight
}

// ConversionResult holds the two quotations a conversion was computed from
// and the converted value rounded to ConversionPrecision places.
type ConversionResult struct {
	QuotationFrom CurrencyQuotation
	QuotationTo   CurrencyQuotation
	Value         decimal.Decimal
}

// ConversionPrecision is the number of decimal places a converted value is rounded to.
const ConversionPrecision = 3

// CalendarDate truncates t to its calendar date, expressed as UTC midnight.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
