package models

// Currency is the row layout of the currency table.
type Currency struct {
	ID   int64  `db:"id"`   // Primary Key (BIGSERIAL)
	Abb  string `db:"abb"`  // UNIQUE, e.g. "USD"
	Name string `db:"name"` // e.g. "US Dollar"
}
