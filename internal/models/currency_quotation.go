package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyQuotation is the row layout of the currency_quotation table.
type CurrencyQuotation struct {
	ID           int64           `db:"id"`            // Primary Key (BIGSERIAL)
	CurrencyID   int64           `db:"currency_id"`   // FK -> currency.id
	ExchangeRate decimal.Decimal `db:"exchange_rate"` // NUMERIC(18,3)
	Date         time.Time       `db:"date"`          // UNIQUE together with currency_id
}
