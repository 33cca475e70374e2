package pgsql

import "time"

// NewCurrencyQuotationRepositoryWithClock builds a quotation repository whose default date comes from now.
func NewCurrencyQuotationRepositoryWithClock(sessions *SessionManager, now func() time.Time) *PgxCurrencyQuotationRepository {
	return newPgxCurrencyQuotationRepository(sessions, now)
}
