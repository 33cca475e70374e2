package mapping

import (
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/models"
)

// ToDomainCurrencyQuotation converts a model CurrencyQuotation to a domain CurrencyQuotation.
// The DATE column comes back at midnight in the session time zone; it is normalised to UTC.
func ToDomainCurrencyQuotation(m models.CurrencyQuotation) domain.CurrencyQuotation {
	return domain.CurrencyQuotation{
		ID:           m.ID,
		CurrencyID:   m.CurrencyID,
		ExchangeRate: m.ExchangeRate,
		Date:         domain.CalendarDate(m.Date),
	}
}

// ToDomainCurrencyQuotationSlice converts model quotations to domain quotations
func ToDomainCurrencyQuotationSlice(ms []models.CurrencyQuotation) []domain.CurrencyQuotation {
	ds := make([]domain.CurrencyQuotation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrencyQuotation(m)
	}
	return ds
}
