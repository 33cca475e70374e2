package mapping

import (
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/models"
)

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:   m.ID,
		Abb:  m.Abb,
		Name: m.Name,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
