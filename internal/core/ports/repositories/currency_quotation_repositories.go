package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyQuotationReader defines read operations for quotation data
type CurrencyQuotationReader interface {
	// ListCurrencyQuotations retrieves all quotations of one currency.
	ListCurrencyQuotations(ctx context.Context, currencyID int64) ([]domain.CurrencyQuotation, error)

	// FindCurrencyQuotationByID retrieves a quotation matching both the currency and the quotation id.
	FindCurrencyQuotationByID(ctx context.Context, currencyID, quotationID int64) (*domain.CurrencyQuotation, error)
}

// CurrencyQuotationResolver resolves the quotation in effect on a date.
type CurrencyQuotationResolver interface {
	// FindCurrencyQuotationByAbbAndDate returns the most recent quotation of the currency
	// with the given abb whose date is not later than asOf. A nil asOf means no upper bound.
	FindCurrencyQuotationByAbbAndDate(ctx context.Context, abb string, asOf *time.Time) (*domain.CurrencyQuotation, error)
}

// CurrencyQuotationWriter defines write operations for quotation data.
// A nil date means the current calendar date.
type CurrencyQuotationWriter interface {
	CreateCurrencyQuotation(ctx context.Context, currencyID int64, rate decimal.Decimal, date *time.Time) (*domain.CurrencyQuotation, error)
	UpdateCurrencyQuotation(ctx context.Context, currencyID, quotationID int64, rate decimal.Decimal, date *time.Time) (*domain.CurrencyQuotation, error)
	DeleteCurrencyQuotation(ctx context.Context, currencyID, quotationID int64) error
}

// CurrencyQuotationRepositoryFacade combines all quotation-related repository interfaces
type CurrencyQuotationRepositoryFacade interface {
	CurrencyQuotationReader
	CurrencyQuotationResolver
	CurrencyQuotationWriter
}
