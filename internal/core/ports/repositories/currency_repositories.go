package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// ListCurrencies retrieves all currencies in store order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// FindCurrencyByID retrieves a specific currency by its id.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// CreateCurrency inserts a currency and returns it with its generated id.
	CreateCurrency(ctx context.Context, abb, name string) (*domain.Currency, error)

	// UpdateCurrency overwrites abb and name of an existing currency.
	UpdateCurrency(ctx context.Context, currencyID int64, abb, name string) (*domain.Currency, error)

	// DeleteCurrency removes an existing currency.
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
