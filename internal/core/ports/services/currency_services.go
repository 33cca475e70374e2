package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves all currencies.
	ListCurrencies(ctx context.Context) ([]dto.CurrencyResponse, error)

	// GetCurrencyByID retrieves a specific currency by its id.
	GetCurrencyByID(ctx context.Context, currencyID int64) (*dto.CurrencyResponse, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	CreateCurrency(ctx context.Context, req dto.CurrencyRequest) (*dto.CurrencyResponse, error)
	UpdateCurrency(ctx context.Context, currencyID int64, req dto.CurrencyRequest) (*dto.CurrencyResponse, error)
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
