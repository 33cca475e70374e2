package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/dto"
)

// CurrencyQuotationReaderSvc defines read operations for quotation data
type CurrencyQuotationReaderSvc interface {
	ListCurrencyQuotations(ctx context.Context, currencyID int64) ([]dto.CurrencyQuotationResponse, error)
	GetCurrencyQuotationByID(ctx context.Context, currencyID, quotationID int64) (*dto.CurrencyQuotationResponse, error)
}

// CurrencyQuotationWriterSvc defines write operations for quotation data
type CurrencyQuotationWriterSvc interface {
	CreateCurrencyQuotation(ctx context.Context, currencyID int64, req dto.CurrencyQuotationRequest) (*dto.CurrencyQuotationResponse, error)
	UpdateCurrencyQuotation(ctx context.Context, currencyID, quotationID int64, req dto.CurrencyQuotationRequest) (*dto.CurrencyQuotationResponse, error)
	DeleteCurrencyQuotation(ctx context.Context, currencyID, quotationID int64) error
}

// CurrencyQuotationSvcFacade combines all quotation-related service interfaces
type CurrencyQuotationSvcFacade interface {
	CurrencyQuotationReaderSvc
	CurrencyQuotationWriterSvc
}
