package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyQuotationService manages the dated exchange rates of a currency.
type CurrencyQuotationService struct {
	BaseService
	quotationRepo portsrepo.CurrencyQuotationRepositoryFacade
}

var _ portssvc.CurrencyQuotationSvcFacade = (*CurrencyQuotationService)(nil)

// NewCurrencyQuotationService creates a new CurrencyQuotationService.
func NewCurrencyQuotationService(quotationRepo portsrepo.CurrencyQuotationRepositoryFacade) *CurrencyQuotationService {
	return &CurrencyQuotationService{quotationRepo: quotationRepo}
}

func (s *CurrencyQuotationService) ListCurrencyQuotations(ctx context.Context, currencyID int64) ([]dto.CurrencyQuotationResponse, error) {
	quotations, err := s.quotationRepo.ListCurrencyQuotations(ctx, currencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quotations", slog.Int64("currency_id", currencyID))
		return nil, err
	}
	return dto.ToListCurrencyQuotationResponse(quotations), nil
}

func (s *CurrencyQuotationService) GetCurrencyQuotationByID(ctx context.Context, currencyID, quotationID int64) (*dto.CurrencyQuotationResponse, error) {
	quotation, err := s.quotationRepo.FindCurrencyQuotationByID(ctx, currencyID, quotationID)
	if err != nil {
		return nil, err
	}
	res := dto.ToCurrencyQuotationResponse(quotation)
	return &res, nil
}

// CreateCurrencyQuotation records a rate for the currency. A request without a
// date is recorded for today.
func (s *CurrencyQuotationService) CreateCurrencyQuotation(ctx context.Context, currencyID int64, req dto.CurrencyQuotationRequest) (*dto.CurrencyQuotationResponse, error) {
	quotation, err := s.quotationRepo.CreateCurrencyQuotation(ctx, currencyID, decimal.NewFromFloat(req.ExchangeRate), req.Date.TimePtr())
	if err != nil {
		s.LogError(ctx, err, "Failed to create quotation", slog.Int64("currency_id", currencyID))
		return nil, err
	}
	s.LogInfo(ctx, "Quotation created",
		slog.Int64("currency_id", currencyID),
		slog.Int64("quotation_id", quotation.ID),
		slog.String("exchange_rate", quotation.ExchangeRate.String()))
	res := dto.ToCurrencyQuotationResponse(quotation)
	return &res, nil
}

func (s *CurrencyQuotationService) UpdateCurrencyQuotation(ctx context.Context, currencyID, quotationID int64, req dto.CurrencyQuotationRequest) (*dto.CurrencyQuotationResponse, error) {
	quotation, err := s.quotationRepo.UpdateCurrencyQuotation(ctx, currencyID, quotationID, decimal.NewFromFloat(req.ExchangeRate), req.Date.TimePtr())
	if err != nil {
		return nil, err
	}
	res := dto.ToCurrencyQuotationResponse(quotation)
	return &res, nil
}

func (s *CurrencyQuotationService) DeleteCurrencyQuotation(ctx context.Context, currencyID, quotationID int64) error {
	return s.quotationRepo.DeleteCurrencyQuotation(ctx, currencyID, quotationID)
}
