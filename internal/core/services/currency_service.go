package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
)

type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]dto.CurrencyResponse, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, err
	}
	return dto.ToListCurrencyResponse(currencies), nil
}

func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*dto.CurrencyResponse, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	res := dto.ToCurrencyResponse(currency)
	return &res, nil
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CurrencyRequest) (*dto.CurrencyResponse, error) {
	currency, err := s.currencyRepo.CreateCurrency(ctx, req.Abb, req.Name)
	if err != nil {
		s.LogError(ctx, err, "Failed to create currency", slog.String("abb", req.Abb))
		return nil, err
	}
	s.LogInfo(ctx, "Currency created", slog.Int64("currency_id", currency.ID), slog.String("abb", currency.Abb))
	res := dto.ToCurrencyResponse(currency)
	return &res, nil
}

func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.CurrencyRequest) (*dto.CurrencyResponse, error) {
	currency, err := s.currencyRepo.UpdateCurrency(ctx, currencyID, req.Abb, req.Name)
	if err != nil {
		return nil, err
	}
	res := dto.ToCurrencyResponse(currency)
	return &res, nil
}

func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyID int64) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Currency deleted", slog.Int64("currency_id", currencyID))
	return nil
}
