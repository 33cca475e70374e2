package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/shopspring/decimal"
)

// ConverterService converts amounts between currencies through their quotations
// against the common reference currency.
type ConverterService struct {
	BaseService
	resolver     portsrepo.CurrencyQuotationResolver
	transactions portsrepo.TransactionManager
}

var _ portssvc.ConverterSvc = (*ConverterService)(nil)

// NewConverterService creates a new ConverterService.
func NewConverterService(resolver portsrepo.CurrencyQuotationResolver, transactions portsrepo.TransactionManager) *ConverterService {
	return &ConverterService{resolver: resolver, transactions: transactions}
}

func (s *ConverterService) Convert(ctx context.Context, req dto.ConversionRequest) (*dto.ConversionResponse, error) {
	result, err := s.convert(ctx, req)
	if err != nil {
		return nil, err
	}
	res := dto.ToConversionResponse(result)
	return &res, nil
}

func (s *ConverterService) ConvertSnapshot(ctx context.Context, req dto.ConversionRequest) (*dto.ConversionResponse, error) {
	var result *domain.ConversionResult
	err := s.transactions.RunInTransaction(ctx, portsrepo.SnapshotTxOptions(), func(ctx context.Context) error {
		var err error
		result, err = s.convert(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	res := dto.ToConversionResponse(result)
	return &res, nil
}

func (s *ConverterService) convert(ctx context.Context, req dto.ConversionRequest) (*domain.ConversionResult, error) {
	asOf := req.Date.TimePtr()

	from, err := s.resolve(ctx, req.CurrencyAbbFrom, asOf, apperrors.ConversionSideFrom)
	if err != nil {
		return nil, err
	}
	to, err := s.resolve(ctx, req.CurrencyAbbTo, asOf, apperrors.ConversionSideTo)
	if err != nil {
		return nil, err
	}

	var value decimal.Decimal
	if req.Value != nil {
		value = decimal.NewFromFloat(*req.Value)
	}

	converted, err := ConvertValue(from.ExchangeRate, to.ExchangeRate, value)
	if err != nil {
		s.LogError(ctx, err, "Conversion has no defined result",
			slog.String("from", req.CurrencyAbbFrom),
			slog.String("to", req.CurrencyAbbTo))
		return nil, err
	}

	s.LogDebug(ctx, "Converted value",
		slog.String("from", req.CurrencyAbbFrom),
		slog.String("to", req.CurrencyAbbTo),
		slog.Int64("quotation_from", from.ID),
		slog.Int64("quotation_to", to.ID),
		slog.String("value", converted.String()))

	return &domain.ConversionResult{
		QuotationFrom: *from,
		QuotationTo:   *to,
		Value:         converted,
	}, nil
}

func (s *ConverterService) resolve(ctx context.Context, abb string, asOf *time.Time, side apperrors.ConversionSide) (*domain.CurrencyQuotation, error) {
	q, err := s.resolver.FindCurrencyQuotationByAbbAndDate(ctx, abb, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewConversionInputNotFound(side, err)
		}
		return nil, err
	}
	return q, nil
}

// ConvertValue converts value with the cross rate rateFrom/rateTo and rounds the
// result to domain.ConversionPrecision places. The cross rate itself is not rounded.
func ConvertValue(rateFrom, rateTo, value decimal.Decimal) (decimal.Decimal, error) {
	if !rateFrom.IsPositive() {
		return decimal.Zero, apperrors.NewArithmeticError("'from' exchange rate must be positive, got " + rateFrom.String())
	}
	if !rateTo.IsPositive() {
		return decimal.Zero, apperrors.NewArithmeticError("'to' exchange rate must be positive, got " + rateTo.String())
	}
	rate := rateFrom.DivRound(rateTo, divisionPrecision)
	return value.Mul(rate).Round(domain.ConversionPrecision), nil
}

// divisionPrecision is the scale the cross rate is computed to.
const divisionPrecision = 28
