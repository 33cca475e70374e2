package handlers_test

import (
	"context"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]dto.CurrencyResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CurrencyResponse), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*dto.CurrencyResponse, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CurrencyResponse), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CurrencyRequest) (*dto.CurrencyResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CurrencyResponse), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.CurrencyRequest) (*dto.CurrencyResponse, error) {
	args := m.Called(ctx, currencyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CurrencyResponse), args.Error(1)
}

func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, currencyID int64) error {
	return m.Called(ctx, currencyID).Error(0)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock CurrencyQuotationService ---
type MockCurrencyQuotationService struct {
	mock.Mock
}

func (m *MockCurrencyQuotationService) ListCurrencyQuotations(ctx context.Context, currencyID int64) ([]dto.CurrencyQuotationResponse, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CurrencyQuotationResponse), args.Error(1)
}

func (m *MockCurrencyQuotationService) GetCurrencyQuotationByID(ctx context.Context, currencyID, quotationID int64) (*dto.CurrencyQuotationResponse, error) {
	args := m.Called(ctx, currencyID, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CurrencyQuotationResponse), args.Error(1)
}

func (m *MockCurrencyQuotationService) CreateCurrencyQuotation(ctx context.Context, currencyID int64, req dto.CurrencyQuotationRequest) (*dto.CurrencyQuotationResponse, error) {
	args := m.Called(ctx, currencyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CurrencyQuotationResponse), args.Error(1)
}

func (m *MockCurrencyQuotationService) UpdateCurrencyQuotation(ctx context.Context, currencyID, quotationID int64, req dto.CurrencyQuotationRequest) (*dto.CurrencyQuotationResponse, error) {
	args := m.Called(ctx, currencyID, quotationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CurrencyQuotationResponse), args.Error(1)
}

func (m *MockCurrencyQuotationService) DeleteCurrencyQuotation(ctx context.Context, currencyID, quotationID int64) error {
	return m.Called(ctx, currencyID, quotationID).Error(0)
}

var _ portssvc.CurrencyQuotationSvcFacade = (*MockCurrencyQuotationService)(nil)

// --- Mock ConverterService ---
type MockConverterService struct {
	mock.Mock
}

func (m *MockConverterService) Convert(ctx context.Context, req dto.ConversionRequest) (*dto.ConversionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConversionResponse), args.Error(1)
}

func (m *MockConverterService) ConvertSnapshot(ctx context.Context, req dto.ConversionRequest) (*dto.ConversionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConversionResponse), args.Error(1)
}

var _ portssvc.ConverterSvc = (*MockConverterService)(nil)

// --- Mock HealthService ---
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
