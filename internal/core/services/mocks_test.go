package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) CreateCurrency(ctx context.Context, abb, name string) (*domain.Currency, error) {
	args := m.Called(ctx, abb, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currencyID int64, abb, name string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, abb, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

// --- Mock CurrencyQuotationRepository ---
type MockCurrencyQuotationRepository struct {
	mock.Mock
}

func (m *MockCurrencyQuotationRepository) ListCurrencyQuotations(ctx context.Context, currencyID int64) ([]domain.CurrencyQuotation, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyQuotation), args.Error(1)
}

func (m *MockCurrencyQuotationRepository) FindCurrencyQuotationByID(ctx context.Context, currencyID, quotationID int64) (*domain.CurrencyQuotation, error) {
	args := m.Called(ctx, currencyID, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyQuotation), args.Error(1)
}

func (m *MockCurrencyQuotationRepository) FindCurrencyQuotationByAbbAndDate(ctx context.Context, abb string, asOf *time.Time) (*domain.CurrencyQuotation, error) {
	args := m.Called(ctx, abb, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyQuotation), args.Error(1)
}

func (m *MockCurrencyQuotationRepository) CreateCurrencyQuotation(ctx context.Context, currencyID int64, rate decimal.Decimal, date *time.Time) (*domain.CurrencyQuotation, error) {
	args := m.Called(ctx, currencyID, rate, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyQuotation), args.Error(1)
}

func (m *MockCurrencyQuotationRepository) UpdateCurrencyQuotation(ctx context.Context, currencyID, quotationID int64, rate decimal.Decimal, date *time.Time) (*domain.CurrencyQuotation, error) {
	args := m.Called(ctx, currencyID, quotationID, rate, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyQuotation), args.Error(1)
}

func (m *MockCurrencyQuotationRepository) DeleteCurrencyQuotation(ctx context.Context, currencyID, quotationID int64) error {
	args := m.Called(ctx, currencyID, quotationID)
	return args.Error(0)
}

// --- Mock TransactionManager ---
type MockTransactionManager struct {
	mock.Mock
}

// RunInTransaction records the call and runs fn with a marked context.
func (m *MockTransactionManager) RunInTransaction(ctx context.Context, opts portsrepo.TxOptions, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, opts)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(context.WithValue(ctx, inTxKey{}, true))
}

type inTxKey struct{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(inTxKey{}).(bool)
	return v
}

// --- Mock HealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
