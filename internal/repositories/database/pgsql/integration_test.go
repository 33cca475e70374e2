package pgsql_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_converter/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RepositoryIntegrationSuite runs against a real PostgreSQL given by PGSQL_TEST_URL.
type RepositoryIntegrationSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	logger *slog.Logger
	repos  portsrepo.RepositoryProvider
}

func TestRepositoryIntegration(t *testing.T) {
	if os.Getenv("PGSQL_TEST_URL") == "" {
		t.Skip("PGSQL_TEST_URL not set, skipping repository integration tests")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	url := os.Getenv("PGSQL_TEST_URL")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.logger = logger

	s.Require().NoError(database.RunMigrations(url, "file://../../../../migrations", logger))

	pool, err := database.NewPgxPool(context.Background(), url, database.PoolOptions{Ping: true}, logger)
	s.Require().NoError(err)
	s.pool = pool
	s.repos = pgsql.NewRepositoryProvider(pool, logger)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE currency_quotation, currency RESTART IDENTITY")
	s.Require().NoError(err)
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func (s *RepositoryIntegrationSuite) TestCurrencyRoundTrip() {
	ctx := context.Background()

	created, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)
	s.Positive(created.ID)

	found, err := s.repos.CurrencyRepo.FindCurrencyByID(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(*created, *found)

	updated, err := s.repos.CurrencyRepo.UpdateCurrency(ctx, created.ID, "USN", "US Dollar Next Day")
	s.Require().NoError(err)
	s.Equal("USN", updated.Abb)

	list, err := s.repos.CurrencyRepo.ListCurrencies(ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *RepositoryIntegrationSuite) TestCurrencyAbbIsUnique() {
	ctx := context.Background()

	_, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)

	_, err = s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "Another Dollar")
	s.ErrorIs(err, apperrors.ErrIntegrityViolation)

	list, err := s.repos.CurrencyRepo.ListCurrencies(ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *RepositoryIntegrationSuite) TestDeleteIsNotIdempotent() {
	ctx := context.Background()

	created, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "GBP", "Pound Sterling")
	s.Require().NoError(err)

	s.Require().NoError(s.repos.CurrencyRepo.DeleteCurrency(ctx, created.ID))
	s.ErrorIs(s.repos.CurrencyRepo.DeleteCurrency(ctx, created.ID), apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestDeleteReferencedCurrencyIsRejected() {
	ctx := context.Background()

	usd, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)
	_, err = s.repos.CurrencyQuotationRepo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.0"), day(2023, 1, 1))
	s.Require().NoError(err)

	s.ErrorIs(s.repos.CurrencyRepo.DeleteCurrency(ctx, usd.ID), apperrors.ErrIntegrityViolation)
}

func (s *RepositoryIntegrationSuite) TestQuotationAsOfResolution() {
	ctx := context.Background()
	repo := s.repos.CurrencyQuotationRepo

	usd, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)
	jan, err := repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.0"), day(2023, 1, 1))
	s.Require().NoError(err)
	feb, err := repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.2"), day(2023, 2, 1))
	s.Require().NoError(err)

	got, err := repo.FindCurrencyQuotationByAbbAndDate(ctx, "USD", day(2023, 1, 15))
	s.Require().NoError(err)
	s.Equal(jan.ID, got.ID)

	got, err = repo.FindCurrencyQuotationByAbbAndDate(ctx, "USD", day(2023, 3, 1))
	s.Require().NoError(err)
	s.Equal(feb.ID, got.ID)
	s.True(decimal.RequireFromString("5.2").Equal(got.ExchangeRate))

	_, err = repo.FindCurrencyQuotationByAbbAndDate(ctx, "USD", day(2022, 12, 31))
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = repo.FindCurrencyQuotationByAbbAndDate(ctx, "XXX", nil)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestQuotationDateIsUniquePerCurrency() {
	ctx := context.Background()
	repo := s.repos.CurrencyQuotationRepo

	usd, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)
	_, err = repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.0"), day(2023, 1, 1))
	s.Require().NoError(err)

	_, err = repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("6.0"), day(2023, 1, 1))
	s.ErrorIs(err, apperrors.ErrIntegrityViolation)

	list, err := repo.ListCurrencyQuotations(ctx, usd.ID)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *RepositoryIntegrationSuite) TestQuotationRequiresMatchingCurrency() {
	ctx := context.Background()
	repo := s.repos.CurrencyQuotationRepo

	usd, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)
	eur, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "EUR", "Euro")
	s.Require().NoError(err)
	q, err := repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.0"), day(2023, 1, 1))
	s.Require().NoError(err)

	_, err = repo.FindCurrencyQuotationByID(ctx, eur.ID, q.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = repo.CreateCurrencyQuotation(ctx, 999999, decimal.RequireFromString("1.0"), nil)
	s.ErrorIs(err, apperrors.ErrIntegrityViolation)
}

func (s *RepositoryIntegrationSuite) TestSnapshotScopeSharesOneTransaction() {
	ctx := context.Background()
	repo := s.repos.CurrencyQuotationRepo

	usd, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)
	_, err = repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.0"), day(2023, 1, 1))
	s.Require().NoError(err)

	err = s.repos.Transactions.RunInTransaction(ctx, portsrepo.SnapshotTxOptions(), func(ctx context.Context) error {
		if _, err := repo.FindCurrencyQuotationByAbbAndDate(ctx, "USD", nil); err != nil {
			return err
		}
		_, err := repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("6.0"), day(2023, 2, 1))
		return err
	})
	s.Error(err, "writes are rejected inside a read-only snapshot")

	list, err := repo.ListCurrencyQuotations(ctx, usd.ID)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *RepositoryIntegrationSuite) TestUpdateCurrencyConflictsAndMissing() {
	ctx := context.Background()
	repo := s.repos.CurrencyRepo

	_, err := repo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)
	eur, err := repo.CreateCurrency(ctx, "EUR", "Euro")
	s.Require().NoError(err)

	_, err = repo.UpdateCurrency(ctx, eur.ID, "USD", "Euro")
	s.ErrorIs(err, apperrors.ErrIntegrityViolation)

	found, err := repo.FindCurrencyByID(ctx, eur.ID)
	s.Require().NoError(err)
	s.Equal("EUR", found.Abb, "failed update leaves the row unchanged")

	_, err = repo.UpdateCurrency(ctx, eur.ID+1000, "GBP", "Pound Sterling")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestUpdateQuotationOntoTakenDate() {
	ctx := context.Background()
	repo := s.repos.CurrencyQuotationRepo

	usd, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)
	_, err = repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.0"), day(2023, 1, 1))
	s.Require().NoError(err)
	feb, err := repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.2"), day(2023, 2, 1))
	s.Require().NoError(err)

	_, err = repo.UpdateCurrencyQuotation(ctx, usd.ID, feb.ID, decimal.RequireFromString("5.3"), day(2023, 1, 1))
	s.ErrorIs(err, apperrors.ErrIntegrityViolation)

	updated, err := repo.UpdateCurrencyQuotation(ctx, usd.ID, feb.ID, decimal.RequireFromString("5.3"), day(2023, 3, 1))
	s.Require().NoError(err)
	s.Equal(*day(2023, 3, 1), updated.Date)
	s.True(decimal.RequireFromString("5.3").Equal(updated.ExchangeRate))
}

func (s *RepositoryIntegrationSuite) TestQuotationUpdateAndDeleteRequireMatchingRow() {
	ctx := context.Background()
	repo := s.repos.CurrencyQuotationRepo

	usd, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)
	eur, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "EUR", "Euro")
	s.Require().NoError(err)
	q, err := repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.0"), day(2023, 1, 1))
	s.Require().NoError(err)

	_, err = repo.UpdateCurrencyQuotation(ctx, eur.ID, q.ID, decimal.RequireFromString("6.0"), nil)
	s.ErrorIs(err, apperrors.ErrNotFound, "quotation belongs to another currency")
	_, err = repo.UpdateCurrencyQuotation(ctx, usd.ID, q.ID+1000, decimal.RequireFromString("6.0"), nil)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.ErrorIs(repo.DeleteCurrencyQuotation(ctx, eur.ID, q.ID), apperrors.ErrNotFound)
	s.ErrorIs(repo.DeleteCurrencyQuotation(ctx, usd.ID, q.ID+1000), apperrors.ErrNotFound)

	s.Require().NoError(repo.DeleteCurrencyQuotation(ctx, usd.ID, q.ID))
	s.ErrorIs(repo.DeleteCurrencyQuotation(ctx, usd.ID, q.ID), apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestCreateQuotationDefaultsToClockDate() {
	ctx := context.Background()
	sessions := pgsql.NewSessionManager(s.pool, s.logger)
	fixed := time.Date(2024, 6, 30, 22, 15, 0, 0, time.UTC)
	repo := pgsql.NewCurrencyQuotationRepositoryWithClock(sessions, func() time.Time { return fixed })

	usd, err := s.repos.CurrencyRepo.CreateCurrency(ctx, "USD", "US Dollar")
	s.Require().NoError(err)

	created, err := repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.0"), nil)
	s.Require().NoError(err)
	s.Equal(*day(2024, 6, 30), created.Date)

	stored, err := repo.FindCurrencyQuotationByID(ctx, usd.ID, created.ID)
	s.Require().NoError(err)
	s.Equal(*day(2024, 6, 30), stored.Date)

	_, err = repo.CreateCurrencyQuotation(ctx, usd.ID, decimal.RequireFromString("5.1"), nil)
	s.ErrorIs(err, apperrors.ErrIntegrityViolation, "second quotation for the same default date")
}
