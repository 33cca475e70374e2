package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter/internal/models"
	"github.com/SscSPs/currency_converter/internal/utils/mapping"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const currencyTable = "currency"

var currencyColumns = []string{"id", "abb", "name"}

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(sessions *SessionManager) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Sessions: sessions},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// ListCurrencies retrieves all currencies in store order.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query, args, err := r.Builder().Select(currencyColumns...).From(currencyTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list currencies query: %w", err)
	}

	var modelCurrencies []models.Currency
	err = r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &modelCurrencies, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	var modelCurr *models.Currency
	err := r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		var err error
		modelCurr, err = r.findCurrency(ctx, q, currencyID, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	domainCurr := mapping.ToDomainCurrency(*modelCurr)
	return &domainCurr, nil
}

// CreateCurrency inserts a currency and returns it with the generated id.
func (r *PgxCurrencyRepository) CreateCurrency(ctx context.Context, abb, name string) (*domain.Currency, error) {
	query, args, err := r.Builder().
		Insert(currencyTable).
		Columns("abb", "name").
		Values(abb, name).
		Suffix("RETURNING id, abb, name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert currency query: %w", err)
	}

	var modelCurr models.Currency
	err = r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		if err := pgxscan.Get(ctx, q, &modelCurr, query, args...); err != nil {
			return translateWriteError(err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create currency %s: %w", abb, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// UpdateCurrency loads the currency, overwrites abb and name and persists it.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currencyID int64, abb, name string) (*domain.Currency, error) {
	query, args, err := r.Builder().
		Update(currencyTable).
		Set("abb", abb).
		Set("name", name).
		Where(squirrel.Eq{"id": currencyID}).
		Suffix("RETURNING id, abb, name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update currency query: %w", err)
	}

	var modelCurr models.Currency
	err = r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		if _, err := r.findCurrency(ctx, q, currencyID, true); err != nil {
			return err
		}
		if err := pgxscan.Get(ctx, q, &modelCurr, query, args...); err != nil {
			return fmt.Errorf("failed to update currency %d: %w", currencyID, translateWriteError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// DeleteCurrency loads and deletes a currency. Quotations still referencing it
// make the store reject the delete as an integrity violation.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	query, args, err := r.Builder().
		Delete(currencyTable).
		Where(squirrel.Eq{"id": currencyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete currency query: %w", err)
	}

	return r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		if _, err := r.findCurrency(ctx, q, currencyID, true); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete currency %d: %w", currencyID, translateWriteError(err))
		}
		return nil
	})
}

func (r *PgxCurrencyRepository) findCurrency(ctx context.Context, q Querier, currencyID int64, forUpdate bool) (*models.Currency, error) {
	sb := r.Builder().
		Select(currencyColumns...).
		From(currencyTable).
		Where(squirrel.Eq{"id": currencyID})
	if forUpdate {
		sb = sb.Suffix("FOR UPDATE")
	}
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find currency query: %w", err)
	}

	var modelCurr models.Currency
	if err := pgxscan.Get(ctx, q, &modelCurr, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperrors.NewNotFoundError("currency", currencyID)
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}
	return &modelCurr, nil
}
