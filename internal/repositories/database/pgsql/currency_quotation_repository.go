package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter/internal/models"
	"github.com/SscSPs/currency_converter/internal/utils/mapping"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"
)

const (
	currencyQuotationTable  = "currency_quotation"
	currencyQuotationEntity = "currency quotation"
)

var currencyQuotationColumns = []string{"id", "currency_id", "exchange_rate", "date"}

type PgxCurrencyQuotationRepository struct {
	BaseRepository
	now func() time.Time
}

// utcNow is the production clock; quotation dates are UTC calendar dates.
func utcNow() time.Time { return time.Now().UTC() }

// newPgxCurrencyQuotationRepository creates a new repository for quotation data.
// now supplies the default date of writes that omit one.
func newPgxCurrencyQuotationRepository(sessions *SessionManager, now func() time.Time) *PgxCurrencyQuotationRepository {
	if now == nil {
		now = utcNow
	}
	return &PgxCurrencyQuotationRepository{
		BaseRepository: BaseRepository{Sessions: sessions},
		now:            now,
	}
}

var _ portsrepo.CurrencyQuotationRepositoryFacade = (*PgxCurrencyQuotationRepository)(nil)

// ListCurrencyQuotations retrieves all quotations of one currency ordered by date.
func (r *PgxCurrencyQuotationRepository) ListCurrencyQuotations(ctx context.Context, currencyID int64) ([]domain.CurrencyQuotation, error) {
	query, args, err := r.Builder().
		Select(currencyQuotationColumns...).
		From(currencyQuotationTable).
		Where(squirrel.Eq{"currency_id": currencyID}).
		OrderBy("date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list quotations query: %w", err)
	}

	var rows []models.CurrencyQuotation
	err = r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations of currency %d: %w", currencyID, err)
	}

	return mapping.ToDomainCurrencyQuotationSlice(rows), nil
}

// FindCurrencyQuotationByID retrieves a quotation that matches both keys.
func (r *PgxCurrencyQuotationRepository) FindCurrencyQuotationByID(ctx context.Context, currencyID, quotationID int64) (*domain.CurrencyQuotation, error) {
	var row *models.CurrencyQuotation
	err := r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		var err error
		row, err = r.findQuotation(ctx, q, currencyID, quotationID, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	quotation := mapping.ToDomainCurrencyQuotation(*row)
	return &quotation, nil
}

// FindCurrencyQuotationByAbbAndDate resolves the quotation in effect for abb on asOf.
func (r *PgxCurrencyQuotationRepository) FindCurrencyQuotationByAbbAndDate(ctx context.Context, abb string, asOf *time.Time) (*domain.CurrencyQuotation, error) {
	query, args, err := asOfQuotationQuery(r.Builder(), abb, asOf).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build as-of quotation query: %w", err)
	}

	var row models.CurrencyQuotation
	err = r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		return pgxscan.Get(ctx, q, &row, query, args...)
	})
	if err != nil {
		if pgxscan.NotFound(err) {
			key := abb
			if asOf != nil {
				key = fmt.Sprintf("%s as of %s", abb, asOf.Format(time.DateOnly))
			}
			return nil, apperrors.NewNotFoundError(currencyQuotationEntity, key)
		}
		return nil, fmt.Errorf("failed to resolve quotation of %s: %w", abb, err)
	}

	quotation := mapping.ToDomainCurrencyQuotation(row)
	return &quotation, nil
}

// asOfQuotationQuery selects the latest quotation of abb not after asOf.
// Rows sharing the winning date are ordered by id so the latest insert wins.
func asOfQuotationQuery(b squirrel.StatementBuilderType, abb string, asOf *time.Time) squirrel.SelectBuilder {
	sb := b.Select("q.id", "q.currency_id", "q.exchange_rate", "q.date").
		From(currencyQuotationTable + " q").
		Join(currencyTable + " c ON c.id = q.currency_id").
		Where(squirrel.Eq{"c.abb": abb})
	if asOf != nil {
		sb = sb.Where(squirrel.LtOrEq{"q.date": domain.CalendarDate(*asOf)})
	}
	return sb.OrderBy("q.date DESC", "q.id DESC").Limit(1)
}

// CreateCurrencyQuotation inserts a quotation. A nil date means today.
func (r *PgxCurrencyQuotationRepository) CreateCurrencyQuotation(ctx context.Context, currencyID int64, rate decimal.Decimal, date *time.Time) (*domain.CurrencyQuotation, error) {
	query, args, err := r.Builder().
		Insert(currencyQuotationTable).
		Columns("currency_id", "exchange_rate", "date").
		Values(currencyID, rate, r.effectiveDate(date)).
		Suffix("RETURNING id, currency_id, exchange_rate, date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert quotation query: %w", err)
	}

	var row models.CurrencyQuotation
	err = r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
			return translateWriteError(err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quotation for currency %d: %w", currencyID, err)
	}

	quotation := mapping.ToDomainCurrencyQuotation(row)
	return &quotation, nil
}

// UpdateCurrencyQuotation overwrites rate and date of an existing quotation.
// A nil date resets it to today.
func (r *PgxCurrencyQuotationRepository) UpdateCurrencyQuotation(ctx context.Context, currencyID, quotationID int64, rate decimal.Decimal, date *time.Time) (*domain.CurrencyQuotation, error) {
	query, args, err := r.Builder().
		Update(currencyQuotationTable).
		Set("exchange_rate", rate).
		Set("date", r.effectiveDate(date)).
		Where(squirrel.Eq{"id": quotationID, "currency_id": currencyID}).
		Suffix("RETURNING id, currency_id, exchange_rate, date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update quotation query: %w", err)
	}

	var row models.CurrencyQuotation
	err = r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		if _, err := r.findQuotation(ctx, q, currencyID, quotationID, true); err != nil {
			return err
		}
		if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
			return fmt.Errorf("failed to update quotation %d: %w", quotationID, translateWriteError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	quotation := mapping.ToDomainCurrencyQuotation(row)
	return &quotation, nil
}

// DeleteCurrencyQuotation removes a quotation that matches both keys.
func (r *PgxCurrencyQuotationRepository) DeleteCurrencyQuotation(ctx context.Context, currencyID, quotationID int64) error {
	query, args, err := r.Builder().
		Delete(currencyQuotationTable).
		Where(squirrel.Eq{"id": quotationID, "currency_id": currencyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete quotation query: %w", err)
	}

	return r.Sessions.WithSession(ctx, func(ctx context.Context, q Querier) error {
		if _, err := r.findQuotation(ctx, q, currencyID, quotationID, true); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete quotation %d: %w", quotationID, translateWriteError(err))
		}
		return nil
	})
}

func (r *PgxCurrencyQuotationRepository) findQuotation(ctx context.Context, q Querier, currencyID, quotationID int64, forUpdate bool) (*models.CurrencyQuotation, error) {
	sb := r.Builder().
		Select(currencyQuotationColumns...).
		From(currencyQuotationTable).
		Where(squirrel.Eq{"id": quotationID, "currency_id": currencyID})
	if forUpdate {
		sb = sb.Suffix("FOR UPDATE")
	}
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find quotation query: %w", err)
	}

	var row models.CurrencyQuotation
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperrors.NewNotFoundError(currencyQuotationEntity, fmt.Sprintf("%d/%d", currencyID, quotationID))
		}
		return nil, fmt.Errorf("failed to find quotation %d of currency %d: %w", quotationID, currencyID, err)
	}
	return &row, nil
}

func (r *PgxCurrencyQuotationRepository) effectiveDate(date *time.Time) time.Time {
	if date == nil {
		return domain.CalendarDate(r.now())
	}
	return domain.CalendarDate(*date)
}
