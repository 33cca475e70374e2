package pgsql

import (
	"errors"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateWriteError turns constraint failures and out-of-range numeric values
// reported by PostgreSQL into apperrors.IntegrityViolationError. Other errors
// are returned unchanged.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NumericValueOutOfRange:
		detail := pgErr.Detail
		if detail == "" {
			detail = pgErr.Message
		}
		return apperrors.NewIntegrityViolation(pgErr.ConstraintName, detail, err)
	}
	return err
}
