package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/SscSPs/currency_converter/pgsql")

// Querier is the part of a session repositories run statements against.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txBeginner is satisfied by *pgxpool.Pool.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// sessionKey is the context key of a transaction opened by RunInTransaction.
type sessionKey struct{}

// SessionManager hands out transactional units of work bound to the store.
// Each WithSession call is its own transaction unless the context already
// carries one opened by RunInTransaction.
type SessionManager struct {
	db     txBeginner
	logger *slog.Logger
}

// NewSessionManager creates a SessionManager over the given pool.
func NewSessionManager(db txBeginner, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{db: db, logger: logger}
}

var _ portsrepo.TransactionManager = (*SessionManager)(nil)
var _ portsrepo.HealthChecker = (*SessionManager)(nil)

// WithSession runs work inside a transaction. The transaction is committed when
// work returns nil and rolled back when it returns an error or panics. Commit and
// Rollback both hand the connection back to the pool.
func (m *SessionManager) WithSession(ctx context.Context, work func(ctx context.Context, q Querier) error) error {
	if tx, ok := ctx.Value(sessionKey{}).(pgx.Tx); ok {
		return work(ctx, tx)
	}
	return m.run(ctx, portsrepo.DefaultTxOptions(), func(ctx context.Context, tx pgx.Tx) error {
		return work(ctx, tx)
	})
}

// RunInTransaction opens one transaction for every WithSession call made with
// the context passed to fn. Nested calls reuse the outer transaction.
func (m *SessionManager) RunInTransaction(ctx context.Context, opts portsrepo.TxOptions, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(sessionKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return m.run(ctx, opts, func(ctx context.Context, tx pgx.Tx) error {
		return fn(context.WithValue(ctx, sessionKey{}, tx))
	})
}

// Ping checks that the store is reachable.
func (m *SessionManager) Ping(ctx context.Context) error {
	return m.db.Ping(ctx)
}

func (m *SessionManager) run(ctx context.Context, opts portsrepo.TxOptions, work func(ctx context.Context, tx pgx.Tx) error) error {
	ctx, span := tracer.Start(ctx, "session",
		trace.WithAttributes(
			attribute.String("tx.isolation", string(opts.IsoLevel)),
			attribute.String("tx.access_mode", string(opts.AccessMode)),
		))
	defer span.End()

	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: opts.IsoLevel, AccessMode: opts.AccessMode})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			m.rollback(ctx, tx, fmt.Errorf("panic: %v", p))
			panic(p)
		}
	}()

	if err := work(ctx, tx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		m.rollback(ctx, tx, err)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to commit transaction: %w", translateWriteError(err))
	}
	return nil
}

// rollback runs on a context detached from cancellation so the connection is
// always released.
func (m *SessionManager) rollback(ctx context.Context, tx pgx.Tx, cause error) {
	m.logger.Debug("Session rollback because of error", slog.String("error", cause.Error()))
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		m.logger.Error("Failed to rollback transaction",
			slog.String("error", err.Error()),
			slog.String("original_error", cause.Error()))
	}
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Sessions *SessionManager
}

// Builder returns a squirrel builder with PostgreSQL placeholders.
func (r *BaseRepository) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
