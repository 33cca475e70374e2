package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxOptions configures an explicit multi-operation transaction scope.
type TxOptions struct {
	IsoLevel   pgx.TxIsoLevel
	AccessMode pgx.TxAccessMode
}

// TransactionManager exposes an explicit transaction spanning several repository calls.
// Repository calls made with the context passed to fn join that transaction instead of
// opening their own session; fn's error decides commit or rollback.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, opts TxOptions, fn func(ctx context.Context) error) error
}

// HealthChecker reports whether the underlying store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// DefaultTxOptions is the isolation a single repository call runs with.
func DefaultTxOptions() TxOptions {
	return TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}
}

// SnapshotTxOptions gives every read inside the scope the same snapshot.
func SnapshotTxOptions() TxOptions {
	return TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
}
