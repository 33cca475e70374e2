package pgsql

import (
	"log/slog"

	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository over one session manager bound to dbPool.
func NewRepositoryProvider(dbPool *pgxpool.Pool, logger *slog.Logger) portsrepo.RepositoryProvider {
	sessions := NewSessionManager(dbPool, logger)

	return portsrepo.RepositoryProvider{
		CurrencyRepo:          newPgxCurrencyRepository(sessions),
		CurrencyQuotationRepo: newPgxCurrencyQuotationRepository(sessions, utcNow),
		Transactions:          sessions,
		Health:                sessions,
	}
}
