package pgsql

import (
	portsrepo "github.com/SscSPs/statement_analytics/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		TagRepo:         newPgxTagRepository(dbPool),
		SummaryRepo:     newPgxSummaryRepository(dbPool),
	}
}
