package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens and closes database transactions for services that need
// several repository calls to succeed or fail together.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on a transaction that was already committed.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
