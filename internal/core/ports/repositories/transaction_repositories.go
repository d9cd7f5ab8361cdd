package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for imported transactions.
type TransactionReader interface {
	// FindTransactionByID returns apperrors.ErrNotFound when no row has the id.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// SearchTransactions returns one page of matching transactions and the total match count.
	SearchTransactions(ctx context.Context, filter domain.TransactionFilter, opts domain.ListOptions) (*domain.TransactionPage, error)

	// ListTransactions returns every matching transaction, newest accounting date first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// FindSimilarCandidates returns transactions sharing the description prefix, the
	// counterparty or the amount of ref. The result may include ref itself.
	FindSimilarCandidates(ctx context.Context, ref domain.Transaction, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines the import-time writes. Both run inside a caller-owned transaction.
type TransactionWriter interface {
	ExistsByNaturalKeyTx(ctx context.Context, tx pgx.Tx, key domain.NaturalKey) (bool, error)
	InsertTransactionsTx(ctx context.Context, tx pgx.Tx, batchID string, importedAt time.Time, drafts []domain.TransactionDraft) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
