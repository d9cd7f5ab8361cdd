package repositories

import (
	"context"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TagReader defines read operations for tags.
type TagReader interface {
	// ListTags returns all tags ordered by name.
	ListTags(ctx context.Context) ([]domain.Tag, error)

	// ListTagTotals returns the summed amount and transaction count of every tag in use.
	ListTagTotals(ctx context.Context) ([]domain.TagTotal, error)
}

// TagWriter defines tag writes. Each runs inside a caller-owned transaction.
type TagWriter interface {
	// GetOrCreateTagTx returns the tag called name, creating it with color when missing.
	// A concurrent creator of the same name resolves to the same row.
	GetOrCreateTagTx(ctx context.Context, tx pgx.Tx, name, color string) (*domain.Tag, error)

	// AssignTagTx returns apperrors.ErrNotFound when the transaction or the tag does not exist.
	AssignTagTx(ctx context.Context, tx pgx.Tx, transactionID, tagID int64) error

	// BulkAssignTagTx returns the number of transactions updated. Unknown ids are ignored.
	BulkAssignTagTx(ctx context.Context, tx pgx.Tx, transactionIDs []int64, tagID int64) (int64, error)
}

// TagRepositoryFacade combines all tag repository interfaces.
type TagRepositoryFacade interface {
	TagReader
	TagWriter
}

// TagRepositoryWithTx extends TagRepositoryFacade with transaction capabilities.
type TagRepositoryWithTx interface {
	TagRepositoryFacade
	TransactionManager
}
