package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/statement_analytics/internal/apperrors"
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_analytics/internal/core/ports/repositories"
	"github.com/SscSPs/statement_analytics/internal/models"
	"github.com/SscSPs/statement_analytics/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTagRepository struct {
	BaseRepository
}

// newPgxTagRepository creates a new repository for tags.
func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepositoryWithTx {
	return &PgxTagRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TagRepositoryWithTx = (*PgxTagRepository)(nil)

// GetOrCreateTagTx inserts the tag unless the name is taken, then reads it back. A
// concurrent creator that wins the insert is resolved by the read.
func (r *PgxTagRepository) GetOrCreateTagTx(ctx context.Context, tx pgx.Tx, name, color string) (*domain.Tag, error) {
	if _, err := tx.Exec(ctx, `INSERT INTO tags (name, color) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING;`, name, color); err != nil {
		return nil, apperrors.NewAppError(500, "failed to create tag "+name, err)
	}

	var m models.Tag
	err := tx.QueryRow(ctx, `SELECT id, name, color, created_at FROM tags WHERE name = $1;`, name).
		Scan(&m.ID, &m.Name, &m.Color, &m.CreatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read tag "+name, err)
	}
	tag := mapping.ToDomainTag(m)
	return &tag, nil
}

// AssignTagTx sets the tag of one transaction.
func (r *PgxTagRepository) AssignTagTx(ctx context.Context, tx pgx.Tx, transactionID, tagID int64) error {
	cmd, err := tx.Exec(ctx, `UPDATE transactions SET tag_id = $1 WHERE id = $2;`, tagID, transactionID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("tag %d: %w", tagID, apperrors.ErrNotFound)
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to tag transaction %d", transactionID), err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

// BulkAssignTagTx tags every listed transaction that exists.
func (r *PgxTagRepository) BulkAssignTagTx(ctx context.Context, tx pgx.Tx, transactionIDs []int64, tagID int64) (int64, error) {
	cmd, err := tx.Exec(ctx, `UPDATE transactions SET tag_id = $1 WHERE id = ANY($2);`, tagID, transactionIDs)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return 0, fmt.Errorf("tag %d: %w", tagID, apperrors.ErrNotFound)
		}
		return 0, apperrors.NewAppError(500, "failed to bulk tag transactions", err)
	}
	return cmd.RowsAffected(), nil
}

// ListTags retrieves all tags ordered by name.
func (r *PgxTagRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, color, created_at FROM tags ORDER BY name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tags", err)
	}
	defer rows.Close()

	modelTags, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Tag, error) {
		var m models.Tag
		err := row.Scan(&m.ID, &m.Name, &m.Color, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan tags", err)
	}
	return mapping.ToDomainTagSlice(modelTags), nil
}

// ListTagTotals sums the amounts of the transactions carrying each tag.
func (r *PgxTagRepository) ListTagTotals(ctx context.Context) ([]domain.TagTotal, error) {
	query := `
		SELECT tg.id, tg.name, tg.color, SUM(t.amount), COUNT(t.id)::INT
		FROM tags tg
		JOIN transactions t ON t.tag_id = tg.id
		GROUP BY tg.id, tg.name, tg.color
		ORDER BY tg.name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tag totals", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TagTotal, error) {
		var m models.TagTotal
		err := row.Scan(&m.TagID, &m.Name, &m.Color, &m.Total, &m.TransactionCount)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan tag totals", err)
	}
	return mapping.ToDomainTagTotalSlice(totals), nil
}
