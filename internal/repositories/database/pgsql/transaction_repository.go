package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/statement_analytics/internal/apperrors"
	"github.com/SscSPs/statement_analytics/internal/core/analytics"
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_analytics/internal/core/ports/repositories"
	"github.com/SscSPs/statement_analytics/internal/models"
	"github.com/SscSPs/statement_analytics/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionSelect = `
	SELECT t.id, t.account_number, t.account_name, t.counterparty_account, t.transaction_number,
	       t.accounting_date, t.value_date, t.amount, t.currency, t.description, t.details, t.message,
	       t.tag_id, tg.name, tg.color, t.import_batch_id::text, t.imported_at
	FROM transactions t
	LEFT JOIN tags tg ON tg.id = t.tag_id`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for imported transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID,
		&m.AccountNumber,
		&m.AccountName,
		&m.CounterpartyAccount,
		&m.TransactionNumber,
		&m.AccountingDate,
		&m.ValueDate,
		&m.Amount,
		&m.Currency,
		&m.Description,
		&m.Details,
		&m.Message,
		&m.TagID,
		&m.TagName,
		&m.TagColor,
		&m.ImportBatchID,
		&m.ImportedAt,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// FindTransactionByID retrieves one transaction with its tag.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	m, err := scanTransaction(r.Pool.QueryRow(ctx, transactionSelect+` WHERE t.id = $1;`, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find transaction %d", transactionID), err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// SearchTransactions returns one page of filtered, ordered transactions and the total count.
func (r *PgxTransactionRepository) SearchTransactions(ctx context.Context, filter domain.TransactionFilter, opts domain.ListOptions) (*domain.TransactionPage, error) {
	var countArgs queryArgs
	where := whereClause(filter, &countArgs)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions t`+where, countArgs...).Scan(&total); err != nil {
		return nil, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	args := countArgs
	query := transactionSelect + where + orderClause(opts) + limitClause(opts, &args)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search transactions", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions", err)
	}
	return &domain.TransactionPage{Transactions: txns, Total: total}, nil
}

// ListTransactions returns every filtered transaction, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var args queryArgs
	query := transactionSelect + whereClause(filter, &args) + orderClause(domain.ListOptions{
		SortBy: domain.SortByAccountingDate,
		Order:  domain.SortDesc,
	})

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions", err)
	}
	return txns, nil
}

// FindSimilarCandidates pre-selects rows sharing the description prefix, the counterparty
// or the amount of ref. Final ranking happens in analytics.MatchSimilar.
func (r *PgxTransactionRepository) FindSimilarCandidates(ctx context.Context, ref domain.Transaction, limit int) ([]domain.Transaction, error) {
	query := transactionSelect + `
	WHERE t.id <> $1
	  AND (
	        ($2::text <> '' AND STRPOS(LOWER(COALESCE(t.description, '')), LOWER($2::text)) > 0)
	     OR t.counterparty_account = $3
	     OR ABS(t.amount - $4::numeric) < $5::numeric
	  )
	ORDER BY t.accounting_date DESC, t.id ASC
	LIMIT $6;`

	rows, err := r.Pool.Query(ctx, query,
		ref.ID,
		analytics.DescriptionPrefix(ref),
		ref.CounterpartyAccount,
		ref.Amount,
		analytics.AmountTolerance,
		limit,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query similar transactions for %d", ref.ID), err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan similar transactions", err)
	}
	return txns, nil
}

// ExistsByNaturalKeyTx reports whether a movement with the same natural key is stored.
func (r *PgxTransactionRepository) ExistsByNaturalKeyTx(ctx context.Context, tx pgx.Tx, key domain.NaturalKey) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE account_number = $1 AND transaction_number = $2 AND accounting_date = $3 AND amount = $4
		);`
	var exists bool
	err := tx.QueryRow(ctx, query, key.AccountNumber, key.TransactionNumber, key.AccountingDate, key.Amount).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to look up transaction "+key.TransactionNumber, err)
	}
	return exists, nil
}

// InsertTransactionsTx inserts drafts as one batch within tx.
func (r *PgxTransactionRepository) InsertTransactionsTx(ctx context.Context, tx pgx.Tx, batchID string, importedAt time.Time, drafts []domain.TransactionDraft) error {
	query := `
		INSERT INTO transactions (account_number, account_name, counterparty_account, transaction_number,
			accounting_date, value_date, amount, currency, description, details, message, import_batch_id, imported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	batch := &pgx.Batch{}
	for _, d := range drafts {
		m := mapping.DraftToModelTransaction(d)
		batch.Queue(query,
			m.AccountNumber,
			m.AccountName,
			m.CounterpartyAccount,
			m.TransactionNumber,
			m.AccountingDate,
			m.ValueDate,
			m.Amount,
			m.Currency,
			m.Description,
			m.Details,
			m.Message,
			batchID,
			importedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return translateInsertError(batchID, err)
	}
	return nil
}

// translateInsertError reports a natural-key collision, typically a concurrent import of
// the same statement, as ErrDuplicate.
func translateInsertError(batchID string, err error) error {
	if pgErrorCode(err) == pgUniqueViolation {
		return fmt.Errorf("import %s overlaps an import committed concurrently: %w", batchID, apperrors.ErrDuplicate)
	}
	return apperrors.NewAppError(500, "failed to insert transactions for import "+batchID, err)
}
