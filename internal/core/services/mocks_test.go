package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SearchTransactions(ctx context.Context, filter domain.TransactionFilter, opts domain.ListOptions) (*domain.TransactionPage, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindSimilarCandidates(ctx context.Context, ref domain.Transaction, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, ref, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// ExistsByNaturalKeyTx accepts either a bool or a func(domain.NaturalKey) bool as its
// first return value.
func (m *MockTransactionRepository) ExistsByNaturalKeyTx(ctx context.Context, tx pgx.Tx, key domain.NaturalKey) (bool, error) {
	args := m.Called(ctx, tx, key)
	if fn, ok := args.Get(0).(func(domain.NaturalKey) bool); ok {
		return fn(key), args.Error(1)
	}
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) InsertTransactionsTx(ctx context.Context, tx pgx.Tx, batchID string, importedAt time.Time, drafts []domain.TransactionDraft) error {
	args := m.Called(ctx, tx, batchID, importedAt, drafts)
	return args.Error(0)
}

// --- Mock TagRepository ---
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTagRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTagRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTagRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) ListTagTotals(ctx context.Context) ([]domain.TagTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TagTotal), args.Error(1)
}

func (m *MockTagRepository) GetOrCreateTagTx(ctx context.Context, tx pgx.Tx, name, color string) (*domain.Tag, error) {
	args := m.Called(ctx, tx, name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) AssignTagTx(ctx context.Context, tx pgx.Tx, transactionID, tagID int64) error {
	args := m.Called(ctx, tx, transactionID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) BulkAssignTagTx(ctx context.Context, tx pgx.Tx, transactionIDs []int64, tagID int64) (int64, error) {
	args := m.Called(ctx, tx, transactionIDs, tagID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock SummaryRepository ---
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) ListPeriodRollups(ctx context.Context, g domain.Granularity) ([]domain.PeriodRollup, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeriodRollup), args.Error(1)
}
