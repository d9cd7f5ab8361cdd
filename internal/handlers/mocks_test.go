package handlers_test

import (
	"context"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportFile(ctx context.Context, fileName string, data []byte) (*domain.ImportResult, error) {
	args := m.Called(ctx, fileName, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

var _ portssvc.ImportSvc = (*MockImportService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Search(ctx context.Context, filter domain.TransactionFilter, opts domain.ListOptions) (*domain.TransactionPage, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionService) FindSimilar(ctx context.Context, transactionID int64) (*domain.SimilarResult, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimilarResult), args.Error(1)
}

func (m *MockTransactionService) FindPatterns(ctx context.Context, filter domain.TransactionFilter) ([]domain.Pattern, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pattern), args.Error(1)
}

var _ portssvc.TransactionSvc = (*MockTransactionService)(nil)

// --- Mock TagService ---
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagService) TagTotals(ctx context.Context) ([]domain.TagTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TagTotal), args.Error(1)
}

func (m *MockTagService) GetOrCreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagService) CreateTag(ctx context.Context, name, color string) (*domain.Tag, error) {
	args := m.Called(ctx, name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagService) AssignTag(ctx context.Context, transactionID, tagID int64) error {
	args := m.Called(ctx, transactionID, tagID)
	return args.Error(0)
}

func (m *MockTagService) TagTransaction(ctx context.Context, transactionID int64, tagName string) (*domain.Tag, error) {
	args := m.Called(ctx, transactionID, tagName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagService) BulkAssignTag(ctx context.Context, transactionIDs []int64, tagName string) (int64, error) {
	args := m.Called(ctx, transactionIDs, tagName)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.TagSvcFacade = (*MockTagService)(nil)

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Aggregate(ctx context.Context, g domain.Granularity) (*domain.PeriodReport, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodReport), args.Error(1)
}

func (m *MockSummaryService) Overview(ctx context.Context) (*domain.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

var _ portssvc.SummarySvc = (*MockSummaryService)(nil)
