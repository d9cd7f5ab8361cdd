package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/statement_analytics/internal/apperrors"
	"github.com/SscSPs/statement_analytics/internal/core/analytics"
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_analytics/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
)

// defaultCandidateLimit bounds how many pre-selected rows the similarity ranking sees.
const defaultCandidateLimit = 1000

type transactionService struct {
	BaseService
	txnRepo        portsrepo.TransactionReader
	candidateLimit int
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithCandidateLimit sets how many similarity candidates are read from storage.
func WithCandidateLimit(limit int) TransactionServiceOption {
	return func(s *transactionService) {
		if limit > 0 {
			s.candidateLimit = limit
		}
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(txnRepo portsrepo.TransactionReader, options ...TransactionServiceOption) portssvc.TransactionSvc {
	svc := &transactionService{
		txnRepo:        txnRepo,
		candidateLimit: defaultCandidateLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

func (s *transactionService) Search(ctx context.Context, filter domain.TransactionFilter, opts domain.ListOptions) (*domain.TransactionPage, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, fmt.Errorf("%w: start date is after end date", apperrors.ErrValidation)
	}
	if opts.Offset < 0 {
		return nil, fmt.Errorf("%w: negative offset", apperrors.ErrValidation)
	}
	opts.SortBy = domain.ParseSortKey(string(opts.SortBy))
	opts.Order = domain.ParseSortOrder(string(opts.Order))

	page, err := s.txnRepo.SearchTransactions(ctx, filter, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to search transactions",
			slog.String("search", filter.Search),
			slog.String("flow", string(filter.Flow)))
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	if page.Transactions == nil {
		page.Transactions = []domain.Transaction{}
	}
	return page, nil
}

func (s *transactionService) FindSimilar(ctx context.Context, transactionID int64) (*domain.SimilarResult, error) {
	ref, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}

	candidates, err := s.txnRepo.FindSimilarCandidates(ctx, *ref, s.candidateLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to load similarity candidates", slog.Int64("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to load similar transactions: %w", err)
	}

	return &domain.SimilarResult{
		TransactionID: ref.ID,
		OriginalTag:   ref.TagName,
		Matches:       analytics.MatchSimilar(*ref, candidates),
	}, nil
}

func (s *transactionService) FindPatterns(ctx context.Context, filter domain.TransactionFilter) ([]domain.Pattern, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for pattern discovery")
		return []domain.Pattern{}, nil
	}

	patterns := analytics.FindPatterns(txns)
	s.LogDebug(ctx, "Patterns found",
		slog.Int("transactions", len(txns)),
		slog.Int("patterns", len(patterns)))
	return patterns, nil
}
