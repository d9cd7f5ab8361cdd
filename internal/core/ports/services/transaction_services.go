package services

import (
	"context"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
)

// TransactionSvc defines queries over imported transactions.
type TransactionSvc interface {
	Search(ctx context.Context, filter domain.TransactionFilter, opts domain.ListOptions) (*domain.TransactionPage, error)

	// FindSimilar returns apperrors.ErrNotFound when the reference transaction does not exist.
	FindSimilar(ctx context.Context, transactionID int64) (*domain.SimilarResult, error)

	// FindPatterns never fails on storage errors; it logs them and returns no patterns.
	FindPatterns(ctx context.Context, filter domain.TransactionFilter) ([]domain.Pattern, error)
}
