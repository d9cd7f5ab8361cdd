package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/statement_analytics/internal/apperrors"
	"github.com/SscSPs/statement_analytics/internal/core/analytics"
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_analytics/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_analytics/internal/core/ports/services"
)

// SummariesUnavailableWarning is reported when the summary views have not been created.
const SummariesUnavailableWarning = "period summaries are not available; run the migrations to create the summary views"

type summaryService struct {
	BaseService
	summaryRepo portsrepo.SummaryRepository
	txnRepo     portsrepo.TransactionReader
}

// NewSummaryService creates a new summary service.
func NewSummaryService(summaryRepo portsrepo.SummaryRepository, txnRepo portsrepo.TransactionReader) portssvc.SummarySvc {
	return &summaryService{
		summaryRepo: summaryRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.SummarySvc = (*summaryService)(nil)

func (s *summaryService) Aggregate(ctx context.Context, g domain.Granularity) (*domain.PeriodReport, error) {
	g = domain.ParseGranularity(string(g))

	rollups, err := s.summaryRepo.ListPeriodRollups(ctx, g)
	if err != nil {
		if errors.Is(err, apperrors.ErrAggregationUnavailable) {
			s.LogWarn(ctx, "Summary views missing", slog.String("granularity", string(g)))
			return &domain.PeriodReport{
				Granularity: g,
				Periods:     []domain.PeriodSummary{},
				Warning:     SummariesUnavailableWarning,
			}, nil
		}
		s.LogError(ctx, err, "Failed to read period summaries", slog.String("granularity", string(g)))
		return nil, fmt.Errorf("failed to read %s summaries: %w", g, err)
	}

	return &domain.PeriodReport{
		Granularity: g,
		Periods:     analytics.Summarize(rollups),
	}, nil
}

func (s *summaryService) Overview(ctx context.Context) (*domain.Overview, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, domain.TransactionFilter{Flow: domain.FlowAll})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for overview")
		return nil, fmt.Errorf("failed to build overview: %w", err)
	}
	ov := analytics.Overview(txns)
	return &ov, nil
}
