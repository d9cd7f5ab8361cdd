package services

import (
	"context"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
)

// SummarySvc defines the period and dashboard aggregations.
type SummarySvc interface {
	// Aggregate returns an empty report with a warning, not an error, when the summary
	// views are missing.
	Aggregate(ctx context.Context, g domain.Granularity) (*domain.PeriodReport, error)

	Overview(ctx context.Context) (*domain.Overview, error)
}
