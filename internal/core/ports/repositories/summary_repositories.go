package repositories

import (
	"context"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
)

// SummaryRepository reads the per-period summary views.
type SummaryRepository interface {
	// ListPeriodRollups returns apperrors.ErrAggregationUnavailable when the view for g
	// has not been created.
	ListPeriodRollups(ctx context.Context, g domain.Granularity) ([]domain.PeriodRollup, error)
}
