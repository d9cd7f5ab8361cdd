package dto

import (
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryParams selects the aggregation bucket size. Unknown values fall back to month.
type SummaryParams struct {
	Granularity string `form:"granularity"`
}

// PeriodReportResponse wraps the period summaries. Periods are returned as produced by
// the aggregator since they already carry JSON names.
type PeriodReportResponse struct {
	Granularity string                 `json:"granularity"`
	Periods     []domain.PeriodSummary `json:"periods"`
	Warning     string                 `json:"warning,omitempty"`
}

// ToPeriodReportResponse converts a domain.PeriodReport to its DTO.
func ToPeriodReportResponse(r *domain.PeriodReport) PeriodReportResponse {
	periods := r.Periods
	if periods == nil {
		periods = []domain.PeriodSummary{}
	}
	return PeriodReportResponse{
		Granularity: string(r.Granularity),
		Periods:     periods,
		Warning:     r.Warning,
	}
}

// CumulativePointResponse is one point of the running totals series.
type CumulativePointResponse struct {
	Date          string          `json:"date"`
	CumulativeIn  decimal.Decimal `json:"cumulativeIn"`
	CumulativeOut decimal.Decimal `json:"cumulativeOut"`
}

// OverviewResponse is the dashboard headline.
type OverviewResponse struct {
	TotalIn  decimal.Decimal           `json:"totalIn"`
	TotalOut decimal.Decimal           `json:"totalOut"`
	Balance  decimal.Decimal           `json:"balance"`
	Series   []CumulativePointResponse `json:"series"`
}

// ToOverviewResponse converts a domain.Overview to its DTO.
func ToOverviewResponse(o *domain.Overview) OverviewResponse {
	res := OverviewResponse{
		TotalIn:  o.TotalIn,
		TotalOut: o.TotalOut,
		Balance:  o.Balance,
		Series:   make([]CumulativePointResponse, len(o.Series)),
	}
	for i, p := range o.Series {
		res.Series[i] = CumulativePointResponse{
			Date:          p.Date.Format(dateLayout),
			CumulativeIn:  p.CumulativeIn,
			CumulativeOut: p.CumulativeOut,
		}
	}
	return res
}
