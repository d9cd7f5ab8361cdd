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

// summaryQueries selects every view column into models.PeriodSummary order. Columns a
// view lacks are selected as NULL.
var summaryQueries = map[domain.Granularity]string{
	domain.GranularityDay: `
		SELECT period, year, month, NULL::INT, day, day_of_week, total_in, total_out, balance,
		       transaction_count, NULL::DATE, NULL::DATE
		FROM daily_summary ORDER BY period;`,
	domain.GranularityWeek: `
		SELECT period, year, NULL::INT, week, NULL::INT, NULL::INT, total_in, total_out, balance,
		       transaction_count, period_start, period_end
		FROM weekly_summary ORDER BY period;`,
	domain.GranularityMonth: `
		SELECT period, year, month, NULL::INT, NULL::INT, NULL::INT, total_in, total_out, balance,
		       transaction_count, period_start, period_end
		FROM monthly_summary ORDER BY period;`,
	domain.GranularityYear: `
		SELECT period, year, NULL::INT, NULL::INT, NULL::INT, NULL::INT, total_in, total_out, balance,
		       transaction_count, period_start, period_end
		FROM yearly_summary ORDER BY period;`,
}

type PgxSummaryRepository struct {
	BaseRepository
}

// newPgxSummaryRepository creates a new repository over the summary views.
func newPgxSummaryRepository(pool *pgxpool.Pool) portsrepo.SummaryRepository {
	return &PgxSummaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SummaryRepository = (*PgxSummaryRepository)(nil)

// ListPeriodRollups reads the summary view of granularity g.
func (r *PgxSummaryRepository) ListPeriodRollups(ctx context.Context, g domain.Granularity) ([]domain.PeriodRollup, error) {
	query, ok := summaryQueries[g]
	if !ok {
		return nil, fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, g)
	}

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateSummaryError(g, err)
	}
	defer rows.Close()

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PeriodSummary, error) {
		var m models.PeriodSummary
		err := row.Scan(
			&m.Period,
			&m.Year,
			&m.Month,
			&m.Week,
			&m.Day,
			&m.DayOfWeek,
			&m.TotalIn,
			&m.TotalOut,
			&m.Balance,
			&m.TransactionCount,
			&m.PeriodStart,
			&m.PeriodEnd,
		)
		return m, err
	})
	if err != nil {
		return nil, translateSummaryError(g, err)
	}

	rollups := make([]domain.PeriodRollup, 0, len(summaries))
	for _, m := range summaries {
		rollup, err := mapping.ToDomainPeriodRollup(m, g)
		if err != nil {
			return nil, apperrors.NewAppError(500, "malformed summary row", err)
		}
		rollups = append(rollups, rollup)
	}
	return rollups, nil
}

func translateSummaryError(g domain.Granularity, err error) error {
	if pgErrorCode(err) == pgUndefinedTable {
		return fmt.Errorf("%s summary view: %w", g, apperrors.ErrAggregationUnavailable)
	}
	return apperrors.NewAppError(500, fmt.Sprintf("failed to read %s summaries", g), err)
}
