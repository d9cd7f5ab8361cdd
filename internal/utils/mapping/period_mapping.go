package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/SscSPs/statement_analytics/internal/models"
)

// ToPeriodKey builds the key variant for a summary view row of granularity g.
func ToPeriodKey(m models.PeriodSummary, g domain.Granularity) (domain.PeriodKey, error) {
	switch g {
	case domain.GranularityDay:
		if m.Month == nil || m.Day == nil || m.DayOfWeek == nil {
			return nil, fmt.Errorf("daily summary %s is missing date parts", m.Period)
		}
		return domain.DayKey{
			Year:    m.Year,
			Month:   time.Month(*m.Month),
			Day:     *m.Day,
			Weekday: time.Weekday(*m.DayOfWeek),
		}, nil
	case domain.GranularityWeek:
		if m.Week == nil {
			return nil, fmt.Errorf("weekly summary %s is missing its week", m.Period)
		}
		return domain.WeekKey{Year: m.Year, Week: *m.Week}, nil
	case domain.GranularityMonth:
		if m.Month == nil {
			return nil, fmt.Errorf("monthly summary %s is missing its month", m.Period)
		}
		return domain.MonthKey{Year: m.Year, Month: time.Month(*m.Month)}, nil
	case domain.GranularityYear:
		return domain.YearKey{Year: m.Year}, nil
	default:
		return nil, fmt.Errorf("unknown granularity %q", g)
	}
}

// ToDomainPeriodRollup converts a summary view row to a domain rollup.
func ToDomainPeriodRollup(m models.PeriodSummary, g domain.Granularity) (domain.PeriodRollup, error) {
	key, err := ToPeriodKey(m, g)
	if err != nil {
		return domain.PeriodRollup{}, err
	}
	return domain.PeriodRollup{
		Key:              key,
		TotalIn:          m.TotalIn,
		TotalOut:         m.TotalOut,
		Balance:          m.Balance,
		TransactionCount: m.TransactionCount,
		PeriodStart:      m.PeriodStart,
		PeriodEnd:        m.PeriodEnd,
	}, nil
}
