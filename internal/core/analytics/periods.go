package analytics

import (
	"sort"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/shopspring/decimal"
)

type meanAccumulator struct {
	in, out decimal.Decimal
	n       int64
}

func (m *meanAccumulator) add(in, out decimal.Decimal) {
	m.in = m.in.Add(in)
	m.out = m.out.Add(out)
	m.n++
}

func (m *meanAccumulator) means() (decimal.Decimal, decimal.Decimal) {
	if m.n == 0 {
		return decimal.Zero, decimal.Zero
	}
	d := decimal.NewFromInt(m.n)
	return m.in.Div(d), m.out.Div(d)
}

// Summarize enriches rollups with the mean income and expense across all periods and the
// mean across periods sharing the same secondary key (for example every January). The
// result is sorted chronologically.
func Summarize(rollups []domain.PeriodRollup) []domain.PeriodSummary {
	if len(rollups) == 0 {
		return []domain.PeriodSummary{}
	}

	var overall meanAccumulator
	samePeriod := make(map[int]*meanAccumulator)
	for _, r := range rollups {
		overall.add(r.TotalIn, r.TotalOut)
		acc, ok := samePeriod[r.Key.SamePeriod()]
		if !ok {
			acc = &meanAccumulator{}
			samePeriod[r.Key.SamePeriod()] = acc
		}
		acc.add(r.TotalIn, r.TotalOut)
	}
	avgIn, avgOut := overall.means()

	out := make([]domain.PeriodSummary, 0, len(rollups))
	for _, r := range rollups {
		spIn, spOut := samePeriod[r.Key.SamePeriod()].means()
		s := domain.PeriodSummary{
			Key:              r.Key,
			Granularity:      r.Key.Granularity(),
			Period:           r.Key.Period(),
			Year:             r.Key.CalendarYear(),
			TotalIn:          r.TotalIn,
			TotalOut:         r.TotalOut,
			Balance:          r.Balance,
			TransactionCount: r.TransactionCount,
			AvgIn:            avgIn,
			AvgOut:           avgOut,
			SamePeriodAvgIn:  spIn,
			SamePeriodAvgOut: spOut,
			Label:            r.Key.Label(),
			CompareLabel:     r.Key.CompareLabel(),
			PeriodStart:      r.PeriodStart,
			PeriodEnd:        r.PeriodEnd,
		}
		fillKeyFields(&s, r.Key)
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

func fillKeyFields(s *domain.PeriodSummary, key domain.PeriodKey) {
	switch k := key.(type) {
	case domain.DayKey:
		month, day, dow := int(k.Month), k.Day, int(k.Weekday)
		s.Month, s.Day, s.DayOfWeek = &month, &day, &dow
	case domain.WeekKey:
		week := k.Week
		s.Week = &week
	case domain.MonthKey:
		month := int(k.Month)
		s.Month = &month
	}
}

// Rollup buckets txns by accounting date under g, computing the same totals the summary
// views do. Day buckets carry no start and end dates.
func Rollup(txns []domain.Transaction, g domain.Granularity) []domain.PeriodRollup {
	var order []string
	buckets := make(map[string]*domain.PeriodRollup)

	for _, t := range txns {
		key := domain.KeyFor(t.AccountingDate, g)
		b, ok := buckets[key.Period()]
		if !ok {
			b = &domain.PeriodRollup{Key: key}
			buckets[key.Period()] = b
			order = append(order, key.Period())
		}

		switch {
		case t.IsIncome():
			b.TotalIn = b.TotalIn.Add(t.Amount)
		case t.IsExpense():
			b.TotalOut = b.TotalOut.Add(t.Amount.Abs())
		}
		b.Balance = b.Balance.Add(t.Amount)
		b.TransactionCount++

		if g == domain.GranularityDay {
			continue
		}
		date := t.AccountingDate
		if b.PeriodStart == nil || date.Before(*b.PeriodStart) {
			b.PeriodStart = &date
		}
		if b.PeriodEnd == nil || date.After(*b.PeriodEnd) {
			b.PeriodEnd = &date
		}
	}

	sort.Strings(order)
	out := make([]domain.PeriodRollup, 0, len(order))
	for _, p := range order {
		out = append(out, *buckets[p])
	}
	return out
}
