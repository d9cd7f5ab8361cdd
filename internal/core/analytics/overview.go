package analytics

import (
	"sort"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
)

// Overview totals txns and builds the running income and expense series, one point per
// accounting date.
func Overview(txns []domain.Transaction) domain.Overview {
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AccountingDate.Before(sorted[j].AccountingDate)
	})

	ov := domain.Overview{Series: []domain.CumulativePoint{}}
	for _, t := range sorted {
		switch {
		case t.IsIncome():
			ov.TotalIn = ov.TotalIn.Add(t.Amount)
		case t.IsExpense():
			ov.TotalOut = ov.TotalOut.Add(t.Amount.Abs())
		}

		if n := len(ov.Series); n > 0 && ov.Series[n-1].Date.Equal(t.AccountingDate) {
			ov.Series[n-1].CumulativeIn = ov.TotalIn
			ov.Series[n-1].CumulativeOut = ov.TotalOut
			continue
		}
		ov.Series = append(ov.Series, domain.CumulativePoint{
			Date:          t.AccountingDate,
			CumulativeIn:  ov.TotalIn,
			CumulativeOut: ov.TotalOut,
		})
	}
	ov.Balance = ov.TotalIn.Sub(ov.TotalOut)
	return ov
}
