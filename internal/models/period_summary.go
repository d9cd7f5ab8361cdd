package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodSummary is one row of a *_summary view. Columns a view does not have stay nil.
type PeriodSummary struct {
	Period           string
	Year             int
	Month            *int
	Week             *int
	Day              *int
	DayOfWeek        *int
	TotalIn          decimal.Decimal
	TotalOut         decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
	PeriodStart      *time.Time
	PeriodEnd        *time.Time
}
