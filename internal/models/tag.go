package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tag mirrors a row of the tags table.
type Tag struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
}

// TagTotal is one row of the per-tag totals query.
type TagTotal struct {
	TagID            int64
	Name             string
	Color            string
	Total            decimal.Decimal
	TransactionCount int
}
