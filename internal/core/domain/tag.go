package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTagColor is the indigo color given to tags created without an explicit color.
const DefaultTagColor = "#6366f1"

// TagColorRule is the validator rule for tag colors: "#" followed by six hex digits.
const TagColorRule = "hexcolor,len=7"

// Tag is a user-defined label. Name is unique and case-sensitive.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// TagTotal aggregates the transactions carrying one tag.
type TagTotal struct {
	TagID            int64           `json:"tagID"`
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	Total            decimal.Decimal `json:"total"`
	TransactionCount int             `json:"transactionCount"`
}
