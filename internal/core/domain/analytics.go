package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Match is the compact rendering of a transaction used by similarity and pattern results.
type Match struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	Tag         *string         `json:"tag"`
}

// NewMatch renders t as a Match.
func NewMatch(t Transaction) Match {
	return Match{
		ID:          t.ID,
		Date:        t.AccountingDate,
		Amount:      t.Amount,
		Description: t.Description,
		Tag:         t.TagName,
	}
}

// SimilarResult holds the transactions resembling a reference transaction.
type SimilarResult struct {
	TransactionID int64   `json:"transactionID"`
	OriginalTag   *string `json:"originalTag"`
	Matches       []Match `json:"matches"`
}

// PatternBasis names what the members of a pattern have in common.
type PatternBasis string

const (
	PatternByCounterparty PatternBasis = "counterparty"
	PatternByAmount       PatternBasis = "amount"
	PatternByDescription  PatternBasis = "description"
)

// Priority orders bases when two patterns have the same number of members.
func (b PatternBasis) Priority() int {
	switch b {
	case PatternByCounterparty:
		return 0
	case PatternByAmount:
		return 1
	default:
		return 2
	}
}

// Pattern is a group of transactions sharing a counterparty, a rounded amount or a
// description prefix.
type Pattern struct {
	Basis        PatternBasis `json:"type"`
	Key          string       `json:"key"`
	Label        string       `json:"label"`
	Count        int          `json:"count"`
	Transactions []Match      `json:"transactions"`
}
