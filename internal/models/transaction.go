package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table, joined with its tag.
type Transaction struct {
	ID                  int64
	AccountNumber       string
	AccountName         *string
	CounterpartyAccount *string
	TransactionNumber   string
	AccountingDate      time.Time
	ValueDate           time.Time
	Amount              decimal.Decimal
	Currency            string
	Description         *string
	Details             *string
	Message             *string
	TagID               *int64
	TagName             *string // from the tags join
	TagColor            *string // from the tags join
	ImportBatchID       string
	ImportedAt          time.Time
}
