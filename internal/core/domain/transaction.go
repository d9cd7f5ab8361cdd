package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a statement row carries no currency.
const DefaultCurrency = "EUR"

// Transaction is one financial movement imported from a bank statement.
// A positive Amount is income, a negative Amount is an expense.
type Transaction struct {
	ID                  int64           `json:"id"`
	AccountNumber       string          `json:"accountNumber"`
	AccountName         *string         `json:"accountName,omitempty"`
	CounterpartyAccount *string         `json:"counterpartyAccount,omitempty"`
	TransactionNumber   string          `json:"transactionNumber"`
	AccountingDate      time.Time       `json:"accountingDate"`
	ValueDate           time.Time       `json:"valueDate"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	Description         *string         `json:"description,omitempty"`
	Details             *string         `json:"details,omitempty"`
	Message             *string         `json:"message,omitempty"`
	TagID               *int64          `json:"tagID,omitempty"`
	TagName             *string         `json:"tagName,omitempty"`
	TagColor            *string         `json:"tagColor,omitempty"`
	ImportBatchID       string          `json:"importBatchID"`
	ImportedAt          time.Time       `json:"importedAt"`
}

// IsIncome reports whether the movement credited the account.
func (t Transaction) IsIncome() bool { return t.Amount.IsPositive() }

// IsExpense reports whether the movement debited the account.
func (t Transaction) IsExpense() bool { return t.Amount.IsNegative() }

// DescriptionText returns the description or an empty string when absent.
func (t Transaction) DescriptionText() string { return deref(t.Description) }

// Counterparty returns the counterparty account or an empty string when absent.
func (t Transaction) Counterparty() string { return deref(t.CounterpartyAccount) }

// TransactionDraft is a parsed statement row that has not been persisted yet.
type TransactionDraft struct {
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
}

// NaturalKey identifies a movement for duplicate detection.
// Two records are the same movement only when all four fields match.
type NaturalKey struct {
	AccountNumber     string
	TransactionNumber string
	AccountingDate    time.Time
	Amount            decimal.Decimal
}

// Key returns the natural key of the draft.
func (d TransactionDraft) Key() NaturalKey {
	return NaturalKey{
		AccountNumber:     d.AccountNumber,
		TransactionNumber: d.TransactionNumber,
		AccountingDate:    d.AccountingDate,
		Amount:            d.Amount,
	}
}

// String renders the key in a form usable as a map key. decimal.Decimal values that are
// numerically equal but scaled differently (1000 vs 1000.00) produce the same string.
func (k NaturalKey) String() string {
	return k.AccountNumber + "|" + k.TransactionNumber + "|" + k.AccountingDate.Format("2006-01-02") + "|" + k.Amount.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
