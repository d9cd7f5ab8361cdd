package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the statement date format (D/M/YYYY). Zero-padded days and months parse too.
const DateLayout = "2/1/2006"

// missingMarkers are cell values treated as an absent optional field.
var missingMarkers = map[string]struct{}{
	"":     {},
	"NaN":  {},
	"nan":  {},
	"NULL": {},
	"null": {},
	"N/A":  {},
	"n/a":  {},
	"#N/A": {},
}

// ParsedFile is the outcome of parsing a whole statement.
type ParsedFile struct {
	Encoding  string
	Drafts    []domain.TransactionDraft
	Discarded int
}

// Rows is the number of data rows seen in the file.
func (p *ParsedFile) Rows() int { return len(p.Drafts) + p.Discarded }

// ParseFile decodes data and parses every row. It fails only when no encoding produced
// a usable header; malformed rows are counted in Discarded.
func ParseFile(data []byte) (*ParsedFile, error) {
	table, err := DecodeFile(data)
	if err != nil {
		return nil, err
	}

	out := &ParsedFile{Encoding: table.Encoding}
	for i := range table.Records {
		draft, err := ParseRow(table.Row(i))
		if err != nil {
			out.Discarded++
			continue
		}
		out.Drafts = append(out.Drafts, draft)
	}
	return out, nil
}

var errNoAccountNumber = errors.New("missing account number")

// ParseRow converts one statement row into a draft. An error means the row must be skipped.
func ParseRow(row Row) (domain.TransactionDraft, error) {
	accountingDate, err := ParseDate(row[ColAccountingDate])
	if err != nil {
		return domain.TransactionDraft{}, fmt.Errorf("accounting date: %w", err)
	}

	valueDate, err := ParseDate(row[ColValueDate])
	if err != nil {
		valueDate = accountingDate
	}

	amount, err := ParseAmount(row[ColAmount])
	if err != nil {
		return domain.TransactionDraft{}, fmt.Errorf("amount: %w", err)
	}

	accountNumber := optional(row[ColAccountNumber])
	if accountNumber == nil {
		return domain.TransactionDraft{}, errNoAccountNumber
	}

	currency := domain.DefaultCurrency
	if c := optional(row[ColCurrency]); c != nil {
		currency = *c
	}

	return domain.TransactionDraft{
		AccountNumber:       *accountNumber,
		AccountName:         optional(row[ColAccountName]),
		CounterpartyAccount: optional(row[ColCounterparty]),
		TransactionNumber:   row[ColTransactionNumber],
		AccountingDate:      accountingDate,
		ValueDate:           valueDate,
		Amount:              amount,
		Currency:            currency,
		Description:         optional(row[ColDescription]),
		Details:             optional(row[ColDetails]),
		Message:             optional(row[ColMessage]),
	}, nil
}

// ParseDate parses a DD/MM/YYYY date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseAmount parses a European formatted amount: every "." is a thousands separator and
// "," is the decimal separator, so "-1.234,56" is -1234.56.
func ParseAmount(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	return decimal.NewFromString(normalized)
}

func optional(cell string) *string {
	if _, missing := missingMarkers[strings.TrimSpace(cell)]; missing {
		return nil
	}
	return &cell
}
