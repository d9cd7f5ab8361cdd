package domain

import "time"

// FlowType restricts a query to income, expenses or both.
type FlowType string

const (
	FlowAll     FlowType = "all"
	FlowIncome  FlowType = "in"
	FlowExpense FlowType = "out"
)

// ParseFlowType maps user input to a FlowType, defaulting to FlowAll.
func ParseFlowType(s string) FlowType {
	switch FlowType(s) {
	case FlowIncome:
		return FlowIncome
	case FlowExpense:
		return FlowExpense
	default:
		return FlowAll
	}
}

// TransactionFilter is the predicate shared by search, pattern discovery and the tag views.
// Dates are inclusive; nil means unbounded.
type TransactionFilter struct {
	Flow      FlowType
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Matches applies the filter to a single transaction. Repositories translate the same
// predicate to SQL; this form filters parsed statements that were never stored.
func (f TransactionFilter) Matches(t Transaction) bool {
	switch f.Flow {
	case FlowIncome:
		if !t.IsIncome() {
			return false
		}
	case FlowExpense:
		if !t.IsExpense() {
			return false
		}
	}
	if f.StartDate != nil && t.AccountingDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && t.AccountingDate.After(*f.EndDate) {
		return false
	}
	if f.Search == "" {
		return true
	}
	for _, field := range []*string{t.Description, t.Details, t.AccountName, t.CounterpartyAccount} {
		if ContainsFold(deref(field), f.Search) {
			return true
		}
	}
	return false
}

// SortKey is one of the columns a transaction listing may be ordered by.
type SortKey string

const (
	SortByAccountingDate SortKey = "accounting_date"
	SortByValueDate      SortKey = "value_date"
	SortByAmount         SortKey = "amount"
	SortByDescription    SortKey = "description"
	SortByAccountName    SortKey = "account_name"
	SortByCounterparty   SortKey = "counterparty_account"
)

var sortKeys = map[SortKey]struct{}{
	SortByAccountingDate: {},
	SortByValueDate:      {},
	SortByAmount:         {},
	SortByDescription:    {},
	SortByAccountName:    {},
	SortByCounterparty:   {},
}

// ParseSortKey returns the allow-listed key for s, or SortByAccountingDate.
func ParseSortKey(s string) SortKey {
	if _, ok := sortKeys[SortKey(s)]; ok {
		return SortKey(s)
	}
	return SortByAccountingDate
}

// SortOrder is the listing direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder defaults to descending.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortAsc {
		return SortAsc
	}
	return SortDesc
}

// ListOptions controls ordering and paging. Limit <= 0 returns every row.
type ListOptions struct {
	SortBy SortKey
	Order  SortOrder
	Limit  int
	Offset int
}

// TransactionPage is one page of a search.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
}
