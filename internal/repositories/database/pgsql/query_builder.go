package pgsql

import (
	"strconv"
	"strings"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
)

// sortColumns maps each allowed sort key to its SQL expression.
var sortColumns = map[domain.SortKey]string{
	domain.SortByAccountingDate: "t.accounting_date",
	domain.SortByValueDate:      "t.value_date",
	domain.SortByAmount:         "t.amount",
	domain.SortByDescription:    "t.description",
	domain.SortByAccountName:    "t.account_name",
	domain.SortByCounterparty:   "t.counterparty_account",
}

// queryArgs accumulates positional arguments and hands out their placeholders.
type queryArgs []any

func (a *queryArgs) add(v any) string {
	*a = append(*a, v)
	return "$" + strconv.Itoa(len(*a))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user text into an ILIKE pattern matching it literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// whereClause renders filter as a WHERE clause over the transactions alias t.
// It returns an empty string when the filter matches everything.
func whereClause(filter domain.TransactionFilter, args *queryArgs) string {
	var conds []string

	switch filter.Flow {
	case domain.FlowIncome:
		conds = append(conds, "t.amount > 0")
	case domain.FlowExpense:
		conds = append(conds, "t.amount < 0")
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		p := args.add(containsPattern(search))
		conds = append(conds, "(t.description ILIKE "+p+
			" OR t.details ILIKE "+p+
			" OR t.account_name ILIKE "+p+
			" OR t.counterparty_account ILIKE "+p+")")
	}
	if filter.StartDate != nil {
		conds = append(conds, "t.accounting_date >= "+args.add(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conds = append(conds, "t.accounting_date <= "+args.add(*filter.EndDate))
	}

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// orderClause renders an allow-listed ORDER BY with id as the final tie-breaker.
func orderClause(opts domain.ListOptions) string {
	col, ok := sortColumns[opts.SortBy]
	if !ok {
		col = sortColumns[domain.SortByAccountingDate]
	}
	dir := "DESC"
	if opts.Order == domain.SortAsc {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir + " NULLS LAST, t.id " + dir
}

// limitClause renders LIMIT/OFFSET; a non-positive limit returns every row.
func limitClause(opts domain.ListOptions, args *queryArgs) string {
	if opts.Limit <= 0 {
		return ""
	}
	clause := " LIMIT " + args.add(opts.Limit)
	if opts.Offset > 0 {
		clause += " OFFSET " + args.add(opts.Offset)
	}
	return clause
}
