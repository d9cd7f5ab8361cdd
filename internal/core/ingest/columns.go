package ingest

import "strings"

// Column is a statement field the parser understands.
type Column int

const (
	ColAccountNumber Column = iota
	ColAccountName
	ColCounterparty
	ColTransactionNumber
	ColAccountingDate
	ColValueDate
	ColAmount
	ColCurrency
	ColDescription
	ColDetails
	ColMessage
)

// Row is one statement record keyed by column.
type Row map[Column]string

// headerAliases lists the accepted header names per column, compared case-insensitively.
var headerAliases = map[Column][]string{
	ColAccountNumber:     {"Numéro de compte", "Numero de compte", "Account number"},
	ColAccountName:       {"Nom du compte", "Account name"},
	ColCounterparty:      {"Compte contrepartie", "Counterparty account"},
	ColTransactionNumber: {"Numéro de mouvement", "Numero de mouvement", "Transaction number"},
	ColAccountingDate:    {"Date comptable", "Accounting date"},
	ColValueDate:         {"Date valeur", "Value date"},
	ColAmount:            {"Montant", "Amount"},
	ColCurrency:          {"Devise", "Currency"},
	ColDescription:       {"Libellés", "Libelles", "Description"},
	ColDetails:           {"Détails du mouvement", "Details du mouvement", "Details"},
	ColMessage:           {"Message"},
}

var aliasIndex = func() map[string]Column {
	idx := make(map[string]Column)
	for col, names := range headerAliases {
		for _, name := range names {
			idx[strings.ToLower(name)] = col
		}
	}
	return idx
}()

// mapHeader returns the position of every recognised column. The first occurrence wins.
func mapHeader(header []string) map[Column]int {
	columns := make(map[Column]int)
	for i, name := range header {
		col, ok := aliasIndex[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, seen := columns[col]; !seen {
			columns[col] = i
		}
	}
	return columns
}
