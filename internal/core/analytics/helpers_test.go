package analytics_test

import (
	"testing"
	"time"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type txnOpt func(*domain.Transaction)

func withDescription(s string) txnOpt {
	return func(t *domain.Transaction) { t.Description = &s }
}

func withCounterparty(s string) txnOpt {
	return func(t *domain.Transaction) { t.CounterpartyAccount = &s }
}

func newTxn(t *testing.T, id int64, date, amount string, opts ...txnOpt) domain.Transaction {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	txn := domain.Transaction{
		ID:                id,
		AccountNumber:     "BE00 0000 0000 0001",
		TransactionNumber: "T" + date,
		AccountingDate:    d,
		ValueDate:         d,
		Amount:            decimal.RequireFromString(amount),
		Currency:          domain.DefaultCurrency,
	}
	for _, o := range opts {
		o(&txn)
	}
	return txn
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}
