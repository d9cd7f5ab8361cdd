package analytics_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SscSPs/statement_analytics/internal/core/analytics"
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPatterns_TooFewTransactions(t *testing.T) {
	assert.Empty(t, analytics.FindPatterns(nil))
	assert.Empty(t, analytics.FindPatterns([]domain.Transaction{newTxn(t, 1, "2024-01-01", "1")}))
}

func TestFindPatterns_CounterpartyPair(t *testing.T) {
	txns := []domain.Transaction{
		newTxn(t, 1, "2024-01-01", "-12.00", withCounterparty("BE71 0961 2345 6769"), withDescription("Gym")),
		newTxn(t, 2, "2024-02-01", "-530.00", withCounterparty("BE71 0961 2345 6769"), withDescription("Rent")),
	}

	patterns := analytics.FindPatterns(txns)

	require.Len(t, patterns, 1)
	assert.Equal(t, domain.PatternByCounterparty, patterns[0].Basis)
	assert.Equal(t, "BE71 0961 2345 6769", patterns[0].Key)
	assert.Equal(t, 2, patterns[0].Count)
	assert.Len(t, patterns[0].Transactions, 2)
}

func TestFindPatterns_AmountNeedsThreeMembers(t *testing.T) {
	two := []domain.Transaction{
		newTxn(t, 1, "2024-01-01", "99.60", withDescription("alpha")),
		newTxn(t, 2, "2024-01-02", "100.40", withDescription("beta")),
	}
	assert.Empty(t, analytics.FindPatterns(two))

	three := append(two, newTxn(t, 3, "2024-01-03", "100.00", withDescription("gamma")))
	patterns := analytics.FindPatterns(three)

	require.Len(t, patterns, 1)
	assert.Equal(t, domain.PatternByAmount, patterns[0].Basis)
	assert.Equal(t, "100", patterns[0].Key)
	assert.Equal(t, 3, patterns[0].Count)
}

func TestFindPatterns_HalvesRoundToEven(t *testing.T) {
	txns := []domain.Transaction{
		newTxn(t, 1, "2024-01-01", "99.50", withDescription("alpha")),
		newTxn(t, 2, "2024-01-02", "100.50", withDescription("beta")),
		newTxn(t, 3, "2024-01-03", "100.00", withDescription("gamma")),
	}

	patterns := analytics.FindPatterns(txns)

	require.Len(t, patterns, 1)
	assert.Equal(t, "100", patterns[0].Key)
	assert.Equal(t, 3, patterns[0].Count)
}

func TestFindPatterns_DescriptionPrefix(t *testing.T) {
	txns := []domain.Transaction{
		newTxn(t, 1, "2024-01-01", "-3.10", withDescription("CARREFOUR EXPRESS IXELLES 01")),
		newTxn(t, 2, "2024-01-09", "-45.90", withDescription("Carrefour Express Ixelles 02")),
	}

	patterns := analytics.FindPatterns(txns)

	require.Len(t, patterns, 1)
	assert.Equal(t, domain.PatternByDescription, patterns[0].Basis)
	assert.Equal(t, "carrefour express ix", patterns[0].Key)
}

func TestFindPatterns_KeepsTenLargest(t *testing.T) {
	var txns []domain.Transaction
	for i := 0; i < 15; i++ {
		cp := fmt.Sprintf("BE%02d 0000 0000 0000", i)
		members := 2
		if i < 3 {
			members = 4
		}
		for m := 0; m < members; m++ {
			id := int64(i*10 + m)
			txns = append(txns, newTxn(t, id, "2024-01-01", fmt.Sprintf("%d.00", 1000*(i+1)+7*m), withCounterparty(cp)))
		}
	}

	patterns := analytics.FindPatterns(txns)

	require.Len(t, patterns, analytics.MaxPatterns)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 4, patterns[i].Count)
	}
	for i := 1; i < len(patterns); i++ {
		assert.GreaterOrEqual(t, patterns[i-1].Count, patterns[i].Count)
	}
}

func TestFindPatterns_TieBreakPrefersCounterparty(t *testing.T) {
	txns := []domain.Transaction{
		newTxn(t, 1, "2024-01-01", "-20.00", withDescription("one")),
		newTxn(t, 2, "2024-01-02", "-20.00", withDescription("two")),
		newTxn(t, 3, "2024-01-03", "-20.00", withDescription("three")),
		newTxn(t, 4, "2024-01-04", "-1.00", withCounterparty("NL91 ABNA 0417 1643 00"), withDescription("four")),
		newTxn(t, 5, "2024-01-05", "-2.00", withCounterparty("NL91 ABNA 0417 1643 00"), withDescription("five")),
		newTxn(t, 6, "2024-01-06", "-3.00", withCounterparty("NL91 ABNA 0417 1643 00"), withDescription("six")),
	}

	patterns := analytics.FindPatterns(txns)

	require.Len(t, patterns, 2)
	assert.Equal(t, domain.PatternByCounterparty, patterns[0].Basis)
	assert.Equal(t, domain.PatternByAmount, patterns[1].Basis)
}

func TestFindPatterns_LongCounterpartyLabelIsAbbreviated(t *testing.T) {
	long := strings.Repeat("X", 40)
	txns := []domain.Transaction{
		newTxn(t, 1, "2024-01-01", "-1.00", withCounterparty(long)),
		newTxn(t, 2, "2024-01-02", "-2.00", withCounterparty(long)),
	}

	patterns := analytics.FindPatterns(txns)

	require.Len(t, patterns, 1)
	assert.Equal(t, long, patterns[0].Key)
	assert.Equal(t, "Counterparty: "+strings.Repeat("X", 30)+"...", patterns[0].Label)
}
