package analytics

import (
	"sort"
	"strings"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"
)

const (
	// SimilarLimit caps the number of matches returned for one reference transaction.
	SimilarLimit = 20
	// DescriptionPrefixLen is how much of the reference description a match must contain.
	DescriptionPrefixLen = 30
)

// AmountTolerance is the largest difference still treated as the same amount.
var AmountTolerance = decimal.New(1, -2)

// DescriptionPrefix returns the first DescriptionPrefixLen characters of the description,
// or an empty string when it has none.
func DescriptionPrefix(t domain.Transaction) string {
	return truncateRunes(t.DescriptionText(), DescriptionPrefixLen)
}

// IsSimilar reports whether candidate shares the reference's description prefix, its
// counterparty account, or its amount (within AmountTolerance). A transaction is never
// similar to itself.
func IsSimilar(ref, candidate domain.Transaction) bool {
	if candidate.ID == ref.ID {
		return false
	}
	if prefix := DescriptionPrefix(ref); prefix != "" && domain.ContainsFold(candidate.DescriptionText(), prefix) {
		return true
	}
	if ref.CounterpartyAccount != nil && candidate.CounterpartyAccount != nil &&
		*ref.CounterpartyAccount == *candidate.CounterpartyAccount {
		return true
	}
	return candidate.Amount.Sub(ref.Amount).Abs().LessThan(AmountTolerance)
}

// MatchSimilar filters candidates down to those similar to ref and returns at most
// SimilarLimit of them. Closer descriptions come first, then newer dates, then lower ids.
func MatchSimilar(ref domain.Transaction, candidates []domain.Transaction) []domain.Match {
	refDesc := strings.ToLower(ref.DescriptionText())

	type scored struct {
		txn      domain.Transaction
		distance int
	}
	var hits []scored
	for _, c := range candidates {
		if !IsSimilar(ref, c) {
			continue
		}
		hits = append(hits, scored{
			txn:      c,
			distance: levenshtein.ComputeDistance(refDesc, strings.ToLower(c.DescriptionText())),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		if !a.txn.AccountingDate.Equal(b.txn.AccountingDate) {
			return a.txn.AccountingDate.After(b.txn.AccountingDate)
		}
		return a.txn.ID < b.txn.ID
	})

	if len(hits) > SimilarLimit {
		hits = hits[:SimilarLimit]
	}

	matches := make([]domain.Match, 0, len(hits))
	for _, h := range hits {
		matches = append(matches, domain.NewMatch(h.txn))
	}
	return matches
}
