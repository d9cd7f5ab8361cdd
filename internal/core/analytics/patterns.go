package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
)

const (
	// MaxPatterns is the number of patterns kept after ranking.
	MaxPatterns = 10

	minCounterpartyMembers = 2
	minAmountMembers       = 3 // a shared amount is weaker evidence than a shared counterparty or text
	minDescriptionMembers  = 2

	counterpartyLabelLen = 30
	descriptionKeyLen    = 20
)

// group collects transactions per key and remembers the order keys were first seen.
type group struct {
	keys    []string
	members map[string][]domain.Transaction
}

func newGroup() *group {
	return &group{members: make(map[string][]domain.Transaction)}
}

func (g *group) add(key string, t domain.Transaction) {
	if _, ok := g.members[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.members[key] = append(g.members[key], t)
}

func (g *group) patterns(basis domain.PatternBasis, min int, label func(string) string) []domain.Pattern {
	var out []domain.Pattern
	for _, key := range g.keys {
		members := g.members[key]
		if len(members) < min {
			continue
		}
		matches := make([]domain.Match, 0, len(members))
		for _, m := range members {
			matches = append(matches, domain.NewMatch(m))
		}
		out = append(out, domain.Pattern{
			Basis:        basis,
			Key:          key,
			Label:        label(key),
			Count:        len(members),
			Transactions: matches,
		})
	}
	return out
}

// FindPatterns groups txns by counterparty, by amount rounded to a whole unit and by
// description prefix, then returns the MaxPatterns largest groups. Equal sized groups are
// ordered counterparty first, then amount, then description, then by key.
func FindPatterns(txns []domain.Transaction) []domain.Pattern {
	if len(txns) < 2 {
		return []domain.Pattern{}
	}

	byCounterparty := newGroup()
	byAmount := newGroup()
	byDescription := newGroup()

	for _, t := range txns {
		if cp := t.Counterparty(); cp != "" {
			byCounterparty.add(cp, t)
		}

		byAmount.add(t.Amount.RoundBank(0).String(), t)

		if desc := t.DescriptionText(); desc != "" {
			key := strings.TrimSpace(strings.ToLower(truncateRunes(desc, descriptionKeyLen)))
			if key != "" {
				byDescription.add(key, t)
			}
		}
	}

	patterns := byCounterparty.patterns(domain.PatternByCounterparty, minCounterpartyMembers, func(k string) string {
		return "Counterparty: " + abbreviate(k, counterpartyLabelLen)
	})
	patterns = append(patterns, byAmount.patterns(domain.PatternByAmount, minAmountMembers, func(k string) string {
		return fmt.Sprintf("Amount: ~%s", k)
	})...)
	patterns = append(patterns, byDescription.patterns(domain.PatternByDescription, minDescriptionMembers, func(k string) string {
		return "Description: " + abbreviate(k, descriptionKeyLen)
	})...)

	sort.SliceStable(patterns, func(i, j int) bool {
		a, b := patterns[i], patterns[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Basis.Priority() != b.Basis.Priority() {
			return a.Basis.Priority() < b.Basis.Priority()
		}
		return a.Key < b.Key
	})

	if len(patterns) > MaxPatterns {
		patterns = patterns[:MaxPatterns]
	}
	if patterns == nil {
		return []domain.Pattern{}
	}
	return patterns
}
