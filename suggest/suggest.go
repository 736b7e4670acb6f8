// Package suggest ranks candidate rule names for a misspelled NonTerminal
// reference, so an UnknownNonTerminal diagnostic can offer a "did you
// mean" hint instead of leaving the author to grep the grammar by hand.
package suggest

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxCandidates bounds how many rule names are offered back; beyond this
// the list stops being a hint and starts being noise.
const MaxCandidates = 3

// RuleNames ranks known against want by fuzzy-match closeness and returns
// up to MaxCandidates names, best match first. Returns an empty slice if
// nothing in known looks close enough to be worth suggesting.
func RuleNames(want string, known []string) []string {
	type scored struct {
		name string
		rank int
	}

	var candidates []scored
	for _, name := range known {
		rank := fuzzy.RankMatchNormalizedFold(want, name)
		if rank < 0 {
			continue
		}
		candidates = append(candidates, scored{name: name, rank: rank})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].rank < candidates[j].rank
	})

	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}
