package treeindex

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchByApproximateSurname ranks the tree's surname buckets against query
// using fuzzysearch's normalized, case- and accent-folding rank function
// (the same helper `flyingrobots/go-redis-work-queue`'s TUI uses for its
// live filter box, `fuzzy.RankFindNormalizedFold`). It is a cheap,
// approximate pre-filter: the CLI's interactive anchor picker (`pick`
// subcommand) uses it to narrow thousands of candidate surnames down to a
// short list before a human picks one, and before the Fuzzy Scorer's exact,
// weighted comparison ever runs on a specific pair.
func (t *Tree) SearchByApproximateSurname(query string, limit int) []string {
	if query == "" || limit <= 0 {
		return nil
	}

	surnames := make([]string, 0, len(t.bySurname))
	for s := range t.bySurname {
		surnames = append(surnames, s)
	}
	sort.Strings(surnames)

	ranks := fuzzy.RankFindNormalizedFold(query, surnames)
	sort.Sort(ranks)

	out := make([]string, 0, limit)
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) >= limit {
			break
		}
	}
	return out
}
