package match

import (
	"sort"
)

// DefaultMinScore is the similarity below which candidates are not suggested.
const DefaultMinScore = 0.7

// Suggest returns up to limit candidates similar to name, best first.
// Comparison ignores case. Candidates scoring below minScore are dropped and
// ties keep input order.
func Suggest(name string, candidates []string, limit int, minScore float64) []string {
	type scored struct {
		value string
		score float64
	}

	var ranked []scored
	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score >= minScore {
			ranked = append(ranked, scored{value: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.value)
	}

	return out
}
