package match

import "unicode"

// Distance is the Levenshtein edit distance between a and b counted in runes:
// the fewest single-rune insertions, deletions or substitutions that turn one
// into the other.
func Distance(a, b string) int {
	return distance([]rune(a), []rune(b))
}

// Similarity scores a against b in [0, 1] ignoring case, so a namespace typed
// in the wrong case scores 1. The score is 1 - distance / longer length.
func Similarity(a, b string) float64 {
	ra, rb := fold(a), fold(b)

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(distance(ra, rb))/float64(longest)
}

func fold(s string) []rune {
	out := []rune(s)
	for i, r := range out {
		out[i] = unicode.ToLower(r)
	}

	return out
}

func distance(a, b []rune) int {
	// Keep the row over the shorter input.
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			sub := diag
			if a[i-1] != b[j-1] {
				sub++
			}

			diag = row[i]
			row[i] = min(row[i]+1, row[i-1]+1, sub)
		}
	}

	return row[len(a)]
}
