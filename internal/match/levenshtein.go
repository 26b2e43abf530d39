package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions turning a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a as the shorter string; only two rows are needed.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity maps the edit distance to a score in [0, 1], where 1 means
// identical: 1 - distance / max(len(a), len(b)).
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(len(a), len(b)))
}
