package match

import (
	"sort"
	"strings"
)

// Thresholds for suggestions.
const (
	// DefaultMinScore is the minimum similarity for a candidate to be suggested.
	DefaultMinScore = 0.6
	// DefaultMaxSuggestions caps the number of suggestions.
	DefaultMaxSuggestions = 3
)

// Candidate is a known name scored against the name being looked up.
type Candidate struct {
	Name  string
	Score float64
	// Normalized form of Name that was compared.
	Normalized string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every name against target and returns them best first.
// A name whose normalized form equals the target's, or contains it whole,
// scores 1.
func Rank(target string, names []string) CandidateList {
	norm := Normalize(target)

	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		n := Normalize(name)

		score := Similarity(norm, n)
		if norm != "" && strings.Contains(n, norm) {
			score = 1.0
		}

		candidates = append(candidates, Candidate{Name: name, Score: score, Normalized: n})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to DefaultMaxSuggestions names close to target.
func Suggest(target string, names []string) []string {
	ranked := Rank(target, names).AboveThreshold(DefaultMinScore).Top(DefaultMaxSuggestions)

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Name
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
