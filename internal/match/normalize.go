package match

import (
	"strings"

	"chartspec/internal/naming"
)

// Normalize folds an identifier for fuzzy matching: words are split on case
// and separator boundaries, lowercased and joined, so "metric-range",
// "Metric Range" and "metricRange" all normalize to "metricrange".
func Normalize(s string) string {
	return strings.ToLower(strings.Join(naming.Tokenize(s), ""))
}
