package builder

import (
	"fmt"
	"slices"

	"chartspec/internal/vega"
)

// HighlightGroupIDField is the per-datum group id a legend with keys derives.
func HighlightGroupIDField(legendName string) string {
	return legendName + "_highlightGroupId"
}

// GetHighlightOpacityRule dims data that is not part of the highlighted
// series. With keys and a legend name it compares against the highlighted
// group instead, using the group id derived by that legend.
func GetHighlightOpacityRule(keys []string, legendName string) vega.ValueRef {
	signal := vega.HighlightedSeriesSignal
	field := vega.SeriesIDField

	if len(keys) > 0 && legendName != "" {
		signal = vega.HighlightedGroupSignal
		field = HighlightGroupIDField(legendName)
	}

	return vega.ValueRef{
		Test:  fmt.Sprintf("isValid(%s) && %s !== datum.%s", signal, signal, field),
		Value: 1.0 / vega.HighlightContrastRatio,
	}
}

// SetHoverOpacityForMarks splices the highlight rule into the update opacity
// of every leaf mark under marks. The rule goes before the first unconditional
// entry so it is evaluated ahead of the fallback; conditional entries keep
// their relative order. Marks that already carry the rule are left alone.
func SetHoverOpacityForMarks(marks []vega.Mark, keys []string, legendName string) {
	rule := GetHighlightOpacityRule(keys, legendName)

	vega.WalkLeaves(marks, func(m *vega.Mark) {
		update := m.UpdateEntry()
		update["opacity"] = insertRule(update["opacity"], rule)
	})
}

func insertRule(existing vega.ProductionRule, rule vega.ValueRef) vega.ProductionRule {
	if len(existing) == 0 {
		return vega.Rule(rule, vega.Value(1))
	}

	for _, r := range existing {
		if r.Test == rule.Test {
			return existing
		}
	}

	idx := slices.IndexFunc(existing, func(r vega.ValueRef) bool { return !r.HasTest() })
	if idx < 0 {
		return append(slices.Clone(existing), rule)
	}

	return slices.Insert(slices.Clone(existing), idx, rule)
}
