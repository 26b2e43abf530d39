package builder

import (
	"fmt"

	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/palette"
	"chartspec/internal/vega"
)

// GetColorProductionRule scales a field color through the color scale and
// resolves a static color through the palette.
func GetColorProductionRule(spec *vega.Spec, color chart.ColorFacet, scheme palette.ColorScheme) vega.ProductionRule {
	if color.IsStatic() {
		return vega.Rule(vega.Value(palette.Color(color.Value(), scheme)))
	}

	AddFieldToFacetScale(spec, vega.ColorScale, color.Field())

	return vega.Rule(vega.ScaledField(vega.ColorScale, color.Field()))
}

// GetStrokeDashProductionRule encodes a line type as a dash array.
func GetStrokeDashProductionRule(spec *vega.Spec, lineType chart.LineTypeFacet) vega.ProductionRule {
	if lineType.IsStatic() {
		return vega.Rule(vega.Value(palette.StrokeDash(lineType.Value())))
	}

	AddFieldToFacetScale(spec, vega.LineTypeScale, lineType.Field())

	return vega.Rule(vega.ScaledField(vega.LineTypeScale, lineType.Field()))
}

// GetOpacityProductionRule encodes an opacity facet.
func GetOpacityProductionRule(spec *vega.Spec, opacity chart.NumericFacet) vega.ProductionRule {
	if opacity.IsStatic() {
		return vega.Rule(vega.Value(opacity.Value()))
	}

	AddFieldToFacetScale(spec, vega.OpacityScale, opacity.Field())

	return vega.Rule(vega.ScaledField(vega.OpacityScale, opacity.Field()))
}

// GetLineWidthProductionRule encodes a line width facet in pixels.
func GetLineWidthProductionRule(spec *vega.Spec, width chart.NumericFacet) vega.ProductionRule {
	if width.IsStatic() {
		return vega.Rule(vega.Value(width.Value()))
	}

	AddFieldToFacetScale(spec, vega.LineWidthScale, width.Field())

	return vega.Rule(vega.ScaledField(vega.LineWidthScale, width.Field()))
}

// GetSymbolSizeProductionRule encodes a symbol area facet.
func GetSymbolSizeProductionRule(spec *vega.Spec, size chart.NumericFacet) vega.ProductionRule {
	if size.IsStatic() {
		return vega.Rule(vega.Value(size.Value()))
	}

	AddFieldToFacetScale(spec, vega.SymbolSizeScale, size.Field())

	return vega.Rule(vega.ScaledField(vega.SymbolSizeScale, size.Field()))
}

// FacetGroupby lists the fields of the field facets, for grouping a mark into series.
func FacetGroupby(color chart.ColorFacet, lineType chart.LineTypeFacet, opacity chart.NumericFacet) []string {
	var out []string

	for _, f := range []string{color.Field(), lineType.Field(), opacity.Field()} {
		if f != "" {
			out = common.AppendIfAbsent(out, f)
		}
	}

	if len(out) == 0 {
		out = []string{vega.SeriesIDField}
	}

	return out
}

// GetCursor returns a pointer cursor rule for clickable marks.
func GetCursor(clickable bool) vega.ProductionRule {
	if !clickable {
		return nil
	}

	return vega.Rule(vega.Value("pointer"))
}

// GetSelectedStrokeRule outlines the selected datum.
func GetSelectedStrokeRule(scheme palette.ColorScheme, fallback vega.ProductionRule) vega.ProductionRule {
	rule := vega.Rule(vega.ValueRef{
		Test:  fmt.Sprintf("isValid(%s) && %s === datum.%s", vega.SelectedItemSignal, vega.SelectedItemSignal, vega.MarkIDField),
		Value: palette.Color("static-blue", scheme),
	})

	return append(rule, fallback...)
}

// GetHighlightedItemOpacityRule dims every datum but the highlighted one.
func GetHighlightedItemOpacityRule() vega.ValueRef {
	return vega.ValueRef{
		Test: fmt.Sprintf("isValid(%s) && %s !== datum.%s",
			vega.HighlightedItemSignal, vega.HighlightedItemSignal, vega.MarkIDField),
		Value: 1.0 / vega.HighlightContrastRatio,
	}
}

// SetEntry sets channel of entry unless rule is empty.
func SetEntry(entry vega.EncodeEntry, channel string, rule vega.ProductionRule) {
	if len(rule) > 0 {
		entry[channel] = rule
	}
}
