package builder

import (
	"chartspec/internal/options"
	"chartspec/internal/palette"
	"chartspec/internal/vega"
)

// AddScatter adds a symbol per datum, its scales and its decorations.
func AddScatter(spec *vega.Spec, o options.ScatterSpecOptions) {
	dimScale, dimField := addLineDimensionScale(spec, o.Dimension, o.DimensionScaleType, 0)
	metricScale := AddMetricScale(spec, MetricScaleName(ChannelY, o.MetricAxis), ChannelY, o.Metric)

	for _, p := range o.ScatterPaths {
		spec.Marks = append(spec.Marks, getScatterPathGroup(o, p, dimScale, dimField, metricScale))
	}

	fill := GetColorProductionRule(spec, o.Color, o.ColorScheme)

	symbol := vega.Mark{
		Name: o.Name,
		Type: vega.MarkSymbol,
		From: &vega.From{Data: vega.FilteredTableData},
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":           vega.Rule(vega.ScaledField(dimScale, dimField)),
			"y":           vega.Rule(vega.ScaledField(metricScale, o.Metric)),
			"fill":        fill,
			"fillOpacity": GetOpacityProductionRule(spec, o.Opacity),
			"stroke":      append(vega.ProductionRule{}, fill...),
			"strokeDash":  GetStrokeDashProductionRule(spec, o.LineType),
			"strokeWidth": GetLineWidthProductionRule(spec, o.LineWidth),
			"size":        GetSymbolSizeProductionRule(spec, o.Size),
		}},
	}

	addInteraction(spec, interaction{
		Visible:             &symbol,
		Dimension:           o.Dimension,
		HighlightBy:         options.HighlightItem,
		Tooltips:            o.ChartTooltips,
		Popovers:            o.ChartPopovers,
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         o.ColorScheme,
	})

	spec.Marks = append(spec.Marks, symbol)

	for _, t := range o.Trendlines {
		AddTrendline(spec, t, trendlineScales{dimScale: dimScale, dimField: dimField, metricScale: metricScale})
	}
}

// getScatterPathGroup connects the points sharing the group-by fields with a
// trail drawn behind the symbols.
func getScatterPathGroup(o options.ScatterSpecOptions, p options.ScatterPathSpecOptions, dimScale, dimField, metricScale string) vega.Mark {
	facet := p.Name + "_facet"

	groupby := p.GroupBy
	if len(groupby) == 0 {
		groupby = []string{vega.SeriesIDField}
	}

	return vega.Mark{
		Name: p.Name + "_group",
		Type: vega.MarkGroup,
		From: &vega.From{Facet: &vega.Facet{Name: facet, Data: vega.FilteredTableData, Groupby: groupby}},
		Marks: []vega.Mark{{
			Name:        p.Name,
			Type:        vega.MarkTrail,
			From:        &vega.From{Data: facet},
			Interactive: vega.Bool(false),
			Encode: &vega.Encode{Update: vega.EncodeEntry{
				"x":           vega.Rule(vega.ScaledField(dimScale, dimField)),
				"y":           vega.Rule(vega.ScaledField(metricScale, o.Metric)),
				"fill":        vega.Rule(vega.Value(palette.Color(p.Color, o.ColorScheme))),
				"fillOpacity": vega.Rule(vega.Value(p.Opacity)),
				"size":        vega.Rule(vega.Value(p.PathWidth)),
			}},
		}},
	}
}
