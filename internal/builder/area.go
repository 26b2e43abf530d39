package builder

import (
	"chartspec/internal/chart"
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

// AddArea adds an area per series, stacked unless the options carry explicit
// start and end fields.
func AddArea(spec *vega.Spec, o options.AreaSpecOptions) {
	dimScale, dimField := addLineDimensionScale(spec, o.Dimension, o.ScaleType, o.Padding)
	metricScale := MetricScaleName(ChannelY, "")

	start, end := o.MetricStart, o.MetricEnd
	if o.IsStacked() {
		AddTransform(spec, vega.FilteredTableData, GetStackTransform(dimField, o.Metric, ""))
		start, end = StackFields(o.Metric)
	}

	AddMetricScale(spec, metricScale, ChannelY, start, end)

	dimRef := vega.ScaledField(dimScale, dimField)
	if o.ScaleType == options.ScaleBand {
		dimRef.Band = vega.Float(0.5)
	}

	facet := o.Name + "_facet"
	color := *chart.FieldFacet[string](o.Color)

	area := vega.Mark{
		Name: o.Name,
		Type: vega.MarkArea,
		From: &vega.From{Data: facet},
		Encode: &vega.Encode{
			Enter: vega.EncodeEntry{
				"y":    vega.Rule(vega.ScaledField(metricScale, start)),
				"y2":   vega.Rule(vega.ScaledField(metricScale, end)),
				"fill": GetColorProductionRule(spec, color, o.ColorScheme),
			},
			Update: vega.EncodeEntry{
				"x":           vega.Rule(dimRef),
				"fillOpacity": vega.Rule(vega.Value(o.Opacity)),
			},
		},
	}

	addInteraction(spec, interaction{
		Visible:             &area,
		Dimension:           o.Dimension,
		HighlightBy:         options.HighlightSeries,
		Tooltips:            seriesTooltips(o.ChartTooltips),
		Popovers:            o.ChartPopovers,
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         o.ColorScheme,
	})

	spec.Marks = append(spec.Marks, vega.Mark{
		Name: o.Name + "_group",
		Type: vega.MarkGroup,
		From: &vega.From{Facet: &vega.Facet{
			Name:    facet,
			Data:    vega.FilteredTableData,
			Groupby: []string{o.Color},
		}},
		Marks: []vega.Mark{area},
	})
}

// seriesTooltips highlights by series: an area has one item per series.
func seriesTooltips(in []options.ChartTooltipSpecOptions) []options.ChartTooltipSpecOptions {
	out := make([]options.ChartTooltipSpecOptions, len(in))
	for i, t := range in {
		t.HighlightBy = options.HighlightSeries
		out[i] = t
	}

	return out
}
