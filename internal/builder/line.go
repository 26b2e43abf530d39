package builder

import (
	"fmt"

	"chartspec/internal/options"
	"chartspec/internal/vega"
)

// lineGeometry holds the scales of a line and the field drawn on x.
type lineGeometry struct {
	dimScale    string
	dimField    string
	band        bool
	metricScale string
	dual        *DualAxisScaleNames
	dualTest    string
}

func (g lineGeometry) dimRule() vega.ProductionRule {
	ref := vega.ScaledField(g.dimScale, g.dimField)
	if g.band {
		ref.Band = vega.Float(0.5)
	}

	return vega.Rule(ref)
}

func (g lineGeometry) metricRule(field string) vega.ProductionRule {
	if g.dual != nil {
		return dualScaledRule(*g.dual, g.dualTest, field)
	}

	return vega.Rule(vega.ScaledField(g.metricScale, field))
}

// addLineDimensionScale adds the x scale of a line-like mark and returns the
// field to encode. Time dimensions are truncated by a time unit transform.
func addLineDimensionScale(spec *vega.Spec, dimension string, scaleType options.ScaleType, padding float64) (scale, field string) {
	field = dimension
	if scaleType == options.ScaleTime {
		field = AddTimeTransform(spec, dimension)
	}

	return AddDimensionScale(spec, ChannelX, scaleType, field, padding), field
}

// AddLine adds a line, its scales and its decorations.
func AddLine(spec *vega.Spec, o options.LineSpecOptions) {
	g := lineGeometry{band: o.ScaleType == options.ScaleBand}
	g.dimScale, g.dimField = addLineDimensionScale(spec, o.Dimension, o.ScaleType, o.Padding)
	g.metricScale = MetricScaleName(ChannelY, o.MetricAxis)

	if o.DualMetricAxis {
		names, test := addDualMetricAxisData(spec, o.Name, g.metricScale, ChannelY, o.Metric)
		g.dual = &names
		g.dualTest = test
	} else {
		metricFields := []string{o.Metric}
		for _, r := range o.MetricRanges {
			if r.ScaleAxisToFit {
				metricFields = append(metricFields, r.MetricStart, r.MetricEnd)
			}
		}

		AddMetricScale(spec, g.metricScale, ChannelY, metricFields...)
	}

	facet := o.Name + "_facet"

	line := vega.Mark{
		Name:   o.Name,
		Type:   vega.MarkLine,
		From:   &vega.From{Data: facet},
		Encode: &vega.Encode{Enter: vega.EncodeEntry{}, Update: vega.EncodeEntry{}},
	}

	enter := line.Encode.Enter
	enter["y"] = g.metricRule(o.Metric)
	enter["interpolate"] = vega.Rule(vega.Value(o.Interpolate))

	update := line.Encode.Update
	update["x"] = g.dimRule()
	update["stroke"] = GetColorProductionRule(spec, o.Color, o.ColorScheme)
	update["strokeDash"] = GetStrokeDashProductionRule(spec, o.LineType)
	update["strokeOpacity"] = GetOpacityProductionRule(spec, o.Opacity)
	update["strokeWidth"] = GetLineWidthProductionRule(spec, o.LineWidth)

	group := vega.Mark{
		Name: o.Name + "_group",
		Type: vega.MarkGroup,
		From: &vega.From{Facet: &vega.Facet{
			Name:    facet,
			Data:    vega.FilteredTableData,
			Groupby: FacetGroupby(o.Color, o.LineType, o.Opacity),
		}},
	}

	for _, r := range o.MetricRanges {
		group.Marks = append(group.Marks, getMetricRangeMarks(spec, o, g, r, facet)...)
	}

	var hoverMarks []vega.Mark
	if o.IsInteractive() {
		hoverMarks = getLineHoverMarks(spec, o, g, &line)
	}

	group.Marks = append(group.Marks, line)
	spec.Marks = append(spec.Marks, group)
	spec.Marks = append(spec.Marks, hoverMarks...)

	if o.StaticPoint != "" {
		spec.Marks = append(spec.Marks, getStaticPointMarks(spec, o, g)...)
	}

	for _, t := range o.Trendlines {
		AddTrendline(spec, t, trendlineScales{
			dimScale:    g.dimScale,
			dimField:    g.dimField,
			metricScale: g.metricScale,
			band:        g.band,
			dual:        g.dual,
			dualTest:    g.dualTest,
		})
	}
}

// getLineHoverMarks returns the highlighted point, the invisible points and
// the voronoi cells that receive pointer events for line.
func getLineHoverMarks(spec *vega.Spec, o options.LineSpecOptions, g lineGeometry, line *vega.Mark) []vega.Mark {
	pointsName := o.Name + "_pointsForVoronoi"
	color := GetColorProductionRule(spec, o.Color, o.ColorScheme)

	point := vega.Mark{
		Name:        o.Name + "_point",
		Type:        vega.MarkSymbol,
		From:        &vega.From{Data: vega.FilteredTableData},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":           g.dimRule(),
			"y":           g.metricRule(o.Metric),
			"fill":        color,
			"stroke":      vega.Rule(vega.SignalRef(vega.BackgroundColorSignal)),
			"strokeWidth": vega.Rule(vega.Value(2)),
			"size":        vega.Rule(vega.Value(64)),
			"opacity": vega.Rule(
				vega.ValueRef{
					Test: fmt.Sprintf("isValid(%s) && %s === datum.%s",
						vega.HighlightedItemSignal, vega.HighlightedItemSignal, vega.MarkIDField),
					Value: 1,
				},
				vega.Value(0),
			),
		}},
	}

	points := vega.Mark{
		Name:        pointsName,
		Type:        vega.MarkSymbol,
		From:        &vega.From{Data: vega.FilteredTableData},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":    g.dimRule(),
			"y":    g.metricRule(o.Metric),
			"fill": vega.Rule(vega.Value("transparent")),
		}},
	}

	voronoi := vega.Mark{
		Name: o.Name + "_voronoi",
		Type: vega.MarkPath,
		From: &vega.From{Data: pointsName},
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"fill":   vega.Rule(vega.Value("transparent")),
			"stroke": vega.Rule(vega.Value("transparent")),
		}},
		Transform: []vega.Transform{{
			Type: "voronoi",
			X:    "datum.x",
			Y:    "datum.y",
			Size: []any{map[string]string{"signal": "width"}, map[string]string{"signal": "height"}},
		}},
	}

	addInteraction(spec, interaction{
		Visible:             line,
		Hover:               &voronoi,
		Voronoi:             true,
		Dimension:           o.Dimension,
		HighlightBy:         options.HighlightSeries,
		Tooltips:            o.ChartTooltips,
		Popovers:            o.ChartPopovers,
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         o.ColorScheme,
	})

	AddHighlightedItemEvents(spec, voronoi.Name, true)

	return []vega.Mark{point, points, voronoi}
}

func getStaticPointMarks(spec *vega.Spec, o options.LineSpecOptions, g lineGeometry) []vega.Mark {
	dataName := o.Name + "_staticPointData"

	AddData(spec, vega.Data{
		Name:      dataName,
		Source:    vega.FilteredTableData,
		Transform: []vega.Transform{{Type: "filter", Expr: fmt.Sprintf("datum.%s === true", o.StaticPoint)}},
	})

	return []vega.Mark{{
		Name:        o.Name + "_staticPoints",
		Type:        vega.MarkSymbol,
		From:        &vega.From{Data: dataName},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":           g.dimRule(),
			"y":           g.metricRule(o.Metric),
			"fill":        GetColorProductionRule(spec, o.Color, o.ColorScheme),
			"stroke":      vega.Rule(vega.SignalRef(vega.BackgroundColorSignal)),
			"strokeWidth": vega.Rule(vega.Value(2)),
			"size":        vega.Rule(vega.Value(64)),
		}},
	}}
}

// getMetricRangeMarks shades the band between the start and end fields of r
// inside the line facet, bordered by lines in the range line style.
func getMetricRangeMarks(spec *vega.Spec, o options.LineSpecOptions, g lineGeometry, r options.MetricRangeSpecOptions, facet string) []vega.Mark {
	color := GetColorProductionRule(spec, r.Color, o.ColorScheme)

	var hover vega.ProductionRule
	if r.DisplayOnHover {
		hover = vega.Rule(
			vega.ValueRef{
				Test: fmt.Sprintf("isValid(%s) && %s === datum.%s",
					vega.HighlightedSeriesSignal, vega.HighlightedSeriesSignal, vega.SeriesIDField),
				Value: 1,
			},
			vega.Value(0),
		)
	}

	area := vega.Mark{
		Name:        r.Name + "_area",
		Type:        vega.MarkArea,
		From:        &vega.From{Data: facet},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":           g.dimRule(),
			"y":           g.metricRule(r.MetricStart),
			"y2":          g.metricRule(r.MetricEnd),
			"fill":        color,
			"fillOpacity": vega.Rule(vega.Value(r.RangeOpacity)),
			"interpolate": vega.Rule(vega.Value(o.Interpolate)),
		}},
	}
	SetEntry(area.Encode.Update, "opacity", hover)

	marks := []vega.Mark{area}

	borders := []struct{ suffix, field string }{{"_startLine", r.MetricStart}, {"_endLine", r.MetricEnd}}
	if r.Metric != o.Metric {
		borders = append(borders, struct{ suffix, field string }{"_metricLine", r.Metric})
	}

	for _, b := range borders {
		line := vega.Mark{
			Name:        r.Name + b.suffix,
			Type:        vega.MarkLine,
			From:        &vega.From{Data: facet},
			Interactive: vega.Bool(false),
			Encode: &vega.Encode{Update: vega.EncodeEntry{
				"x":           g.dimRule(),
				"y":           g.metricRule(b.field),
				"stroke":      color,
				"strokeDash":  GetStrokeDashProductionRule(spec, r.LineType),
				"strokeWidth": GetLineWidthProductionRule(spec, r.LineWidth),
				"interpolate": vega.Rule(vega.Value(o.Interpolate)),
			}},
		}
		SetEntry(line.Encode.Update, "opacity", hover)

		marks = append(marks, line)
	}

	return marks
}
