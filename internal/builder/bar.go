package builder

import (
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

const barCornerRadius = 6

// barGeometry holds the channel assignment and scales of one bar.
type barGeometry struct {
	dimChannel    string
	metricChannel string
	dimScale      string
	metricScale   string
	// startField and endField bound each bar along the metric; startField is
	// empty when bars start at zero.
	startField string
	endField   string
	dual       *DualAxisScaleNames
	dualTest   string
}

func (g barGeometry) metricRule(field string) vega.ProductionRule {
	if g.dual != nil {
		return dualScaledRule(*g.dual, g.dualTest, field)
	}

	return vega.Rule(vega.ScaledField(g.metricScale, field))
}

func (g barGeometry) baseRule() vega.ProductionRule {
	if g.startField != "" {
		return g.metricRule(g.startField)
	}

	if g.dual != nil {
		return dualScaledValueRule(*g.dual, g.dualTest, 0)
	}

	return vega.Rule(vega.ValueRef{Scale: g.metricScale, Value: 0})
}

// AddBar adds a stacked or dodged bar, its scales and its decorations.
func AddBar(spec *vega.Spec, o options.BarSpecOptions) {
	g := addBarScales(spec, o)

	var group vega.Mark

	if o.Type == options.Dodged {
		group = getDodgedBarGroup(spec, o, g)
	} else {
		group = getStackedBarGroup(spec, o, g)
	}

	for _, a := range o.BarAnnotations {
		group.Marks = append(group.Marks, getBarAnnotationMarks(spec, o, g, a)...)
	}

	spec.Marks = append(spec.Marks, group)

	for _, t := range o.Trendlines {
		AddTrendline(spec, t, trendlineScales{
			dimScale:    g.dimScale,
			dimField:    o.Dimension,
			metricScale: g.metricScale,
			band:        true,
			horizontal:  o.Orientation == options.Horizontal,
			dual:        g.dual,
			dualTest:    g.dualTest,
		})
	}
}

func addBarScales(spec *vega.Spec, o options.BarSpecOptions) barGeometry {
	g := barGeometry{dimChannel: ChannelX, metricChannel: ChannelY}
	if o.Orientation == options.Horizontal {
		g.dimChannel, g.metricChannel = ChannelY, ChannelX
	}

	g.dimScale = AddBandScale(spec, g.dimChannel, o.Dimension, o.PaddingRatio, o.PaddingOuter)
	g.metricScale = MetricScaleName(g.metricChannel, o.MetricAxis)

	g.endField = o.Metric
	if o.Type != options.Dodged {
		AddTransform(spec, vega.FilteredTableData, GetStackTransform(o.Dimension, o.Metric, o.Order))
		g.startField, g.endField = StackFields(o.Metric)
	}

	if o.DualMetricAxis {
		names, test := addDualMetricAxisData(spec, o.Name, g.metricScale, g.metricChannel, g.endField)
		g.dual = &names
		g.dualTest = test

		return g
	}

	AddMetricScale(spec, g.metricScale, g.metricChannel, g.endField)

	return g
}

func getBarRect(spec *vega.Spec, o options.BarSpecOptions, g barGeometry, from string, dimEnc vega.EncodeEntry) vega.Mark {
	rect := vega.Mark{
		Name:   o.Name,
		Type:   vega.MarkRect,
		From:   &vega.From{Data: from},
		Encode: &vega.Encode{Enter: dimEnc, Update: vega.EncodeEntry{}},
	}

	update := rect.Encode.Update
	update[g.metricChannel] = g.metricRule(g.endField)
	update[g.metricChannel+"2"] = g.baseRule()

	fill := GetColorProductionRule(spec, o.Color, o.ColorScheme)
	update["fill"] = fill
	update["fillOpacity"] = GetOpacityProductionRule(spec, o.Opacity)
	update["stroke"] = append(vega.ProductionRule{}, fill...)
	update["strokeDash"] = GetStrokeDashProductionRule(spec, o.LineType)
	update["strokeWidth"] = GetLineWidthProductionRule(spec, o.LineWidth)

	radius := float64(barCornerRadius)
	if o.HasSquareCorners {
		radius = 0
	}

	if o.Orientation == options.Horizontal {
		update["cornerRadiusTopRight"] = vega.Rule(vega.Value(radius))
		update["cornerRadiusBottomRight"] = vega.Rule(vega.Value(radius))
	} else {
		update["cornerRadiusTopLeft"] = vega.Rule(vega.Value(radius))
		update["cornerRadiusTopRight"] = vega.Rule(vega.Value(radius))
	}

	addInteraction(spec, interaction{
		Visible:             &rect,
		Dimension:           o.Dimension,
		HighlightBy:         options.HighlightItem,
		Tooltips:            o.ChartTooltips,
		Popovers:            o.ChartPopovers,
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         o.ColorScheme,
	})

	return rect
}

func bandSize(channel string) string {
	if channel == ChannelX {
		return "width"
	}

	return "height"
}

func getStackedBarGroup(spec *vega.Spec, o options.BarSpecOptions, g barGeometry) vega.Mark {
	dimEnc := vega.EncodeEntry{
		g.dimChannel:           vega.Rule(vega.ScaledField(g.dimScale, o.Dimension)),
		bandSize(g.dimChannel): vega.Rule(vega.ValueRef{Scale: g.dimScale, Band: vega.Float(1)}),
	}

	return vega.Mark{
		Name:  o.Name + "_group",
		Type:  vega.MarkGroup,
		Marks: []vega.Mark{getBarRect(spec, o, g, vega.FilteredTableData, dimEnc)},
	}
}

// DodgedPositionScale is the in-group band scale that places dodged bars.
func DodgedPositionScale(barName string) string {
	return barName + "_position"
}

func getDodgedBarGroup(spec *vega.Spec, o options.BarSpecOptions, g barGeometry) vega.Mark {
	facet := o.Name + "_facet"
	position := DodgedPositionScale(o.Name)

	positionField := o.Color.Field()
	if positionField == "" {
		positionField = vega.SeriesIDField
	}

	size := bandSize(g.dimChannel)
	dimEnc := vega.EncodeEntry{
		g.dimChannel: vega.Rule(vega.ScaledField(position, positionField)),
		size:         vega.Rule(vega.ValueRef{Scale: position, Band: vega.Float(1)}),
	}

	rect := getBarRect(spec, o, g, facet, dimEnc)

	return vega.Mark{
		Name: o.Name + "_group",
		Type: vega.MarkGroup,
		From: &vega.From{Facet: &vega.Facet{
			Name:    facet,
			Data:    vega.FilteredTableData,
			Groupby: []string{o.Dimension},
		}},
		Encode: &vega.Encode{Enter: vega.EncodeEntry{
			g.dimChannel: vega.Rule(vega.ScaledField(g.dimScale, o.Dimension)),
			size:         vega.Rule(vega.ValueRef{Scale: g.dimScale, Band: vega.Float(1)}),
		}},
		Scales: []vega.Scale{{
			Name:         position,
			Type:         vega.ScaleBand,
			Domain:       &vega.Domain{Data: vega.FilteredTableData, Fields: []string{positionField}},
			Range:        size,
			PaddingInner: vega.Float(o.GroupedPadding),
		}},
		Marks: []vega.Mark{rect},
	}
}
