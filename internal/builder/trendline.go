package builder

import (
	"fmt"

	"chartspec/internal/common"
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

// trendlineScales tells a trendline where its parent draws.
type trendlineScales struct {
	dimScale    string
	dimField    string
	metricScale string
	// band centers the line on band scale steps.
	band bool
	// horizontal swaps the dimension onto the y channel.
	horizontal bool
	// dual splits the metric over the primary and secondary scales.
	dual     *DualAxisScaleNames
	dualTest string
}

func (s trendlineScales) metricRule(field string) vega.ProductionRule {
	if s.dual != nil {
		return dualScaledRule(*s.dual, s.dualTest, field)
	}

	return vega.Rule(vega.ScaledField(s.metricScale, field))
}

// TrendlineValueField is the field holding the computed trend value.
func TrendlineValueField(trendlineName, metric string) string {
	return trendlineName + "_" + metric
}

// AddTrendline adds the data source and line mark of one trendline.
func AddTrendline(spec *vega.Spec, t options.TrendlineSpecOptions, s trendlineScales) {
	dataName := t.Name + "_data"
	valueField := TrendlineValueField(t.Name, t.Parent.Metric)

	groupby := common.AppendIfAbsent([]string{vega.SeriesIDField}, fieldsOf(
		t.Parent.Color.Field(), t.Parent.LineType.Field(), t.Color.Field(), t.LineType.Field(),
	)...)

	AddData(spec, vega.Data{
		Name:      dataName,
		Source:    vega.FilteredTableData,
		Transform: getTrendlineTransforms(t, s.dimField, valueField, groupby),
	})

	dimChannel, metricChannel := ChannelX, ChannelY
	if s.horizontal {
		dimChannel, metricChannel = ChannelY, ChannelX
	}

	dimRef := vega.ScaledField(s.dimScale, s.dimField)
	if s.band {
		dimRef.Band = vega.Float(0.5)
	}

	line := vega.Mark{
		Name:        t.Name,
		Type:        vega.MarkLine,
		From:        &vega.From{Data: t.Name + "_facet"},
		Interactive: vega.Bool(len(t.ChartTooltips) > 0),
		Encode: &vega.Encode{
			Enter: vega.EncodeEntry{
				dimChannel:    vega.Rule(dimRef),
				metricChannel: s.metricRule(valueField),
			},
			Update: vega.EncodeEntry{},
		},
	}

	update := line.Encode.Update
	update["stroke"] = GetColorProductionRule(spec, t.Color, t.Parent.ColorScheme)
	update["strokeDash"] = GetStrokeDashProductionRule(spec, t.LineType)
	update["strokeWidth"] = GetLineWidthProductionRule(spec, t.LineWidth)
	update["strokeOpacity"] = GetOpacityProductionRule(spec, t.Opacity)

	if t.DisplayOnHover {
		update["opacity"] = vega.Rule(
			vega.ValueRef{
				Test:  fmt.Sprintf("isValid(%s) && %s === datum.%s", vega.HighlightedSeriesSignal, vega.HighlightedSeriesSignal, vega.SeriesIDField),
				Value: 1,
			},
			vega.Value(0),
		)
	}

	if len(t.ChartTooltips) > 0 {
		SetEntry(update, "tooltip", getTooltipRule(t.ChartTooltips[0], false))
	}

	group := vega.Mark{
		Name:  t.Name + "_group",
		Type:  vega.MarkGroup,
		From:  &vega.From{Facet: &vega.Facet{Name: t.Name + "_facet", Data: dataName, Groupby: groupby}},
		Marks: []vega.Mark{line},
	}

	if t.HighlightRawPoint {
		group.Marks = append(group.Marks, getTrendlineRawPoint(t, s, dimChannel, metricChannel))
	}

	spec.Marks = append(spec.Marks, group)
}

func fieldsOf(fields ...string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}

	return out
}

func getTrendlineTransforms(t options.TrendlineSpecOptions, dimField, valueField string, groupby []string) []vega.Transform {
	var transforms []vega.Transform

	for _, key := range t.ExcludeDataKeys {
		transforms = append(transforms, vega.Transform{Type: "filter", Expr: "!datum." + key})
	}

	if lo := t.DimensionRange[0]; lo != nil {
		transforms = append(transforms, vega.Transform{Type: "filter", Expr: fmt.Sprintf("datum.%s >= %v", dimField, *lo)})
	}

	if hi := t.DimensionRange[1]; hi != nil {
		transforms = append(transforms, vega.Transform{Type: "filter", Expr: fmt.Sprintf("datum.%s <= %v", dimField, *hi)})
	}

	metric := t.Parent.Metric

	switch t.Method.Kind {
	case options.MethodAggregate:
		transforms = append(transforms, vega.Transform{
			Type:    "joinaggregate",
			Groupby: groupby,
			Ops:     []string{t.Method.Name},
			Fields:  []string{metric},
			As:      []string{valueField},
		})
	case options.MethodWindow:
		transforms = append(transforms, vega.Transform{
			Type:    "window",
			Groupby: groupby,
			Sort:    &vega.Compare{Field: dimField},
			Ops:     []string{t.Method.Name},
			Fields:  []string{metric},
			Frame:   []any{-(t.Method.Order - 1), 0},
			As:      []string{valueField},
		})
	default:
		r := vega.Transform{
			Type:    "regression",
			Method:  t.Method.Name,
			Groupby: groupby,
			X:       dimField,
			Y:       metric,
			As:      []string{dimField, valueField},
		}
		if t.Method.Name == "poly" {
			r.Order = t.Method.Order
		}

		transforms = append(transforms, r)
	}

	return transforms
}

func getTrendlineRawPoint(t options.TrendlineSpecOptions, s trendlineScales, dimChannel, metricChannel string) vega.Mark {
	dimRef := vega.ScaledField(s.dimScale, s.dimField)
	if s.band {
		dimRef.Band = vega.Float(0.5)
	}

	return vega.Mark{
		Name:        t.Name + "_rawPoint",
		Type:        vega.MarkSymbol,
		From:        &vega.From{Data: vega.FilteredTableData},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			dimChannel:    vega.Rule(dimRef),
			metricChannel: s.metricRule(t.Parent.Metric),
			"opacity": vega.Rule(
				vega.ValueRef{
					Test:  fmt.Sprintf("isValid(%s) && %s === datum.%s", vega.HighlightedItemSignal, vega.HighlightedItemSignal, vega.MarkIDField),
					Value: 1,
				},
				vega.Value(0),
			),
		}},
	}
}
