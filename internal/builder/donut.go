package builder

import (
	"fmt"

	"chartspec/internal/chart"
	"chartspec/internal/options"
	"chartspec/internal/palette"
	"chartspec/internal/vega"
)

// DonutRadiusSignal names the outer radius signal of a donut.
func DonutRadiusSignal(donutName string) string {
	return donutName + "_radius"
}

// AddDonut adds a pie layout, the arc mark and the summary and segment labels.
func AddDonut(spec *vega.Spec, o options.DonutSpecOptions) {
	startAngle := o.Name + "_startAngle"
	endAngle := o.Name + "_endAngle"
	radius := DonutRadiusSignal(o.Name)

	AddTransform(spec, vega.FilteredTableData, vega.Transform{
		Type:       "pie",
		Field:      o.Metric,
		StartAngle: o.StartAngle,
		EndAngle:   map[string]string{"signal": fmt.Sprintf("%v + 2 * PI", o.StartAngle)},
		As:         []string{startAngle, endAngle},
	})

	AddSignal(spec, vega.Signal{Name: radius, Update: "min(width, height) / 2"})

	color := *chart.FieldFacet[string](o.Color)

	arc := vega.Mark{
		Name: o.Name,
		Type: vega.MarkArc,
		From: &vega.From{Data: vega.FilteredTableData},
		Encode: &vega.Encode{
			Enter: vega.EncodeEntry{
				"fill":        GetColorProductionRule(spec, color, o.ColorScheme),
				"x":           vega.Rule(vega.SignalRef("width / 2")),
				"y":           vega.Rule(vega.SignalRef("height / 2")),
				"stroke":      vega.Rule(vega.SignalRef(vega.BackgroundColorSignal)),
				"strokeWidth": vega.Rule(vega.Value(1)),
			},
			Update: vega.EncodeEntry{
				"startAngle":  vega.Rule(vega.FieldRef(startAngle)),
				"endAngle":    vega.Rule(vega.FieldRef(endAngle)),
				"padAngle":    vega.Rule(vega.Value(0.01)),
				"innerRadius": vega.Rule(vega.SignalRef(fmt.Sprintf("%v * %s", o.HoleRatio, radius))),
				"outerRadius": vega.Rule(vega.SignalRef(radius)),
			},
		},
	}

	if o.IsBoolean {
		// Only the first segment is colored; the remainder is a track.
		arc.Encode.Enter["fill"] = vega.Rule(
			vega.ValueRef{
				Test:  fmt.Sprintf("datum.%s !== data('%s')[0].%s", vega.MarkIDField, vega.FilteredTableData, vega.MarkIDField),
				Value: palette.Color("gray-200", o.ColorScheme),
			},
			vega.ScaledField(vega.ColorScale, o.Color),
		)
	}

	addInteraction(spec, interaction{
		Visible:             &arc,
		HighlightBy:         options.HighlightItem,
		Tooltips:            o.ChartTooltips,
		Popovers:            o.ChartPopovers,
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         o.ColorScheme,
	})

	spec.Marks = append(spec.Marks, arc)

	if len(o.DonutSummaries) > 0 {
		spec.Marks = append(spec.Marks, getDonutSummaryMarks(spec, o, o.DonutSummaries[0])...)
	}

	if len(o.SegmentLabels) > 0 && !o.IsBoolean {
		spec.Marks = append(spec.Marks, getSegmentLabelMarks(spec, o, o.SegmentLabels[0])...)
	}
}

// getDonutSummaryMarks renders the metric total, or the first segment's share
// for boolean donuts, in the hole of the donut.
func getDonutSummaryMarks(spec *vega.Spec, o options.DonutSpecOptions, s options.DonutSummarySpecOptions) []vega.Mark {
	aggregate := o.Name + "_aggregate"
	sum := "sum"

	AddData(spec, vega.Data{
		Name:   aggregate,
		Source: vega.FilteredTableData,
		Transform: []vega.Transform{{
			Type:   "aggregate",
			Fields: []string{o.Metric},
			Ops:    []string{"sum"},
			As:     []string{sum},
		}},
	})

	value := NumberFormatExpression("datum."+sum, s.NumberFormat, "", SpecLocale(spec).Number)
	if o.IsBoolean {
		value = fmt.Sprintf("format(data('%s')[0].%s / datum.%s, '.0%%')", vega.FilteredTableData, o.Metric, sum)
	}

	radius := DonutRadiusSignal(o.Name)
	hole := fmt.Sprintf("%v * %s", o.HoleRatio, radius)

	marks := []vega.Mark{{
		Name:        s.Name + "_value",
		Type:        vega.MarkText,
		From:        &vega.From{Data: aggregate},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":          vega.Rule(vega.SignalRef("width / 2")),
			"y":          vega.Rule(vega.SignalRef("height / 2")),
			"text":       vega.Rule(vega.SignalRef(value)),
			"fontSize":   vega.Rule(vega.SignalRef(fmt.Sprintf("max(%s * 0.35, 14)", hole))),
			"fontWeight": vega.Rule(vega.Value("bold")),
			"align":      vega.Rule(vega.Value("center")),
			"baseline":   vega.Rule(vega.Value(summaryBaseline(s.Label))),
			"limit":      vega.Rule(vega.SignalRef(fmt.Sprintf("%s * 1.6", hole))),
		}},
	}}

	if s.Label != "" {
		marks = append(marks, vega.Mark{
			Name:        s.Name + "_label",
			Type:        vega.MarkText,
			From:        &vega.From{Data: aggregate},
			Interactive: vega.Bool(false),
			Encode: &vega.Encode{Update: vega.EncodeEntry{
				"x":        vega.Rule(vega.SignalRef("width / 2")),
				"y":        vega.Rule(vega.SignalRef("height / 2")),
				"dy":       vega.Rule(vega.Value(4)),
				"text":     vega.Rule(vega.Value(s.Label)),
				"fontSize": vega.Rule(vega.SignalRef(fmt.Sprintf("max(%s * 0.12, 12)", hole))),
				"align":    vega.Rule(vega.Value("center")),
				"baseline": vega.Rule(vega.Value("top")),
				"limit":    vega.Rule(vega.SignalRef(fmt.Sprintf("%s * 1.6", hole))),
			}},
		})
	}

	return marks
}

func summaryBaseline(label string) string {
	if label == "" {
		return "middle"
	}

	return "alphabetic"
}

// getSegmentLabelMarks labels each segment outside the arc at its centroid
// angle. Segments smaller than 0.3 radians are left unlabeled.
func getSegmentLabelMarks(spec *vega.Spec, o options.DonutSpecOptions, l options.SegmentLabelSpecOptions) []vega.Mark {
	key := l.LabelKey
	if key == "" {
		key = o.Color
	}

	radius := DonutRadiusSignal(o.Name)
	angle := fmt.Sprintf("(datum.%s_startAngle + datum.%s_endAngle) / 2", o.Name, o.Name)
	visible := fmt.Sprintf("datum.%s_endAngle - datum.%s_startAngle >= 0.3", o.Name, o.Name)

	position := func() vega.EncodeEntry {
		return vega.EncodeEntry{
			"x":     vega.Rule(vega.SignalRef("width / 2")),
			"y":     vega.Rule(vega.SignalRef("height / 2")),
			"theta": vega.Rule(vega.SignalRef(angle)),
			"radius": vega.Rule(vega.ValueRef{
				Signal: radius,
				Offset: 8,
			}),
			"align": vega.Rule(vega.SignalRef(fmt.Sprintf("%s <= PI ? 'left' : 'right'", angle))),
		}
	}

	text := func(expr string) vega.ProductionRule {
		return vega.Rule(vega.ValueRef{Test: visible, Signal: expr}, vega.Value(""))
	}

	label := vega.Mark{
		Name:        l.Name,
		Type:        vega.MarkText,
		From:        &vega.From{Data: vega.FilteredTableData},
		Interactive: vega.Bool(false),
		Encode:      &vega.Encode{Enter: position(), Update: vega.EncodeEntry{}},
	}
	label.Encode.Update["text"] = text("datum." + key)
	label.Encode.Update["fontWeight"] = vega.Rule(vega.Value("bold"))
	label.Encode.Update["baseline"] = vega.Rule(vega.Value("bottom"))

	marks := []vega.Mark{label}

	var parts []string
	if l.Percent {
		parts = append(parts, fmt.Sprintf("format((datum.%s_endAngle - datum.%s_startAngle) / (2 * PI), '.0%%')", o.Name, o.Name))
	}

	if l.Value {
		parts = append(parts, NumberFormatExpression("datum."+o.Metric, l.ValueFormat, "", SpecLocale(spec).Number))
	}

	if len(parts) > 0 {
		expr := parts[0]
		if len(parts) == 2 {
			expr = parts[0] + " + ' | ' + " + parts[1]
		}

		value := vega.Mark{
			Name:        l.Name + "_value",
			Type:        vega.MarkText,
			From:        &vega.From{Data: vega.FilteredTableData},
			Interactive: vega.Bool(false),
			Encode:      &vega.Encode{Enter: position(), Update: vega.EncodeEntry{}},
		}
		value.Encode.Update["text"] = text(expr)
		value.Encode.Update["baseline"] = vega.Rule(vega.Value("top"))

		marks = append(marks, value)
	}

	return marks
}
