package builder

import (
	"fmt"
	"strings"

	"chartspec/internal/options"
	"chartspec/internal/palette"
	"chartspec/internal/vega"
)

const (
	bulletBarHeight   = 8
	bulletTargetExtra = 6
	bulletLabelHeight = 20
)

// BulletScaleName names the value scale of a bullet.
func BulletScaleName(bulletName string) string {
	return bulletName + "_xscale"
}

// AddBullet adds one bullet row (or column cell) per dimension value.
func AddBullet(spec *vega.Spec, o options.BulletSpecOptions) {
	groupScale := o.Name + "_groupScale"
	groupChannel, extent := ChannelY, "height"
	if o.Direction == options.BulletRow {
		groupChannel, extent = ChannelX, "width"
	}

	AddScale(spec, vega.Scale{
		Name:         groupScale,
		Type:         vega.ScaleBand,
		Domain:       &vega.Domain{Data: vega.FilteredTableData, Field: o.Dimension},
		Range:        extent,
		PaddingInner: vega.Float(0.2),
	})

	width := AddSignal(spec, vega.Signal{Name: o.Name + "_barWidth", Update: "width"})
	if o.Direction == options.BulletRow {
		width.Update = fmt.Sprintf("bandwidth('%s')", groupScale)
	}

	addBulletScale(spec, o)

	facet := o.Name + "_facet"
	group := vega.Mark{
		Name: o.Name + "_group",
		Type: vega.MarkGroup,
		From: &vega.From{Facet: &vega.Facet{Name: facet, Data: vega.FilteredTableData, Groupby: []string{o.Dimension}}},
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			groupChannel: vega.Rule(vega.ScaledField(groupScale, o.Dimension)),
			"width":      vega.Rule(vega.SignalRef(width.Name)),
			"height":     vega.Rule(vega.SignalRef(bulletGroupHeight(o, groupScale))),
		}},
	}

	barY := 0
	if o.LabelPosition == options.BulletLabelTop {
		barY = bulletLabelHeight
	}

	if o.Track {
		group.Marks = append(group.Marks, getBulletTrack(o, facet, barY))
	}

	if len(o.Thresholds) > 0 && !o.ThresholdBarColor {
		group.Marks = append(group.Marks, getBulletThresholds(spec, o, barY))
	}

	group.Marks = append(group.Marks, getBulletBar(o, facet, barY))

	if o.ShowTarget {
		group.Marks = append(group.Marks, getBulletTarget(o, facet, barY))
	}

	group.Marks = append(group.Marks, getBulletLabels(spec, o, facet, barY)...)

	spec.Marks = append(spec.Marks, group)
}

func bulletGroupHeight(o options.BulletSpecOptions, groupScale string) string {
	if o.Direction == options.BulletRow {
		return "height"
	}

	return fmt.Sprintf("bandwidth('%s')", groupScale)
}

// addBulletScale adds the value scale. Normal scales span the data extent of
// the metric and target, fixed scales [0, maxScaleValue] and flexible scales
// the larger of the two.
func addBulletScale(spec *vega.Spec, o options.BulletSpecOptions) {
	s := vega.Scale{
		Name:  BulletScaleName(o.Name),
		Type:  vega.ScaleLinear,
		Range: []any{0, map[string]string{"signal": o.Name + "_barWidth"}},
		Zero:  vega.Bool(true),
	}

	switch o.ScaleType {
	case options.BulletScaleFixed:
		s.Domain = &vega.Domain{Values: []any{0, o.MaxScaleValue}}
	case options.BulletScaleFlexible:
		maxValue := o.Name + "_maxValue"
		AddSignal(spec, vega.Signal{
			Name: maxValue,
			Update: fmt.Sprintf("max(extent(pluck(data('%s'), '%s'))[1], extent(pluck(data('%s'), '%s'))[1])",
				vega.FilteredTableData, o.Metric, vega.FilteredTableData, o.Target),
		})
		s.Domain = &vega.Domain{Signal: fmt.Sprintf("[0, max(%s, %v)]", maxValue, o.MaxScaleValue)}
	default:
		fields := []string{o.Metric}
		if o.ShowTarget {
			fields = append(fields, o.Target)
		}

		s.Domain = &vega.Domain{Data: vega.FilteredTableData, Fields: fields}
		s.Nice = true
	}

	AddScale(spec, s)
}

func getBulletTrack(o options.BulletSpecOptions, facet string, barY int) vega.Mark {
	return vega.Mark{
		Name:        o.Name + "_track",
		Type:        vega.MarkRect,
		From:        &vega.From{Data: facet},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":            vega.Rule(vega.Value(0)),
			"width":        vega.Rule(vega.SignalRef(o.Name + "_barWidth")),
			"y":            vega.Rule(vega.Value(barY)),
			"height":       vega.Rule(vega.Value(bulletBarHeight)),
			"fill":         vega.Rule(vega.Value(palette.Color("gray-200", o.ColorScheme))),
			"cornerRadius": vega.Rule(vega.Value(bulletBarHeight / 2)),
		}},
	}
}

// getBulletThresholds draws the threshold bands behind the bar.
func getBulletThresholds(spec *vega.Spec, o options.BulletSpecOptions, barY int) vega.Mark {
	data := o.Name + "_thresholds"
	scale := BulletScaleName(o.Name)

	values := make([]any, len(o.Thresholds))
	for i, t := range o.Thresholds {
		v := map[string]any{"fill": palette.Color(t.Fill, o.ColorScheme)}
		if t.Min != nil {
			v["thresholdMin"] = *t.Min
		}

		if t.Max != nil {
			v["thresholdMax"] = *t.Max
		}

		values[i] = v
	}

	AddData(spec, vega.Data{Name: data, Values: values})

	return vega.Mark{
		Name:        o.Name + "_thresholdRect",
		Type:        vega.MarkRect,
		From:        &vega.From{Data: data},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x": vega.Rule(
				vega.ValueRef{Test: "isValid(datum.thresholdMin)", Scale: scale, Field: "thresholdMin"},
				vega.Value(0),
			),
			"x2": vega.Rule(
				vega.ValueRef{Test: "isValid(datum.thresholdMax)", Scale: scale, Field: "thresholdMax"},
				vega.SignalRef(o.Name+"_barWidth"),
			),
			"y":           vega.Rule(vega.Value(barY)),
			"height":      vega.Rule(vega.Value(bulletBarHeight)),
			"fill":        vega.Rule(vega.FieldRef("fill")),
			"fillOpacity": vega.Rule(vega.Value(0.2)),
		}},
	}
}

func getBulletBar(o options.BulletSpecOptions, facet string, barY int) vega.Mark {
	fill := vega.Rule(vega.Value(palette.Color(o.Color, o.ColorScheme)))
	if o.ThresholdBarColor && len(o.Thresholds) > 0 {
		fill = bulletThresholdFill(o)
	}

	return vega.Mark{
		Name: o.Name + "_rect",
		Type: vega.MarkRect,
		From: &vega.From{Data: facet},
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":            vega.Rule(vega.Value(0)),
			"x2":           vega.Rule(vega.ScaledField(BulletScaleName(o.Name), o.Metric)),
			"y":            vega.Rule(vega.Value(barY)),
			"height":       vega.Rule(vega.Value(bulletBarHeight)),
			"fill":         fill,
			"cornerRadius": vega.Rule(vega.Value(bulletBarHeight / 2)),
		}},
	}
}

// bulletThresholdFill colors the bar by the threshold its value falls in.
func bulletThresholdFill(o options.BulletSpecOptions) vega.ProductionRule {
	rule := make(vega.ProductionRule, 0, len(o.Thresholds)+1)

	for _, t := range o.Thresholds {
		var tests []string
		if t.Min != nil {
			tests = append(tests, fmt.Sprintf("datum.%s >= %v", o.Metric, *t.Min))
		}

		if t.Max != nil {
			tests = append(tests, fmt.Sprintf("datum.%s < %v", o.Metric, *t.Max))
		}

		if len(tests) == 0 {
			tests = []string{"true"}
		}

		rule = append(rule, vega.ValueRef{
			Test:  strings.Join(tests, " && "),
			Value: palette.Color(t.Fill, o.ColorScheme),
		})
	}

	return append(rule, vega.Value(palette.Color(o.Color, o.ColorScheme)))
}

func getBulletTarget(o options.BulletSpecOptions, facet string, barY int) vega.Mark {
	return vega.Mark{
		Name:        o.Name + "_target",
		Type:        vega.MarkRule,
		From:        &vega.From{Data: facet},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":           vega.Rule(vega.ScaledField(BulletScaleName(o.Name), o.Target)),
			"y":           vega.Rule(vega.Value(barY - bulletTargetExtra/2)),
			"y2":          vega.Rule(vega.Value(barY + bulletBarHeight + bulletTargetExtra/2)),
			"stroke":      vega.Rule(vega.Value(palette.Color("gray-900", o.ColorScheme))),
			"strokeWidth": vega.Rule(vega.Value(2)),
		}},
	}
}

// getBulletLabels returns the dimension label and the formatted metric. Top
// labels sit above the bar; side labels sit beside it.
func getBulletLabels(spec *vega.Spec, o options.BulletSpecOptions, facet string, barY int) []vega.Mark {
	value := NumberFormatExpression("datum."+o.Metric, o.NumberFormat, "", SpecLocale(spec).Number)
	if value == "" {
		value = "datum." + o.Metric
	}

	labelY, baseline := 0, "top"
	if o.LabelPosition == options.BulletLabelSide {
		labelY, baseline = barY+bulletBarHeight/2, "middle"
	}

	text := func(name, align string, x vega.ValueRef, expr string) vega.Mark {
		return vega.Mark{
			Name:        name,
			Type:        vega.MarkText,
			From:        &vega.From{Data: facet},
			Interactive: vega.Bool(false),
			Encode: &vega.Encode{Update: vega.EncodeEntry{
				"x":        vega.Rule(x),
				"y":        vega.Rule(vega.Value(labelY)),
				"text":     vega.Rule(vega.SignalRef(expr)),
				"align":    vega.Rule(vega.Value(align)),
				"baseline": vega.Rule(vega.Value(baseline)),
				"fill":     vega.Rule(vega.Value(palette.Color("gray-800", o.ColorScheme))),
			}},
		}
	}

	label := "datum." + o.Dimension
	if o.MetricLabel != "" {
		label = fmt.Sprintf("%s + ' ' + '%s'", label, escapeQuote(o.MetricLabel))
	}

	marks := []vega.Mark{
		text(o.Name+"_label", "left", vega.Value(0), label),
		text(o.Name+"_valueLabel", "right", vega.SignalRef(o.Name+"_barWidth"), value),
	}

	if o.ShowTargetValue {
		target := NumberFormatExpression("datum."+o.Target, o.NumberFormat, "", SpecLocale(spec).Number)
		if target == "" {
			target = "datum." + o.Target
		}

		m := text(o.Name+"_targetValueLabel", "center", vega.ScaledField(BulletScaleName(o.Name), o.Target), "'Target: ' + "+target)
		m.Encode.Update["y"] = vega.Rule(vega.Value(barY + bulletBarHeight + bulletTargetExtra))
		m.Encode.Update["baseline"] = vega.Rule(vega.Value("top"))
		marks = append(marks, m)
	}

	return marks
}
