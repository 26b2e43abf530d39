package builder

import (
	"fmt"
	"strings"

	"chartspec/internal/options"
	"chartspec/internal/palette"
	"chartspec/internal/vega"
)

const (
	truncatedLabelLimit = 100
	secondaryLabelPad   = 20
)

// ResolveAxisScale returns the scale an axis reads, in order: a scale named
// like the axis, the primary (left) or secondary (right) dual scale, the first
// scale on the axis channel. It reports false when none exists and returns the
// name of the default linear scale.
func ResolveAxisScale(spec *vega.Spec, o options.AxisSpecOptions) (string, bool) {
	channel := o.Channel()

	if s := spec.Scale(o.Name); s != nil && scaleServesChannel(*s, channel) {
		return o.Name, true
	}

	suffix := ""
	switch o.Position {
	case options.Left:
		suffix = "Primary"
	case options.Right:
		suffix = "Secondary"
	}

	if suffix != "" {
		for _, s := range spec.Scales {
			if strings.HasSuffix(s.Name, suffix) && scaleServesChannel(s, channel) {
				return s.Name, true
			}
		}
	}

	for _, s := range spec.Scales {
		if scaleServesChannel(s, channel) {
			return s.Name, true
		}
	}

	return GetScaleName(channel, options.ScaleLinear), false
}

// scaleServesChannel reports whether s maps onto channel. A width or height
// range decides; other scales fall back to their name.
func scaleServesChannel(s vega.Scale, channel string) bool {
	switch s.Range {
	case "width":
		return channel == ChannelX
	case "height":
		return channel == ChannelY
	}

	return ScaleChannel(s.Name) == channel
}

// AddAxis adds the axis, its secondary time axis, baseline and reference lines.
// A missing scale is created as an empty linear scale on the axis channel.
func AddAxis(spec *vega.Spec, o options.AxisSpecOptions) {
	scaleName, found := ResolveAxisScale(spec, o)
	if !found {
		AddMetricScale(spec, scaleName, o.Channel(), options.DefaultMetric)
	}

	scale := spec.Scale(scaleName)
	if o.Range != nil {
		scale.Domain = &vega.Domain{Values: []any{o.Range[0], o.Range[1]}}
		scale.Nice = nil
		scale.Zero = vega.Bool(false)
	}

	axis := vega.Axis{
		Name:            o.Name,
		Scale:           scaleName,
		Orient:          string(o.Position),
		Title:           o.Title,
		Grid:            o.Grid,
		Ticks:           o.Ticks,
		LabelFontWeight: o.LabelFontWeight,
	}

	if o.HideDefaultLabels {
		axis.Labels = vega.Bool(false)
	}

	if !o.Position.IsVertical() {
		axis.LabelAlign = o.LabelAlign
	}

	if o.LabelOrientation == "vertical" {
		axis.LabelAngle = vega.Float(-90)
		if !o.Position.IsVertical() {
			axis.LabelAlign = "right"
		}
	}

	if o.TruncateLabels {
		axis.LabelLimit = truncatedLabelLimit
	}

	if o.TickMinStep > 0 {
		axis.TickMinStep = vega.Float(o.TickMinStep)
	}

	var secondary *vega.Axis

	if scale.Type == vega.ScaleTime {
		secondary = setTimeLabels(&axis, o)
	} else if expr := axisLabelExpression(spec, o); expr != "" {
		axis.Encode = vega.GuideEncode{"labels": {Update: vega.EncodeEntry{"text": vega.Rule(vega.SignalRef(expr))}}}
	}

	spec.Axes = append(spec.Axes, axis)
	if secondary != nil {
		spec.Axes = append(spec.Axes, *secondary)
	}

	if o.Baseline {
		spec.Marks = append(spec.Marks, getBaselineMark(o))
	}

	for _, r := range o.ReferenceLines {
		spec.Marks = append(spec.Marks, getReferenceLineMarks(o, *scale, r)...)
	}
}

// axisLabelExpression formats numeric labels by label format, falling back to
// the number format.
func axisLabelExpression(spec *vega.Spec, o options.AxisSpecOptions) string {
	if o.LabelFormat != "" {
		return LabelFormatExpression("datum.value", o.LabelFormat)
	}

	return NumberFormatExpression("datum.value", o.NumberFormat, o.CurrencyCode, SpecLocale(spec).Number)
}

// setTimeLabels formats a time axis by granularity and returns the context
// axis labelling the enclosing period.
func setTimeLabels(axis *vega.Axis, o options.AxisSpecOptions) *vega.Axis {
	formats := TimeFormats(o.Granularity)

	axis.Format = formats.Primary
	axis.FormatType = "time"
	axis.TickCount = formats.Interval
	axis.LabelSeparation = 8

	if formats.Secondary == "" || o.HideDefaultLabels {
		return nil
	}

	return &vega.Axis{
		Name:            o.Name + "_secondary",
		Scale:           axis.Scale,
		Orient:          axis.Orient,
		Format:          formats.Secondary,
		FormatType:      "time",
		TickCount:       formats.SecondaryInterval,
		LabelPadding:    secondaryLabelPad,
		LabelAlign:      "left",
		LabelFontWeight: "bold",
	}
}

// getBaselineMark draws a rule along the axis edge, moved out by the offset.
func getBaselineMark(o options.AxisSpecOptions) vega.Mark {
	var update vega.EncodeEntry

	offset := o.BaselineOffset

	switch o.Position {
	case options.Left:
		update = vega.EncodeEntry{
			"x":  vega.Rule(vega.Value(-offset)),
			"y":  vega.Rule(vega.Value(0)),
			"y2": vega.Rule(vega.SignalRef("height")),
		}
	case options.Right:
		update = vega.EncodeEntry{
			"x":  vega.Rule(vega.SignalRef(fmt.Sprintf("width + %v", offset))),
			"y":  vega.Rule(vega.Value(0)),
			"y2": vega.Rule(vega.SignalRef("height")),
		}
	case options.Top:
		update = vega.EncodeEntry{
			"x":  vega.Rule(vega.Value(0)),
			"x2": vega.Rule(vega.SignalRef("width")),
			"y":  vega.Rule(vega.Value(-offset)),
		}
	default:
		update = vega.EncodeEntry{
			"x":  vega.Rule(vega.Value(0)),
			"x2": vega.Rule(vega.SignalRef("width")),
			"y":  vega.Rule(vega.SignalRef(fmt.Sprintf("height + %v", offset))),
		}
	}

	update["stroke"] = vega.Rule(vega.Value(palette.Color("gray-800", o.ColorScheme)))
	update["strokeWidth"] = vega.Rule(vega.Value(1))

	return vega.Mark{
		Name:        o.Name + "_baseline",
		Type:        vega.MarkRule,
		Interactive: vega.Bool(false),
		Encode:      &vega.Encode{Update: update},
	}
}

// getReferenceLineMarks draws a rule across the plot at r.Value on the axis
// scale, plus its label. On band scales the position picks the band edge.
func getReferenceLineMarks(o options.AxisSpecOptions, scale vega.Scale, r options.ReferenceLineSpecOptions) []vega.Mark {
	pos := vega.ValueRef{Scale: scale.Name, Value: r.Value}

	if scale.Type == vega.ScaleBand {
		switch r.Position {
		case options.ReferenceBefore:
			pos.Band = vega.Float(0)
		case options.ReferenceAfter:
			pos.Band = vega.Float(1)
		default:
			pos.Band = vega.Float(0.5)
		}
	}

	onAxis, across := o.Channel(), otherChannel(o.Channel())

	rule := vega.Mark{
		Name:        r.Name,
		Type:        vega.MarkRule,
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			onAxis:        vega.Rule(pos),
			across:        vega.Rule(vega.Value(0)),
			across + "2":  vega.Rule(vega.SignalRef(channelRange(across))),
			"stroke":      vega.Rule(vega.Value(palette.Color(r.Color, o.ColorScheme))),
			"strokeDash":  vega.Rule(vega.Value(palette.StrokeDash(r.LineType))),
			"strokeWidth": vega.Rule(vega.Value(r.LineWidth)),
		}},
	}

	marks := []vega.Mark{rule}

	if r.Label != "" {
		label := vega.Mark{
			Name:        r.Name + "_label",
			Type:        vega.MarkText,
			Interactive: vega.Bool(false),
			Encode: &vega.Encode{Update: vega.EncodeEntry{
				onAxis:       vega.Rule(pos),
				"text":       vega.Rule(vega.Value(r.Label)),
				"fontWeight": vega.Rule(vega.Value(r.LabelFontWeight)),
				"fill":       vega.Rule(vega.Value(palette.Color("gray-800", o.ColorScheme))),
			}},
		}

		update := label.Encode.Update
		if across == ChannelY {
			update[across] = vega.Rule(vega.Value(0))
			update["dy"] = vega.Rule(vega.Value(-4))
			update["align"] = vega.Rule(vega.Value("center"))
			update["baseline"] = vega.Rule(vega.Value("bottom"))
		} else {
			update[across] = vega.Rule(vega.SignalRef("width"))
			update["dx"] = vega.Rule(vega.Value(4))
			update["align"] = vega.Rule(vega.Value("left"))
			update["baseline"] = vega.Rule(vega.Value("middle"))
		}

		marks = append(marks, label)
	}

	return marks
}
