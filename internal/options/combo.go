package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
)

// ComboMarkOptions holds exactly one child mark of a combo.
type ComboMarkOptions struct {
	Bar  *BarOptions
	Line *LineOptions
}

// ComboOptions is the adapted form of a Combo element.
type ComboOptions struct {
	MarkType       chart.Kind
	Name           *string
	Dimension      *string
	DualMetricAxis *bool
	Marks          []ComboMarkOptions
}

// ComboMarkSpecOptions holds exactly one resolved child mark of a combo.
type ComboMarkSpecOptions struct {
	Bar  *BarSpecOptions
	Line *LineSpecOptions
}

// Name of the child mark.
func (m ComboMarkSpecOptions) Name() string {
	switch {
	case m.Bar != nil:
		return m.Bar.Name
	case m.Line != nil:
		return m.Line.Name
	default:
		return ""
	}
}

// Metric of the child mark.
func (m ComboMarkSpecOptions) Metric() string {
	switch {
	case m.Bar != nil:
		return m.Bar.Metric
	case m.Line != nil:
		return m.Line.Metric
	default:
		return ""
	}
}

// MetricAxis of the child mark.
func (m ComboMarkSpecOptions) MetricAxis() string {
	switch {
	case m.Bar != nil:
		return m.Bar.MetricAxis
	case m.Line != nil:
		return m.Line.MetricAxis
	default:
		return ""
	}
}

// ComboSpecOptions is a fully resolved combo.
type ComboSpecOptions struct {
	Name           string
	Index          int
	Dimension      string
	DualMetricAxis bool
	Marks          []ComboMarkSpecOptions
}

// ApplyComboDefaults resolves o and its child marks. Children inherit the
// combo dimension unless they set their own. Lines share the bars' band scale
// when the combo contains a bar.
func ApplyComboDefaults(o ComboOptions, ctx MarkContext) ComboSpecOptions {
	s := ComboSpecOptions{
		Name:           naming.Resolve(o.Name, naming.Indexed("combo", ctx.Index)),
		Index:          ctx.Index,
		Dimension:      common.Deref(o.Dimension, DefaultTimeDimension),
		DualMetricAxis: common.Deref(o.DualMetricAxis, false),
		Marks:          make([]ComboMarkSpecOptions, 0, len(o.Marks)),
	}

	lineScale := ScaleTime
	for _, m := range o.Marks {
		if m.Bar != nil {
			lineScale = ScaleBand

			break
		}
	}

	var bars, lines int

	for _, m := range o.Marks {
		switch {
		case m.Bar != nil:
			bar := *m.Bar
			if bar.Dimension == nil {
				bar.Dimension = common.Ptr(s.Dimension)
			}

			if bar.Name == nil {
				bar.Name = common.Ptr(naming.ChildName(s.Name, "Bar", bars))
			}

			resolved := ApplyBarDefaults(bar, MarkContext{Index: bars, ColorScheme: ctx.ColorScheme})
			s.Marks = append(s.Marks, ComboMarkSpecOptions{Bar: &resolved})
			bars++

		case m.Line != nil:
			line := *m.Line
			if line.Name == nil {
				line.Name = common.Ptr(naming.ChildName(s.Name, "Line", lines))
			}

			resolved := applyLineDefaults(line, MarkContext{Index: lines, ColorScheme: ctx.ColorScheme}, s.Dimension, lineScale)
			s.Marks = append(s.Marks, ComboMarkSpecOptions{Line: &resolved})
			lines++
		}
	}

	return s
}
