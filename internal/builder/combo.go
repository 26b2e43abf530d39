package builder

import (
	"chartspec/internal/naming"
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

// AddCombo adds the child bars and lines of a combo in document order, each
// on the value scale chosen by ComboMetricAxes.
func AddCombo(spec *vega.Spec, o options.ComboSpecOptions) {
	axes := ComboMetricAxes(o)

	for i, m := range o.Marks {
		switch {
		case m.Bar != nil:
			bar := *m.Bar
			bar.MetricAxis = axes[i]
			bar.DualMetricAxis = false
			AddBar(spec, bar)

		case m.Line != nil:
			line := *m.Line
			line.MetricAxis = axes[i]
			line.DualMetricAxis = false
			AddLine(spec, line)
		}
	}
}

// ComboMetricAxes returns the metric scale name of each child of o. An empty
// name is the default linear scale.
//
// With a dual metric axis the first child reads the primary scale and the rest
// the secondary one. Otherwise an explicit metricAxis wins, children measuring
// the first child's metric share its scale and any other metric gets a scale
// named after its child.
func ComboMetricAxes(o options.ComboSpecOptions) []string {
	axes := make([]string, len(o.Marks))
	if len(o.Marks) == 0 {
		return axes
	}

	if o.DualMetricAxis {
		names := GetDualAxisScaleNames(GetScaleName(ChannelY, options.ScaleLinear))
		for i := range o.Marks {
			axes[i] = names.SecondaryScale
		}

		axes[0] = names.PrimaryScale

		return axes
	}

	first := o.Marks[0].Metric()

	for i, m := range o.Marks {
		switch {
		case m.MetricAxis() != "":
			axes[i] = m.MetricAxis()
		case i == 0 || m.Metric() == first:
			axes[i] = ""
		default:
			axes[i] = naming.CombineNames(m.Name(), GetScaleName(ChannelY, options.ScaleLinear))
		}
	}

	return axes
}
