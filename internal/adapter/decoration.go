package adapter

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/options"
)

// GetChartTooltipOptions adapts a tooltip.
func GetChartTooltipOptions(el chart.ChartTooltip) options.ChartTooltipOptions {
	return options.ChartTooltipOptions{
		HighlightBy:     el.HighlightBy,
		ExcludeDataKeys: common.Clone(el.ExcludeDataKeys),
	}
}

// GetChartPopoverOptions adapts a popover.
func GetChartPopoverOptions(el chart.ChartPopover) options.ChartPopoverOptions {
	return options.ChartPopoverOptions{
		Width:       el.Width,
		Height:      el.Height,
		HighlightBy: el.HighlightBy,
	}
}

// GetBarAnnotationOptions adapts a bar annotation, flattening its style.
func GetBarAnnotationOptions(el chart.BarAnnotation) options.BarAnnotationOptions {
	o := options.BarAnnotationOptions{TextKey: el.TextKey}
	if el.Style != nil {
		o.Width = el.Style.Width
	}

	return o
}

// GetTrendlineOptions adapts a trendline and its tooltips.
func GetTrendlineOptions(el chart.Trendline) options.TrendlineOptions {
	o := options.TrendlineOptions{
		Name:              el.Name,
		Method:            el.Method,
		DimensionRange:    common.Clone(el.DimensionRange),
		Color:             el.Color,
		LineType:          el.LineType,
		LineWidth:         el.LineWidth,
		Opacity:           el.Opacity,
		DisplayOnHover:    el.DisplayOnHover,
		HighlightRawPoint: el.HighlightRawPoint,
		ExcludeDataKeys:   common.Clone(el.ExcludeDataKeys),
		ChartTooltips:     []options.ChartTooltipOptions{},
	}

	for _, child := range el.Children {
		if t, ok := chart.Unwrap(child).(chart.ChartTooltip); ok {
			o.ChartTooltips = append(o.ChartTooltips, GetChartTooltipOptions(t))
		}
	}

	return o
}

// GetMetricRangeOptions adapts a metric range.
func GetMetricRangeOptions(el chart.MetricRange) options.MetricRangeOptions {
	return options.MetricRangeOptions{
		MetricStart:    nonEmpty(el.MetricStart),
		MetricEnd:      nonEmpty(el.MetricEnd),
		Metric:         el.Metric,
		Color:          el.Color,
		LineType:       el.LineType,
		LineWidth:      el.LineWidth,
		RangeOpacity:   el.RangeOpacity,
		DisplayOnHover: el.DisplayOnHover,
		ScaleAxisToFit: el.ScaleAxisToFit,
	}
}

// GetReferenceLineOptions adapts a reference line.
func GetReferenceLineOptions(el chart.ReferenceLine) options.ReferenceLineOptions {
	return options.ReferenceLineOptions{
		Value:           el.Value,
		Color:           el.Color,
		LineType:        el.LineType,
		LineWidth:       el.LineWidth,
		Position:        el.Position,
		Label:           el.Label,
		LabelFontWeight: el.LabelFontWeight,
		Icon:            el.Icon,
	}
}

// GetDonutSummaryOptions adapts a donut summary.
func GetDonutSummaryOptions(el chart.DonutSummary) options.DonutSummaryOptions {
	return options.DonutSummaryOptions{Label: el.Label, NumberFormat: el.NumberFormat}
}

// GetSegmentLabelOptions adapts a segment label.
func GetSegmentLabelOptions(el chart.SegmentLabel) options.SegmentLabelOptions {
	return options.SegmentLabelOptions{
		LabelKey:    el.LabelKey,
		Percent:     el.Percent,
		Value:       el.Value,
		ValueFormat: el.ValueFormat,
	}
}

// GetScatterPathOptions adapts a scatter path.
func GetScatterPathOptions(el chart.ScatterPath) options.ScatterPathOptions {
	return options.ScatterPathOptions{
		Color:     el.Color,
		GroupBy:   common.Clone(el.GroupBy),
		PathWidth: el.PathWidth,
		Opacity:   el.Opacity,
	}
}

// decorations collects the decoration children shared by the marks.
type decorations struct {
	annotations  []options.BarAnnotationOptions
	popovers     []options.ChartPopoverOptions
	tooltips     []options.ChartTooltipOptions
	trendlines   []options.TrendlineOptions
	metricRanges []options.MetricRangeOptions
	summaries    []options.DonutSummaryOptions
	labels       []options.SegmentLabelOptions
	paths        []options.ScatterPathOptions
}

// partition adapts the children of a mark of kind parent. Children the parent
// does not accept are skipped.
func partition(parent chart.Kind, children chart.Elements) decorations {
	d := decorations{
		annotations:  []options.BarAnnotationOptions{},
		popovers:     []options.ChartPopoverOptions{},
		tooltips:     []options.ChartTooltipOptions{},
		trendlines:   []options.TrendlineOptions{},
		metricRanges: []options.MetricRangeOptions{},
		summaries:    []options.DonutSummaryOptions{},
		labels:       []options.SegmentLabelOptions{},
		paths:        []options.ScatterPathOptions{},
	}

	for _, child := range children {
		child = chart.Unwrap(child)
		if !AcceptsChild(parent, child.Kind()) {
			continue
		}

		switch c := child.(type) {
		case chart.BarAnnotation:
			d.annotations = append(d.annotations, GetBarAnnotationOptions(c))
		case chart.ChartPopover:
			d.popovers = append(d.popovers, GetChartPopoverOptions(c))
		case chart.ChartTooltip:
			d.tooltips = append(d.tooltips, GetChartTooltipOptions(c))
		case chart.Trendline:
			d.trendlines = append(d.trendlines, GetTrendlineOptions(c))
		case chart.MetricRange:
			d.metricRanges = append(d.metricRanges, GetMetricRangeOptions(c))
		case chart.DonutSummary:
			d.summaries = append(d.summaries, GetDonutSummaryOptions(c))
		case chart.SegmentLabel:
			d.labels = append(d.labels, GetSegmentLabelOptions(c))
		case chart.ScatterPath:
			d.paths = append(d.paths, GetScatterPathOptions(c))
		}
	}

	return d
}

func hasMouseInteraction(over, out chart.Handler) bool {
	return over != nil || out != nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
