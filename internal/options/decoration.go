package options

import (
	"strconv"
	"strings"

	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
)

// ChartTooltipOptions is the adapted form of a ChartTooltip element.
type ChartTooltipOptions struct {
	HighlightBy     *string
	ExcludeDataKeys []string
}

// ChartTooltipSpecOptions is a resolved tooltip.
type ChartTooltipSpecOptions struct {
	Name            string
	MarkName        string
	HighlightBy     HighlightBy
	ExcludeDataKeys []string
}

// ApplyChartTooltipDefaults resolves the index-th tooltip of the mark markName.
func ApplyChartTooltipDefaults(o ChartTooltipOptions, markName string, index int) ChartTooltipSpecOptions {
	return ChartTooltipSpecOptions{
		Name:            naming.ChildName(markName, "Tooltip", index),
		MarkName:        markName,
		HighlightBy:     HighlightBy(common.Deref(o.HighlightBy, string(HighlightItem))),
		ExcludeDataKeys: common.Clone(o.ExcludeDataKeys),
	}
}

// ChartPopoverOptions is the adapted form of a ChartPopover element.
type ChartPopoverOptions struct {
	Width       *int
	Height      *int
	HighlightBy *string
}

// ChartPopoverSpecOptions is a resolved popover. Height 0 means auto.
type ChartPopoverSpecOptions struct {
	Name        string
	MarkName    string
	Width       int
	Height      int
	HighlightBy HighlightBy
}

// ApplyChartPopoverDefaults resolves the index-th popover of the mark markName.
func ApplyChartPopoverDefaults(o ChartPopoverOptions, markName string, index int) ChartPopoverSpecOptions {
	return ChartPopoverSpecOptions{
		Name:        naming.ChildName(markName, "Popover", index),
		MarkName:    markName,
		Width:       common.Deref(o.Width, 250),
		Height:      common.Deref(o.Height, 0),
		HighlightBy: HighlightBy(common.Deref(o.HighlightBy, string(HighlightItem))),
	}
}

// BarAnnotationOptions is the adapted form of a BarAnnotation element.
type BarAnnotationOptions struct {
	TextKey *string
	Width   *float64
}

// BarAnnotationSpecOptions is a resolved bar annotation. Width 0 sizes the label to its text.
type BarAnnotationSpecOptions struct {
	Name    string
	TextKey string
	Width   float64
}

// ApplyBarAnnotationDefaults resolves the index-th annotation of parent.
func ApplyBarAnnotationDefaults(o BarAnnotationOptions, parent ParentContext, index int) BarAnnotationSpecOptions {
	return BarAnnotationSpecOptions{
		Name:    naming.ChildName(parent.Name, "Annotation", index),
		TextKey: common.Deref(o.TextKey, parent.Metric),
		Width:   common.Deref(o.Width, 0),
	}
}

// TrendlineOptions is the adapted form of a Trendline element.
type TrendlineOptions struct {
	Name              *string
	Method            *string
	DimensionRange    []*float64
	Color             *string
	LineType          *chart.LineTypeFacet
	LineWidth         *chart.NumericFacet
	Opacity           *chart.NumericFacet
	DisplayOnHover    *bool
	HighlightRawPoint *bool
	ExcludeDataKeys   []string
	ChartTooltips     []ChartTooltipOptions
}

// TrendlineMethod is a parsed trendline method.
type TrendlineMethod struct {
	// Kind is one of regression, aggregate or window.
	Kind string
	// Name is the Vega method or op: linear, exp, log, pow, quad, poly, mean, median.
	Name string
	// Order is the polynomial order or window size.
	Order int
}

// Method kinds.
const (
	MethodRegression = "regression"
	MethodAggregate  = "aggregate"
	MethodWindow     = "window"
)

// ParseTrendlineMethod parses names like "linear", "average", "polynomial-3"
// and "movingAverage-7". Unknown names resolve to linear regression.
func ParseTrendlineMethod(method string) TrendlineMethod {
	base, arg, _ := strings.Cut(method, "-")
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		n = 0
	}

	switch base {
	case "average":
		return TrendlineMethod{Kind: MethodAggregate, Name: "mean"}
	case "median":
		return TrendlineMethod{Kind: MethodAggregate, Name: "median"}
	case "exponential":
		return TrendlineMethod{Kind: MethodRegression, Name: "exp"}
	case "logarithmic":
		return TrendlineMethod{Kind: MethodRegression, Name: "log"}
	case "power":
		return TrendlineMethod{Kind: MethodRegression, Name: "pow"}
	case "quadratic":
		return TrendlineMethod{Kind: MethodRegression, Name: "quad", Order: 2}
	case "polynomial":
		if n < 1 {
			n = 2
		}

		return TrendlineMethod{Kind: MethodRegression, Name: "poly", Order: n}
	case "movingAverage":
		if n < 1 {
			n = 2
		}

		return TrendlineMethod{Kind: MethodWindow, Name: "mean", Order: n}
	default:
		return TrendlineMethod{Kind: MethodRegression, Name: "linear"}
	}
}

// TrendlineSpecOptions is a resolved trendline.
type TrendlineSpecOptions struct {
	Name   string
	Method TrendlineMethod
	// DimensionRange bounds the input data; nil ends are open.
	DimensionRange    [2]*float64
	Color             chart.ColorFacet
	LineType          chart.LineTypeFacet
	LineWidth         chart.NumericFacet
	Opacity           chart.NumericFacet
	DisplayOnHover    bool
	HighlightRawPoint bool
	ExcludeDataKeys   []string
	ChartTooltips     []ChartTooltipSpecOptions
	Parent            ParentContext
}

// ApplyTrendlineDefaults resolves the index-th trendline of parent.
func ApplyTrendlineDefaults(o TrendlineOptions, parent ParentContext, index int) TrendlineSpecOptions {
	name := naming.Resolve(o.Name, naming.ChildName(parent.Name, "Trendline", index))

	color := parent.Color
	if o.Color != nil {
		color = *chart.StaticFacet(*o.Color)
	}

	var dimRange [2]*float64
	for i := 0; i < len(o.DimensionRange) && i < 2; i++ {
		dimRange[i] = o.DimensionRange[i]
	}

	tooltips := make([]ChartTooltipSpecOptions, len(o.ChartTooltips))
	for i, t := range o.ChartTooltips {
		tooltips[i] = ApplyChartTooltipDefaults(t, name, i)
	}

	return TrendlineSpecOptions{
		Name:              name,
		Method:            ParseTrendlineMethod(common.Deref(o.Method, "linear")),
		DimensionRange:    dimRange,
		Color:             color,
		LineType:          facetOr(o.LineType, chart.StaticFacet("dashed")),
		LineWidth:         facetOr(o.LineWidth, chart.StaticFacet(1.5)),
		Opacity:           facetOr(o.Opacity, chart.StaticFacet(1.0)),
		DisplayOnHover:    common.Deref(o.DisplayOnHover, false),
		HighlightRawPoint: common.Deref(o.HighlightRawPoint, false),
		ExcludeDataKeys:   common.Clone(o.ExcludeDataKeys),
		ChartTooltips:     tooltips,
		Parent:            parent,
	}
}

// MetricRangeOptions is the adapted form of a MetricRange element.
type MetricRangeOptions struct {
	MetricStart    *string
	MetricEnd      *string
	Metric         *string
	Color          *string
	LineType       *chart.LineTypeFacet
	LineWidth      *chart.NumericFacet
	RangeOpacity   *float64
	DisplayOnHover *bool
	ScaleAxisToFit *bool
}

// MetricRangeSpecOptions is a resolved metric range.
type MetricRangeSpecOptions struct {
	Name           string
	MetricStart    string
	MetricEnd      string
	Metric         string
	Color          chart.ColorFacet
	LineType       chart.LineTypeFacet
	LineWidth      chart.NumericFacet
	RangeOpacity   float64
	DisplayOnHover bool
	ScaleAxisToFit bool
}

// ApplyMetricRangeDefaults resolves the index-th metric range of parent.
func ApplyMetricRangeDefaults(o MetricRangeOptions, parent ParentContext, index int) MetricRangeSpecOptions {
	color := parent.Color
	if o.Color != nil {
		color = *chart.StaticFacet(*o.Color)
	}

	return MetricRangeSpecOptions{
		Name:           naming.ChildName(parent.Name, "MetricRange", index),
		MetricStart:    common.Deref(o.MetricStart, ""),
		MetricEnd:      common.Deref(o.MetricEnd, ""),
		Metric:         common.Deref(o.Metric, parent.Metric),
		Color:          color,
		LineType:       facetOr(o.LineType, chart.StaticFacet("dashed")),
		LineWidth:      facetOr(o.LineWidth, chart.StaticFacet(1.0)),
		RangeOpacity:   common.Deref(o.RangeOpacity, 0.2),
		DisplayOnHover: common.Deref(o.DisplayOnHover, false),
		ScaleAxisToFit: common.Deref(o.ScaleAxisToFit, false),
	}
}

// ReferenceLineOptions is the adapted form of a ReferenceLine element.
type ReferenceLineOptions struct {
	Value           any
	Color           *string
	LineType        *string
	LineWidth       *float64
	Position        *string
	Label           *string
	LabelFontWeight *string
	Icon            *string
}

// ReferenceLinePosition places a reference line relative to a band.
type ReferenceLinePosition string

const (
	ReferenceCenter ReferenceLinePosition = "center"
	ReferenceBefore ReferenceLinePosition = "before"
	ReferenceAfter  ReferenceLinePosition = "after"
)

// ReferenceLineSpecOptions is a resolved reference line.
type ReferenceLineSpecOptions struct {
	Name            string
	Value           any
	Color           string
	LineType        string
	LineWidth       float64
	Position        ReferenceLinePosition
	Label           string
	LabelFontWeight string
	Icon            string
}

// ApplyReferenceLineDefaults resolves the index-th reference line of the axis axisName.
func ApplyReferenceLineDefaults(o ReferenceLineOptions, axisName string, index int) ReferenceLineSpecOptions {
	return ReferenceLineSpecOptions{
		Name:            naming.ChildName(axisName, "ReferenceLine", index),
		Value:           o.Value,
		Color:           common.Deref(o.Color, "gray-800"),
		LineType:        common.Deref(o.LineType, "solid"),
		LineWidth:       common.Deref(o.LineWidth, 2),
		Position:        ReferenceLinePosition(common.Deref(o.Position, string(ReferenceCenter))),
		Label:           common.Deref(o.Label, ""),
		LabelFontWeight: common.Deref(o.LabelFontWeight, "bold"),
		Icon:            common.Deref(o.Icon, ""),
	}
}

// DonutSummaryOptions is the adapted form of a DonutSummary element.
type DonutSummaryOptions struct {
	Label        *string
	NumberFormat *string
}

// DonutSummarySpecOptions is a resolved donut summary.
type DonutSummarySpecOptions struct {
	Name         string
	Label        string
	NumberFormat string
}

// ApplyDonutSummaryDefaults resolves the summary of the donut donutName.
func ApplyDonutSummaryDefaults(o DonutSummaryOptions, donutName string) DonutSummarySpecOptions {
	return DonutSummarySpecOptions{
		Name:         naming.CombineNames(donutName, "Summary"),
		Label:        common.Deref(o.Label, ""),
		NumberFormat: common.Deref(o.NumberFormat, "shortNumber"),
	}
}

// SegmentLabelOptions is the adapted form of a SegmentLabel element.
type SegmentLabelOptions struct {
	LabelKey    *string
	Percent     *bool
	Value       *bool
	ValueFormat *string
}

// SegmentLabelSpecOptions is a resolved segment label. An empty LabelKey
// labels segments by their color field.
type SegmentLabelSpecOptions struct {
	Name        string
	LabelKey    string
	Percent     bool
	Value       bool
	ValueFormat string
}

// ApplySegmentLabelDefaults resolves the segment labels of the donut donutName.
func ApplySegmentLabelDefaults(o SegmentLabelOptions, donutName string) SegmentLabelSpecOptions {
	return SegmentLabelSpecOptions{
		Name:        naming.CombineNames(donutName, "SegmentLabel"),
		LabelKey:    common.Deref(o.LabelKey, ""),
		Percent:     common.Deref(o.Percent, false),
		Value:       common.Deref(o.Value, false),
		ValueFormat: common.Deref(o.ValueFormat, "standardNumber"),
	}
}

// ScatterPathOptions is the adapted form of a ScatterPath element.
type ScatterPathOptions struct {
	Color     *string
	GroupBy   []string
	PathWidth *float64
	Opacity   *float64
}

// ScatterPathSpecOptions is a resolved scatter path.
type ScatterPathSpecOptions struct {
	Name      string
	Color     string
	GroupBy   []string
	PathWidth float64
	Opacity   float64
}

// ApplyScatterPathDefaults resolves the index-th path of the scatter scatterName.
func ApplyScatterPathDefaults(o ScatterPathOptions, scatterName string, index int) ScatterPathSpecOptions {
	return ScatterPathSpecOptions{
		Name:      naming.ChildName(scatterName, "Path", index),
		Color:     common.Deref(o.Color, "gray-500"),
		GroupBy:   common.Clone(o.GroupBy),
		PathWidth: common.Deref(o.PathWidth, 4),
		Opacity:   common.Deref(o.Opacity, 0.5),
	}
}

func resolveTooltips(in []ChartTooltipOptions, markName string) []ChartTooltipSpecOptions {
	out := make([]ChartTooltipSpecOptions, len(in))
	for i, t := range in {
		out[i] = ApplyChartTooltipDefaults(t, markName, i)
	}

	return out
}

func resolvePopovers(in []ChartPopoverOptions, markName string) []ChartPopoverSpecOptions {
	out := make([]ChartPopoverSpecOptions, len(in))
	for i, p := range in {
		out[i] = ApplyChartPopoverDefaults(p, markName, i)
	}

	return out
}

func resolveTrendlines(in []TrendlineOptions, parent ParentContext) []TrendlineSpecOptions {
	out := make([]TrendlineSpecOptions, len(in))
	for i, t := range in {
		out[i] = ApplyTrendlineDefaults(t, parent, i)
	}

	return out
}
