package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/palette"
)

// BarOptions is the adapted form of a Bar element.
type BarOptions struct {
	MarkType         chart.Kind
	Name             *string
	Dimension        *string
	Metric           *string
	Color            *chart.ColorFacet
	LineType         *chart.LineTypeFacet
	Opacity          *chart.NumericFacet
	LineWidth        *chart.NumericFacet
	Orientation      *string
	Type             *string
	PaddingRatio     *float64
	PaddingOuter     *float64
	GroupedPadding   *float64
	HasSquareCorners *bool
	Order            *string
	MetricAxis       *string
	DualMetricAxis   *bool

	BarAnnotations []BarAnnotationOptions
	ChartPopovers  []ChartPopoverOptions
	ChartTooltips  []ChartTooltipOptions
	Trendlines     []TrendlineOptions

	HasOnClick          bool
	HasMouseInteraction bool
}

// BarSpecOptions is a fully resolved bar.
type BarSpecOptions struct {
	Name             string
	Index            int
	Dimension        string
	Metric           string
	Color            chart.ColorFacet
	LineType         chart.LineTypeFacet
	Opacity          chart.NumericFacet
	LineWidth        chart.NumericFacet
	Orientation      Orientation
	Type             BarType
	PaddingRatio     float64
	PaddingOuter     float64
	GroupedPadding   float64
	HasSquareCorners bool
	// Order names a field whose values sort the stack; empty keeps series order.
	Order string
	// MetricAxis names the metric scale; empty uses the default linear scale.
	MetricAxis     string
	DualMetricAxis bool

	BarAnnotations []BarAnnotationSpecOptions
	ChartPopovers  []ChartPopoverSpecOptions
	ChartTooltips  []ChartTooltipSpecOptions
	Trendlines     []TrendlineSpecOptions

	HasOnClick          bool
	HasMouseInteraction bool
	ColorScheme         palette.ColorScheme
}

// ApplyBarDefaults resolves o. ctx.Index is the position of the bar among
// sibling bars.
func ApplyBarDefaults(o BarOptions, ctx MarkContext) BarSpecOptions {
	s := BarSpecOptions{
		Name:                naming.Resolve(o.Name, naming.Indexed("bar", ctx.Index)),
		Index:               ctx.Index,
		Dimension:           common.Deref(o.Dimension, DefaultCategoricalDimension),
		Metric:              common.Deref(o.Metric, DefaultMetric),
		Color:               facetOr(o.Color, chart.FieldFacet[string](DefaultColor)),
		LineType:            facetOr(o.LineType, chart.StaticFacet("solid")),
		Opacity:             facetOr(o.Opacity, chart.StaticFacet(1.0)),
		LineWidth:           facetOr(o.LineWidth, chart.StaticFacet(0.0)),
		Orientation:         Orientation(common.Deref(o.Orientation, string(Vertical))),
		Type:                BarType(common.Deref(o.Type, string(Stacked))),
		PaddingRatio:        common.Deref(o.PaddingRatio, 0.4),
		PaddingOuter:        common.Deref(o.PaddingOuter, 0.2),
		GroupedPadding:      common.Deref(o.GroupedPadding, 0.1),
		HasSquareCorners:    common.Deref(o.HasSquareCorners, false),
		Order:               common.Deref(o.Order, ""),
		MetricAxis:          common.Deref(o.MetricAxis, ""),
		DualMetricAxis:      common.Deref(o.DualMetricAxis, false),
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         ctx.ColorScheme,
	}

	parent := s.Parent()
	s.BarAnnotations = make([]BarAnnotationSpecOptions, len(o.BarAnnotations))
	for i, a := range o.BarAnnotations {
		s.BarAnnotations[i] = ApplyBarAnnotationDefaults(a, parent, i)
	}

	s.ChartPopovers = resolvePopovers(o.ChartPopovers, s.Name)
	s.ChartTooltips = resolveTooltips(o.ChartTooltips, s.Name)
	s.Trendlines = resolveTrendlines(o.Trendlines, parent)

	return s
}

// Parent describes the bar to its decorations.
func (s BarSpecOptions) Parent() ParentContext {
	return ParentContext{
		Name:        s.Name,
		Kind:        chart.KindBar,
		Dimension:   s.Dimension,
		Metric:      s.Metric,
		Color:       s.Color,
		LineType:    s.LineType,
		ScaleType:   ScaleBand,
		Orientation: s.Orientation,
		ColorScheme: s.ColorScheme,
	}
}

// IsInteractive reports whether hovering a bar has an effect.
func (s BarSpecOptions) IsInteractive() bool {
	return s.HasMouseInteraction || len(s.ChartTooltips) > 0 || len(s.ChartPopovers) > 0
}
