package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/palette"
)

// ScatterOptions is the adapted form of a Scatter element.
type ScatterOptions struct {
	MarkType           chart.Kind
	Name               *string
	Dimension          *string
	Metric             *string
	Color              *chart.ColorFacet
	LineType           *chart.LineTypeFacet
	LineWidth          *chart.NumericFacet
	Opacity            *chart.NumericFacet
	Size               *chart.NumericFacet
	DimensionScaleType *string
	MetricAxis         *string

	ChartPopovers []ChartPopoverOptions
	ChartTooltips []ChartTooltipOptions
	ScatterPaths  []ScatterPathOptions
	Trendlines    []TrendlineOptions

	HasOnClick          bool
	HasMouseInteraction bool
}

// ScatterSpecOptions is a fully resolved scatter.
type ScatterSpecOptions struct {
	Name               string
	Index              int
	Dimension          string
	Metric             string
	Color              chart.ColorFacet
	LineType           chart.LineTypeFacet
	LineWidth          chart.NumericFacet
	Opacity            chart.NumericFacet
	Size               chart.NumericFacet
	DimensionScaleType ScaleType
	// MetricAxis names the metric scale; empty uses the default linear scale.
	MetricAxis string

	ChartPopovers []ChartPopoverSpecOptions
	ChartTooltips []ChartTooltipSpecOptions
	ScatterPaths  []ScatterPathSpecOptions
	Trendlines    []TrendlineSpecOptions

	HasOnClick          bool
	HasMouseInteraction bool
	ColorScheme         palette.ColorScheme
}

// ApplyScatterDefaults resolves o.
func ApplyScatterDefaults(o ScatterOptions, ctx MarkContext) ScatterSpecOptions {
	s := ScatterSpecOptions{
		Name:                naming.Resolve(o.Name, naming.Indexed("scatter", ctx.Index)),
		Index:               ctx.Index,
		Dimension:           common.Deref(o.Dimension, DefaultTimeDimension),
		Metric:              common.Deref(o.Metric, DefaultMetric),
		Color:               facetOr(o.Color, chart.StaticFacet("categorical-100")),
		LineType:            facetOr(o.LineType, chart.StaticFacet("solid")),
		LineWidth:           facetOr(o.LineWidth, chart.StaticFacet(0.0)),
		Opacity:             facetOr(o.Opacity, chart.StaticFacet(1.0)),
		Size:                facetOr(o.Size, chart.StaticFacet(64.0)),
		DimensionScaleType:  ScaleType(common.Deref(o.DimensionScaleType, string(ScaleLinear))),
		MetricAxis:          common.Deref(o.MetricAxis, ""),
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         ctx.ColorScheme,
	}

	s.ChartPopovers = resolvePopovers(o.ChartPopovers, s.Name)
	s.ChartTooltips = resolveTooltips(o.ChartTooltips, s.Name)
	s.Trendlines = resolveTrendlines(o.Trendlines, s.Parent())

	s.ScatterPaths = make([]ScatterPathSpecOptions, len(o.ScatterPaths))
	for i, p := range o.ScatterPaths {
		s.ScatterPaths[i] = ApplyScatterPathDefaults(p, s.Name, i)
	}

	return s
}

// Parent describes the scatter to its decorations.
func (s ScatterSpecOptions) Parent() ParentContext {
	return ParentContext{
		Name:        s.Name,
		Kind:        chart.KindScatter,
		Dimension:   s.Dimension,
		Metric:      s.Metric,
		Color:       s.Color,
		LineType:    s.LineType,
		ScaleType:   s.DimensionScaleType,
		Orientation: Vertical,
		ColorScheme: s.ColorScheme,
	}
}

// IsInteractive reports whether hovering a point has an effect.
func (s ScatterSpecOptions) IsInteractive() bool {
	return s.HasMouseInteraction || len(s.ChartTooltips) > 0 || len(s.ChartPopovers) > 0
}
