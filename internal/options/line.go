package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/palette"
)

// LineOptions is the adapted form of a Line element.
type LineOptions struct {
	MarkType       chart.Kind
	Name           *string
	Dimension      *string
	Metric         *string
	Color          *chart.ColorFacet
	LineType       *chart.LineTypeFacet
	Opacity        *chart.NumericFacet
	LineWidth      *chart.NumericFacet
	ScaleType      *string
	Interpolate    *string
	Padding        *float64
	StaticPoint    *string
	MetricAxis     *string
	DualMetricAxis *bool

	ChartPopovers []ChartPopoverOptions
	ChartTooltips []ChartTooltipOptions
	MetricRanges  []MetricRangeOptions
	Trendlines    []TrendlineOptions

	HasOnClick          bool
	HasMouseInteraction bool
}

// LineSpecOptions is a fully resolved line.
type LineSpecOptions struct {
	Name        string
	Index       int
	Dimension   string
	Metric      string
	Color       chart.ColorFacet
	LineType    chart.LineTypeFacet
	Opacity     chart.NumericFacet
	LineWidth   chart.NumericFacet
	ScaleType   ScaleType
	Interpolate string
	Padding     float64
	// StaticPoint names a boolean field; rows where it is true get a visible point.
	StaticPoint string
	// MetricAxis names the metric scale; empty uses the default linear scale.
	MetricAxis     string
	DualMetricAxis bool

	ChartPopovers []ChartPopoverSpecOptions
	ChartTooltips []ChartTooltipSpecOptions
	MetricRanges  []MetricRangeSpecOptions
	Trendlines    []TrendlineSpecOptions

	HasOnClick          bool
	HasMouseInteraction bool
	ColorScheme         palette.ColorScheme
}

// ApplyLineDefaults resolves o.
func ApplyLineDefaults(o LineOptions, ctx MarkContext) LineSpecOptions {
	return applyLineDefaults(o, ctx, DefaultTimeDimension, ScaleTime)
}

func applyLineDefaults(o LineOptions, ctx MarkContext, dimension string, scaleType ScaleType) LineSpecOptions {
	s := LineSpecOptions{
		Name:                naming.Resolve(o.Name, naming.Indexed("line", ctx.Index)),
		Index:               ctx.Index,
		Dimension:           common.Deref(o.Dimension, dimension),
		Metric:              common.Deref(o.Metric, DefaultMetric),
		Color:               facetOr(o.Color, chart.FieldFacet[string](DefaultColor)),
		LineType:            facetOr(o.LineType, chart.StaticFacet("solid")),
		Opacity:             facetOr(o.Opacity, chart.StaticFacet(1.0)),
		LineWidth:           facetOr(o.LineWidth, chart.StaticFacet(1.0)),
		ScaleType:           ScaleType(common.Deref(o.ScaleType, string(scaleType))),
		Interpolate:         common.Deref(o.Interpolate, "linear"),
		Padding:             common.Deref(o.Padding, 0),
		StaticPoint:         common.Deref(o.StaticPoint, ""),
		MetricAxis:          common.Deref(o.MetricAxis, ""),
		DualMetricAxis:      common.Deref(o.DualMetricAxis, false),
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         ctx.ColorScheme,
	}

	parent := s.Parent()
	s.ChartPopovers = resolvePopovers(o.ChartPopovers, s.Name)
	s.ChartTooltips = resolveTooltips(o.ChartTooltips, s.Name)
	s.Trendlines = resolveTrendlines(o.Trendlines, parent)

	s.MetricRanges = make([]MetricRangeSpecOptions, len(o.MetricRanges))
	for i, r := range o.MetricRanges {
		s.MetricRanges[i] = ApplyMetricRangeDefaults(r, parent, i)
	}

	return s
}

// Parent describes the line to its decorations.
func (s LineSpecOptions) Parent() ParentContext {
	return ParentContext{
		Name:        s.Name,
		Kind:        chart.KindLine,
		Dimension:   s.Dimension,
		Metric:      s.Metric,
		Color:       s.Color,
		LineType:    s.LineType,
		ScaleType:   s.ScaleType,
		Orientation: Vertical,
		ColorScheme: s.ColorScheme,
	}
}

// IsInteractive reports whether hovering the line has an effect.
func (s LineSpecOptions) IsInteractive() bool {
	if s.HasMouseInteraction || len(s.ChartTooltips) > 0 || len(s.ChartPopovers) > 0 {
		return true
	}

	for _, t := range s.Trendlines {
		if t.DisplayOnHover {
			return true
		}
	}

	for _, r := range s.MetricRanges {
		if r.DisplayOnHover {
			return true
		}
	}

	return false
}
