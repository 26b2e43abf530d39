package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/palette"
)

// AreaOptions is the adapted form of an Area element.
type AreaOptions struct {
	MarkType    chart.Kind
	Name        *string
	Dimension   *string
	Metric      *string
	MetricStart *string
	MetricEnd   *string
	Color       *string
	Opacity     *float64
	ScaleType   *string
	Padding     *float64

	ChartPopovers []ChartPopoverOptions
	ChartTooltips []ChartTooltipOptions

	HasOnClick          bool
	HasMouseInteraction bool
}

// AreaSpecOptions is a fully resolved area. When MetricStart and MetricEnd are
// both set the area spans them instead of stacking Metric.
type AreaSpecOptions struct {
	Name        string
	Index       int
	Dimension   string
	Metric      string
	MetricStart string
	MetricEnd   string
	Color       string
	Opacity     float64
	ScaleType   ScaleType
	Padding     float64

	ChartPopovers []ChartPopoverSpecOptions
	ChartTooltips []ChartTooltipSpecOptions

	HasOnClick          bool
	HasMouseInteraction bool
	ColorScheme         palette.ColorScheme
}

// ApplyAreaDefaults resolves o.
func ApplyAreaDefaults(o AreaOptions, ctx MarkContext) AreaSpecOptions {
	s := AreaSpecOptions{
		Name:                naming.Resolve(o.Name, naming.Indexed("area", ctx.Index)),
		Index:               ctx.Index,
		Dimension:           common.Deref(o.Dimension, DefaultTimeDimension),
		Metric:              common.Deref(o.Metric, DefaultMetric),
		MetricStart:         common.Deref(o.MetricStart, ""),
		MetricEnd:           common.Deref(o.MetricEnd, ""),
		Color:               common.Deref(o.Color, DefaultColor),
		Opacity:             common.Deref(o.Opacity, 0.8),
		ScaleType:           ScaleType(common.Deref(o.ScaleType, string(ScaleTime))),
		Padding:             common.Deref(o.Padding, 0),
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         ctx.ColorScheme,
	}

	s.ChartPopovers = resolvePopovers(o.ChartPopovers, s.Name)
	s.ChartTooltips = resolveTooltips(o.ChartTooltips, s.Name)

	return s
}

// IsStacked reports whether the area stacks Metric by series.
func (s AreaSpecOptions) IsStacked() bool {
	return s.MetricStart == "" || s.MetricEnd == ""
}

// IsInteractive reports whether hovering the area has an effect.
func (s AreaSpecOptions) IsInteractive() bool {
	return s.HasMouseInteraction || len(s.ChartTooltips) > 0 || len(s.ChartPopovers) > 0
}
