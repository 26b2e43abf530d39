package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/palette"
)

// DonutOptions is the adapted form of a Donut element.
type DonutOptions struct {
	MarkType   chart.Kind
	Name       *string
	Metric     *string
	Color      *string
	StartAngle *float64
	HoleRatio  *float64
	IsBoolean  *bool

	ChartPopovers  []ChartPopoverOptions
	ChartTooltips  []ChartTooltipOptions
	DonutSummaries []DonutSummaryOptions
	SegmentLabels  []SegmentLabelOptions

	HasOnClick          bool
	HasMouseInteraction bool
}

// DonutSpecOptions is a fully resolved donut. Only the first summary and
// segment label child are drawn.
type DonutSpecOptions struct {
	Name       string
	Index      int
	Metric     string
	Color      string
	StartAngle float64
	HoleRatio  float64
	IsBoolean  bool

	ChartPopovers  []ChartPopoverSpecOptions
	ChartTooltips  []ChartTooltipSpecOptions
	DonutSummaries []DonutSummarySpecOptions
	SegmentLabels  []SegmentLabelSpecOptions

	HasOnClick          bool
	HasMouseInteraction bool
	ColorScheme         palette.ColorScheme
}

// ApplyDonutDefaults resolves o.
func ApplyDonutDefaults(o DonutOptions, ctx MarkContext) DonutSpecOptions {
	s := DonutSpecOptions{
		Name:                naming.Resolve(o.Name, naming.Indexed("donut", ctx.Index)),
		Index:               ctx.Index,
		Metric:              common.Deref(o.Metric, DefaultMetric),
		Color:               common.Deref(o.Color, DefaultColor),
		StartAngle:          common.Deref(o.StartAngle, 0),
		HoleRatio:           common.Deref(o.HoleRatio, 0.85),
		IsBoolean:           common.Deref(o.IsBoolean, false),
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         ctx.ColorScheme,
	}

	s.ChartPopovers = resolvePopovers(o.ChartPopovers, s.Name)
	s.ChartTooltips = resolveTooltips(o.ChartTooltips, s.Name)

	s.DonutSummaries = make([]DonutSummarySpecOptions, len(o.DonutSummaries))
	for i, d := range o.DonutSummaries {
		s.DonutSummaries[i] = ApplyDonutSummaryDefaults(d, s.Name)
	}

	s.SegmentLabels = make([]SegmentLabelSpecOptions, len(o.SegmentLabels))
	for i, l := range o.SegmentLabels {
		s.SegmentLabels[i] = ApplySegmentLabelDefaults(l, s.Name)
	}

	return s
}

// IsInteractive reports whether hovering a segment has an effect.
func (s DonutSpecOptions) IsInteractive() bool {
	return s.HasMouseInteraction || len(s.ChartTooltips) > 0 || len(s.ChartPopovers) > 0
}
