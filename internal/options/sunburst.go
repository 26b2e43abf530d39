package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/palette"
)

// SunburstOptions is the adapted form of a Sunburst element.
type SunburstOptions struct {
	MarkType   chart.Kind
	Name       *string
	Metric     *string
	ID         *string
	ParentKey  *string
	SegmentKey *string
	Color      *string

	ChartPopovers []ChartPopoverOptions
	ChartTooltips []ChartTooltipOptions

	HasOnClick          bool
	HasMouseInteraction bool
}

// SunburstSpecOptions is a fully resolved sunburst.
type SunburstSpecOptions struct {
	Name       string
	Index      int
	Metric     string
	ID         string
	ParentKey  string
	SegmentKey string
	Color      string

	ChartPopovers []ChartPopoverSpecOptions
	ChartTooltips []ChartTooltipSpecOptions

	HasOnClick          bool
	HasMouseInteraction bool
	ColorScheme         palette.ColorScheme
}

// ApplySunburstDefaults resolves o. The segment key defaults to the id field
// and the color field to the segment key.
func ApplySunburstDefaults(o SunburstOptions, ctx MarkContext) SunburstSpecOptions {
	id := common.Deref(o.ID, "id")
	segmentKey := common.Deref(o.SegmentKey, id)

	s := SunburstSpecOptions{
		Name:                naming.Resolve(o.Name, naming.Indexed("sunburst", ctx.Index)),
		Index:               ctx.Index,
		Metric:              common.Deref(o.Metric, DefaultMetric),
		ID:                  id,
		ParentKey:           common.Deref(o.ParentKey, "parent"),
		SegmentKey:          segmentKey,
		Color:               common.Deref(o.Color, segmentKey),
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         ctx.ColorScheme,
	}

	s.ChartPopovers = resolvePopovers(o.ChartPopovers, s.Name)
	s.ChartTooltips = resolveTooltips(o.ChartTooltips, s.Name)

	return s
}

// IsInteractive reports whether hovering a segment has an effect.
func (s SunburstSpecOptions) IsInteractive() bool {
	return s.HasMouseInteraction || len(s.ChartTooltips) > 0 || len(s.ChartPopovers) > 0
}
