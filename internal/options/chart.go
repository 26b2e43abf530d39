package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/locale"
	"chartspec/internal/palette"
)

// MarkOptions is the adapted form of any mark construct.
type MarkOptions interface {
	Kind() chart.Kind
}

func (BarOptions) Kind() chart.Kind      { return chart.KindBar }
func (LineOptions) Kind() chart.Kind     { return chart.KindLine }
func (AreaOptions) Kind() chart.Kind     { return chart.KindArea }
func (ScatterOptions) Kind() chart.Kind  { return chart.KindScatter }
func (DonutOptions) Kind() chart.Kind    { return chart.KindDonut }
func (ComboOptions) Kind() chart.Kind    { return chart.KindCombo }
func (BulletOptions) Kind() chart.Kind   { return chart.KindBullet }
func (SunburstOptions) Kind() chart.Kind { return chart.KindSunburst }

// ChartOptions is the adapted form of the root Chart element. Children are
// partitioned by role; Marks keeps document order across mark kinds.
type ChartOptions struct {
	MarkType          chart.Kind
	Data              []chart.Datum
	Width             *int
	Height            *int
	Padding           *int
	BackgroundColor   *string
	ColorScheme       *string
	Colors            []string
	LineTypes         []string
	Opacities         []float64
	Locale            *locale.Spec
	Title             *string
	Description       *string
	HiddenSeries      []string
	HighlightedSeries *string

	Marks   []MarkOptions
	Axes    []AxisOptions
	Legends []LegendOptions
	Titles  []TitleOptions
}

// ChartSpecOptions holds the resolved chart-level settings. Children are
// resolved by the compiler, which assigns their indexes.
type ChartSpecOptions struct {
	Data              []chart.Datum
	Width             int
	Height            int
	Padding           int
	BackgroundColor   string
	ColorScheme       palette.ColorScheme
	Colors            []string
	LineTypes         []string
	Opacities         []float64
	Locale            locale.Spec
	Title             string
	Description       string
	HiddenSeries      []string
	HighlightedSeries string
}

// ApplyChartDefaults resolves the chart-level settings of o.
func ApplyChartDefaults(o ChartOptions) ChartSpecOptions {
	loc := locale.Code(locale.DefaultCode)
	if o.Locale != nil && !o.Locale.IsZero() {
		loc = *o.Locale
	}

	colors := common.Clone(palette.Categorical)
	if len(o.Colors) > 0 {
		colors = common.Clone(o.Colors)
	}

	lineTypes := common.Clone(palette.LineTypes)
	if len(o.LineTypes) > 0 {
		lineTypes = common.Clone(o.LineTypes)
	}

	return ChartSpecOptions{
		Data:              common.Clone(o.Data),
		Width:             common.Deref(o.Width, 600),
		Height:            common.Deref(o.Height, 400),
		Padding:           common.Deref(o.Padding, 0),
		BackgroundColor:   common.Deref(o.BackgroundColor, "transparent"),
		ColorScheme:       palette.ColorScheme(common.Deref(o.ColorScheme, string(palette.Light))),
		Colors:            colors,
		LineTypes:         lineTypes,
		Opacities:         common.Clone(o.Opacities),
		Locale:            loc,
		Title:             common.Deref(o.Title, ""),
		Description:       common.Deref(o.Description, ""),
		HiddenSeries:      common.Clone(o.HiddenSeries),
		HighlightedSeries: common.Deref(o.HighlightedSeries, ""),
	}
}

// MarkContext returns the context for the index-th mark of some kind.
func (s ChartSpecOptions) MarkContext(index int) MarkContext {
	return MarkContext{Index: index, ColorScheme: s.ColorScheme}
}
