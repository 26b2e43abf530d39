package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/palette"
)

// Axis label formats.
const (
	LabelFormatLinear     = "linear"
	LabelFormatPercentage = "percentage"
	LabelFormatDuration   = "duration"
)

// AxisOptions is the adapted form of an Axis element.
type AxisOptions struct {
	MarkType          chart.Kind
	Name              *string
	Position          *string
	Title             *string
	Baseline          *bool
	BaselineOffset    *float64
	Grid              *bool
	Ticks             *bool
	HideDefaultLabels *bool
	LabelAlign        *string
	LabelFontWeight   *string
	LabelOrientation  *string
	LabelFormat       *string
	NumberFormat      *string
	CurrencyCode      *string
	Granularity       *string
	TickMinStep       *float64
	TruncateLabels    *bool
	Range             []float64

	ReferenceLines []ReferenceLineOptions
}

// AxisSpecOptions is a fully resolved axis. Empty format strings use the
// scale's natural formatting; a nil Range leaves the domain data driven.
type AxisSpecOptions struct {
	Name              string
	Index             int
	Position          Position
	Title             string
	Baseline          bool
	BaselineOffset    float64
	Grid              bool
	Ticks             bool
	HideDefaultLabels bool
	LabelAlign        string
	LabelFontWeight   string
	LabelOrientation  string
	LabelFormat       string
	NumberFormat      string
	CurrencyCode      string
	Granularity       Granularity
	TickMinStep       float64
	TruncateLabels    bool
	Range             []float64

	ReferenceLines []ReferenceLineSpecOptions

	ColorScheme palette.ColorScheme
}

// ApplyAxisDefaults resolves o.
func ApplyAxisDefaults(o AxisOptions, ctx MarkContext) AxisSpecOptions {
	s := AxisSpecOptions{
		Name:              naming.Resolve(o.Name, naming.Indexed("axis", ctx.Index)),
		Index:             ctx.Index,
		Position:          Position(common.Deref(o.Position, string(Bottom))),
		Title:             common.Deref(o.Title, ""),
		Baseline:          common.Deref(o.Baseline, false),
		BaselineOffset:    common.Deref(o.BaselineOffset, 0),
		Grid:              common.Deref(o.Grid, false),
		Ticks:             common.Deref(o.Ticks, false),
		HideDefaultLabels: common.Deref(o.HideDefaultLabels, false),
		LabelAlign:        common.Deref(o.LabelAlign, "center"),
		LabelFontWeight:   common.Deref(o.LabelFontWeight, "normal"),
		LabelOrientation:  common.Deref(o.LabelOrientation, "horizontal"),
		LabelFormat:       common.Deref(o.LabelFormat, ""),
		NumberFormat:      common.Deref(o.NumberFormat, ""),
		CurrencyCode:      common.Deref(o.CurrencyCode, ""),
		Granularity:       Granularity(common.Deref(o.Granularity, string(Day))),
		TickMinStep:       common.Deref(o.TickMinStep, 0),
		TruncateLabels:    common.Deref(o.TruncateLabels, false),
		ColorScheme:       ctx.ColorScheme,
	}

	if len(o.Range) == 2 {
		s.Range = []float64{o.Range[0], o.Range[1]}
	}

	s.ReferenceLines = make([]ReferenceLineSpecOptions, len(o.ReferenceLines))
	for i, r := range o.ReferenceLines {
		s.ReferenceLines[i] = ApplyReferenceLineDefaults(r, s.Name, i)
	}

	return s
}

// Channel is the encoding channel the axis reads its scale from.
func (s AxisSpecOptions) Channel() string {
	if s.Position.IsVertical() {
		return "y"
	}

	return "x"
}

// LegendOptions is the adapted form of a Legend element.
type LegendOptions struct {
	MarkType      chart.Kind
	Name          *string
	Position      *string
	Title         *string
	Color         *chart.ColorFacet
	LineType      *chart.LineTypeFacet
	Opacity       *chart.NumericFacet
	Keys          []string
	Highlight     *bool
	IsToggleable  *bool
	HiddenEntries []string
	LegendLabels  []chart.LegendLabel
	Descriptions  []chart.LegendDescription

	HasOnClick          bool
	HasMouseInteraction bool
}

// LegendSpecOptions is a fully resolved legend. Nil facets are read from the
// facet scales populated by the marks.
type LegendSpecOptions struct {
	Name          string
	Index         int
	Position      Position
	Title         string
	Color         *chart.ColorFacet
	LineType      *chart.LineTypeFacet
	Opacity       *chart.NumericFacet
	Keys          []string
	Highlight     bool
	IsToggleable  bool
	HiddenEntries []string
	LegendLabels  []chart.LegendLabel
	Descriptions  []chart.LegendDescription

	HasOnClick          bool
	HasMouseInteraction bool
	ColorScheme         palette.ColorScheme
}

// ApplyLegendDefaults resolves o.
func ApplyLegendDefaults(o LegendOptions, ctx MarkContext) LegendSpecOptions {
	return LegendSpecOptions{
		Name:                naming.Resolve(o.Name, naming.Indexed("legend", ctx.Index)),
		Index:               ctx.Index,
		Position:            Position(common.Deref(o.Position, string(Bottom))),
		Title:               common.Deref(o.Title, ""),
		Color:               o.Color,
		LineType:            o.LineType,
		Opacity:             o.Opacity,
		Keys:                common.Clone(o.Keys),
		Highlight:           common.Deref(o.Highlight, false),
		IsToggleable:        common.Deref(o.IsToggleable, false),
		HiddenEntries:       common.Clone(o.HiddenEntries),
		LegendLabels:        common.Clone(o.LegendLabels),
		Descriptions:        common.Clone(o.Descriptions),
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         ctx.ColorScheme,
	}
}

// TitleOptions is the adapted form of a Title element.
type TitleOptions struct {
	MarkType   chart.Kind
	Text       string
	FontWeight *string
	Position   *string
	Orient     *string
}

// TitleSpecOptions is a fully resolved title.
type TitleSpecOptions struct {
	Text       string
	FontWeight string
	// Position is the anchor along the orient edge: start, middle or end.
	Position string
	Orient   Position
}

// ApplyTitleDefaults resolves o.
func ApplyTitleDefaults(o TitleOptions) TitleSpecOptions {
	return TitleSpecOptions{
		Text:       o.Text,
		FontWeight: common.Deref(o.FontWeight, "bold"),
		Position:   common.Deref(o.Position, "middle"),
		Orient:     Position(common.Deref(o.Orient, string(Top))),
	}
}
