package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/palette"
)

// Orientation of bars.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// BarType selects how series share a dimension value.
type BarType string

const (
	Stacked BarType = "stacked"
	Dodged  BarType = "dodged"
)

// ScaleType of a dimension scale.
type ScaleType string

const (
	ScaleTime   ScaleType = "time"
	ScaleLinear ScaleType = "linear"
	ScalePoint  ScaleType = "point"
	ScaleBand   ScaleType = "band"
)

// Position of an axis or legend.
type Position string

const (
	Left   Position = "left"
	Right  Position = "right"
	Top    Position = "top"
	Bottom Position = "bottom"
)

// IsVertical reports whether p is a left or right position.
func (p Position) IsVertical() bool {
	return p == Left || p == Right
}

// HighlightBy selects what a hover or click highlights.
type HighlightBy string

const (
	HighlightItem      HighlightBy = "item"
	HighlightSeries    HighlightBy = "series"
	HighlightDimension HighlightBy = "dimension"
)

// Granularity of time dimensions.
type Granularity string

const (
	Second  Granularity = "second"
	Minute  Granularity = "minute"
	Hour    Granularity = "hour"
	Day     Granularity = "day"
	Week    Granularity = "week"
	Month   Granularity = "month"
	Quarter Granularity = "quarter"
)

// Default field names.
const (
	DefaultMetric               = "value"
	DefaultColor                = "series"
	DefaultCategoricalDimension = "category"
	DefaultTimeDimension        = "datetime"
)

// MarkContext carries the chart-level values needed to resolve a mark.
type MarkContext struct {
	// Index of the mark among siblings of the same kind, in document order.
	Index int
	// ColorScheme of the chart.
	ColorScheme palette.ColorScheme
}

// ParentContext describes the mark a decoration attaches to.
type ParentContext struct {
	Name      string
	Kind      chart.Kind
	Dimension string
	Metric    string
	Color     chart.ColorFacet
	LineType  chart.LineTypeFacet
	// ScaleType of the parent's dimension scale.
	ScaleType   ScaleType
	Orientation Orientation
	ColorScheme palette.ColorScheme
}

func facetOr[T any](f *chart.Facet[T], def *chart.Facet[T]) chart.Facet[T] {
	if f != nil {
		return *f
	}

	return *def
}
