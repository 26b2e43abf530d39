package chart

import (
	"reflect"

	"chartspec/internal/locale"
)

// Element is one node of the declarative tree.
type Element interface {
	Kind() Kind
}

// Datum is one row of the chart dataset.
type Datum = map[string]any

// Handler receives the datum an interaction happened on. Handlers cannot be
// serialized; only their presence reaches the specification.
type Handler func(datum Datum)

// Unknown is a child whose tag is not recognized.
type Unknown struct {
	Tag string
}

func (Unknown) Kind() Kind { return KindUnknown }

// Chart is the root element.
type Chart struct {
	Data              []Datum      `yaml:"data,omitempty"`
	Width             *int         `yaml:"width,omitempty"`
	Height            *int         `yaml:"height,omitempty"`
	Padding           *int         `yaml:"padding,omitempty"`
	BackgroundColor   *string      `yaml:"backgroundColor,omitempty"`
	ColorScheme       *string      `yaml:"colorScheme,omitempty"`
	Colors            []string     `yaml:"colors,omitempty"`
	LineTypes         []string     `yaml:"lineTypes,omitempty"`
	Opacities         []float64    `yaml:"opacities,omitempty"`
	Locale            *locale.Spec `yaml:"locale,omitempty"`
	Title             *string      `yaml:"title,omitempty"`
	Description       *string      `yaml:"description,omitempty"`
	HiddenSeries      []string     `yaml:"hiddenSeries,omitempty"`
	HighlightedSeries *string      `yaml:"highlightedSeries,omitempty"`
	Children          Elements     `yaml:"children,omitempty"`
}

func (Chart) Kind() Kind { return KindChart }

// Bar draws one rect per datum, stacked or dodged by series.
type Bar struct {
	Name             *string        `yaml:"name,omitempty"`
	Dimension        *string        `yaml:"dimension,omitempty"`
	Metric           *string        `yaml:"metric,omitempty"`
	Color            *ColorFacet    `yaml:"color,omitempty"`
	LineType         *LineTypeFacet `yaml:"lineType,omitempty"`
	Opacity          *NumericFacet  `yaml:"opacity,omitempty"`
	LineWidth        *NumericFacet  `yaml:"lineWidth,omitempty"`
	Orientation      *string        `yaml:"orientation,omitempty"`
	Type             *string        `yaml:"type,omitempty"`
	PaddingRatio     *float64       `yaml:"paddingRatio,omitempty"`
	PaddingOuter     *float64       `yaml:"paddingOuter,omitempty"`
	GroupedPadding   *float64       `yaml:"groupedPadding,omitempty"`
	HasSquareCorners *bool          `yaml:"hasSquareCorners,omitempty"`
	Order            *string        `yaml:"order,omitempty"`
	MetricAxis       *string        `yaml:"metricAxis,omitempty"`
	DualMetricAxis   *bool          `yaml:"dualMetricAxis,omitempty"`
	OnClick          Handler        `yaml:"-"`
	OnMouseOver      Handler        `yaml:"-"`
	OnMouseOut       Handler        `yaml:"-"`
	Children         Elements       `yaml:"children,omitempty"`
}

func (Bar) Kind() Kind { return KindBar }

// Line draws one line per series.
type Line struct {
	Name           *string        `yaml:"name,omitempty"`
	Dimension      *string        `yaml:"dimension,omitempty"`
	Metric         *string        `yaml:"metric,omitempty"`
	Color          *ColorFacet    `yaml:"color,omitempty"`
	LineType       *LineTypeFacet `yaml:"lineType,omitempty"`
	Opacity        *NumericFacet  `yaml:"opacity,omitempty"`
	LineWidth      *NumericFacet  `yaml:"lineWidth,omitempty"`
	ScaleType      *string        `yaml:"scaleType,omitempty"`
	Interpolate    *string        `yaml:"interpolate,omitempty"`
	Padding        *float64       `yaml:"padding,omitempty"`
	StaticPoint    *string        `yaml:"staticPoint,omitempty"`
	MetricAxis     *string        `yaml:"metricAxis,omitempty"`
	DualMetricAxis *bool          `yaml:"dualMetricAxis,omitempty"`
	OnClick        Handler        `yaml:"-"`
	OnMouseOver    Handler        `yaml:"-"`
	OnMouseOut     Handler        `yaml:"-"`
	Children       Elements       `yaml:"children,omitempty"`
}

func (Line) Kind() Kind { return KindLine }

// Area draws a filled band per series, stacked unless explicit bounds are given.
type Area struct {
	Name        *string  `yaml:"name,omitempty"`
	Dimension   *string  `yaml:"dimension,omitempty"`
	Metric      *string  `yaml:"metric,omitempty"`
	MetricStart *string  `yaml:"metricStart,omitempty"`
	MetricEnd   *string  `yaml:"metricEnd,omitempty"`
	Color       *string  `yaml:"color,omitempty"`
	Opacity     *float64 `yaml:"opacity,omitempty"`
	ScaleType   *string  `yaml:"scaleType,omitempty"`
	Padding     *float64 `yaml:"padding,omitempty"`
	OnClick     Handler  `yaml:"-"`
	OnMouseOver Handler  `yaml:"-"`
	OnMouseOut  Handler  `yaml:"-"`
	Children    Elements `yaml:"children,omitempty"`
}

func (Area) Kind() Kind { return KindArea }

// Scatter draws one symbol per datum.
type Scatter struct {
	Name               *string        `yaml:"name,omitempty"`
	Dimension          *string        `yaml:"dimension,omitempty"`
	Metric             *string        `yaml:"metric,omitempty"`
	Color              *ColorFacet    `yaml:"color,omitempty"`
	LineType           *LineTypeFacet `yaml:"lineType,omitempty"`
	LineWidth          *NumericFacet  `yaml:"lineWidth,omitempty"`
	Opacity            *NumericFacet  `yaml:"opacity,omitempty"`
	Size               *NumericFacet  `yaml:"size,omitempty"`
	DimensionScaleType *string        `yaml:"dimensionScaleType,omitempty"`
	MetricAxis         *string        `yaml:"metricAxis,omitempty"`
	OnClick            Handler        `yaml:"-"`
	OnMouseOver        Handler        `yaml:"-"`
	OnMouseOut         Handler        `yaml:"-"`
	Children           Elements       `yaml:"children,omitempty"`
}

func (Scatter) Kind() Kind { return KindScatter }

// Donut draws one arc per series.
type Donut struct {
	Name        *string  `yaml:"name,omitempty"`
	Metric      *string  `yaml:"metric,omitempty"`
	Color       *string  `yaml:"color,omitempty"`
	StartAngle  *float64 `yaml:"startAngle,omitempty"`
	HoleRatio   *float64 `yaml:"holeRatio,omitempty"`
	IsBoolean   *bool    `yaml:"isBoolean,omitempty"`
	OnClick     Handler  `yaml:"-"`
	OnMouseOver Handler  `yaml:"-"`
	OnMouseOut  Handler  `yaml:"-"`
	Children    Elements `yaml:"children,omitempty"`
}

func (Donut) Kind() Kind { return KindDonut }

// Combo lays out Bar and Line children over one shared dimension.
type Combo struct {
	Name           *string  `yaml:"name,omitempty"`
	Dimension      *string  `yaml:"dimension,omitempty"`
	DualMetricAxis *bool    `yaml:"dualMetricAxis,omitempty"`
	Children       Elements `yaml:"children,omitempty"`
}

func (Combo) Kind() Kind { return KindCombo }

// Threshold colors a value band of a bullet.
type Threshold struct {
	ThresholdMin *float64 `yaml:"thresholdMin,omitempty"`
	ThresholdMax *float64 `yaml:"thresholdMax,omitempty"`
	Fill         string   `yaml:"fill"`
}

// Bullet draws a progress bar against a target per dimension value.
type Bullet struct {
	Name              *string     `yaml:"name,omitempty"`
	Metric            *string     `yaml:"metric,omitempty"`
	Dimension         *string     `yaml:"dimension,omitempty"`
	Target            *string     `yaml:"target,omitempty"`
	Color             *string     `yaml:"color,omitempty"`
	Direction         *string     `yaml:"direction,omitempty"`
	NumberFormat      *string     `yaml:"numberFormat,omitempty"`
	ShowTarget        *bool       `yaml:"showTarget,omitempty"`
	ShowTargetValue   *bool       `yaml:"showTargetValue,omitempty"`
	LabelPosition     *string     `yaml:"labelPosition,omitempty"`
	ScaleType         *string     `yaml:"scaleType,omitempty"`
	MaxScaleValue     *float64    `yaml:"maxScaleValue,omitempty"`
	ThresholdBarColor *bool       `yaml:"thresholdBarColor,omitempty"`
	Thresholds        []Threshold `yaml:"thresholds,omitempty"`
	Track             *bool       `yaml:"track,omitempty"`
	MetricLabel       *string     `yaml:"metricLabel,omitempty"`
}

func (Bullet) Kind() Kind { return KindBullet }

// Sunburst draws a radial hierarchy from id/parent rows.
type Sunburst struct {
	Name        *string  `yaml:"name,omitempty"`
	Metric      *string  `yaml:"metric,omitempty"`
	ID          *string  `yaml:"id,omitempty"`
	ParentKey   *string  `yaml:"parentKey,omitempty"`
	SegmentKey  *string  `yaml:"segmentKey,omitempty"`
	Color       *string  `yaml:"color,omitempty"`
	OnClick     Handler  `yaml:"-"`
	OnMouseOver Handler  `yaml:"-"`
	OnMouseOut  Handler  `yaml:"-"`
	Children    Elements `yaml:"children,omitempty"`
}

func (Sunburst) Kind() Kind { return KindSunburst }

// Unwrap returns the value form of el when el is a non-nil pointer to an
// element, so callers can switch on value types only.
func Unwrap(el Element) Element {
	v := reflect.ValueOf(el)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return el
	}

	if inner, ok := v.Elem().Interface().(Element); ok {
		return inner
	}

	return el
}
