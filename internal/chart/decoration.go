package chart

// ChartTooltip shows the hovered datum.
type ChartTooltip struct {
	HighlightBy     *string  `yaml:"highlightBy,omitempty"`
	ExcludeDataKeys []string `yaml:"excludeDataKeys,omitempty"`
}

func (ChartTooltip) Kind() Kind { return KindChartTooltip }

// ChartPopover opens application content for the clicked datum.
type ChartPopover struct {
	Width       *int    `yaml:"width,omitempty"`
	Height      *int    `yaml:"height,omitempty"`
	HighlightBy *string `yaml:"highlightBy,omitempty"`
}

func (ChartPopover) Kind() Kind { return KindChartPopover }

// AnnotationStyle sizes a bar annotation label.
type AnnotationStyle struct {
	Width *float64 `yaml:"width,omitempty"`
}

// BarAnnotation labels the end of every bar.
type BarAnnotation struct {
	TextKey *string          `yaml:"textKey,omitempty"`
	Style   *AnnotationStyle `yaml:"style,omitempty"`
}

func (BarAnnotation) Kind() Kind { return KindBarAnnotation }

// Trendline draws a regression, aggregate or moving window over its parent's series.
type Trendline struct {
	Name              *string        `yaml:"name,omitempty"`
	Method            *string        `yaml:"method,omitempty"`
	DimensionRange    []*float64     `yaml:"dimensionRange,omitempty"`
	Color             *string        `yaml:"color,omitempty"`
	LineType          *LineTypeFacet `yaml:"lineType,omitempty"`
	LineWidth         *NumericFacet  `yaml:"lineWidth,omitempty"`
	Opacity           *NumericFacet  `yaml:"opacity,omitempty"`
	DisplayOnHover    *bool          `yaml:"displayOnHover,omitempty"`
	HighlightRawPoint *bool          `yaml:"highlightRawPoint,omitempty"`
	ExcludeDataKeys   []string       `yaml:"excludeDataKeys,omitempty"`
	Children          Elements       `yaml:"children,omitempty"`
}

func (Trendline) Kind() Kind { return KindTrendline }

// MetricRange shades the band between two metric fields around a line.
type MetricRange struct {
	MetricStart    string         `yaml:"metricStart"`
	MetricEnd      string         `yaml:"metricEnd"`
	Metric         *string        `yaml:"metric,omitempty"`
	Color          *string        `yaml:"color,omitempty"`
	LineType       *LineTypeFacet `yaml:"lineType,omitempty"`
	LineWidth      *NumericFacet  `yaml:"lineWidth,omitempty"`
	RangeOpacity   *float64       `yaml:"rangeOpacity,omitempty"`
	DisplayOnHover *bool          `yaml:"displayOnHover,omitempty"`
	ScaleAxisToFit *bool          `yaml:"scaleAxisToFit,omitempty"`
}

func (MetricRange) Kind() Kind { return KindMetricRange }

// ReferenceLine marks a fixed value on an axis. Value is a number or a
// category string.
type ReferenceLine struct {
	Value           any      `yaml:"value"`
	Color           *string  `yaml:"color,omitempty"`
	LineType        *string  `yaml:"lineType,omitempty"`
	LineWidth       *float64 `yaml:"lineWidth,omitempty"`
	Position        *string  `yaml:"position,omitempty"`
	Label           *string  `yaml:"label,omitempty"`
	LabelFontWeight *string  `yaml:"labelFontWeight,omitempty"`
	Icon            *string  `yaml:"icon,omitempty"`
}

func (ReferenceLine) Kind() Kind { return KindReferenceLine }

// DonutSummary prints the metric total in the donut hole.
type DonutSummary struct {
	Label        *string `yaml:"label,omitempty"`
	NumberFormat *string `yaml:"numberFormat,omitempty"`
}

func (DonutSummary) Kind() Kind { return KindDonutSummary }

// SegmentLabel labels every donut segment.
type SegmentLabel struct {
	LabelKey    *string `yaml:"labelKey,omitempty"`
	Percent     *bool   `yaml:"percent,omitempty"`
	Value       *bool   `yaml:"value,omitempty"`
	ValueFormat *string `yaml:"valueFormat,omitempty"`
}

func (SegmentLabel) Kind() Kind { return KindSegmentLabel }

// ScatterPath connects scatter points that share the GroupBy fields.
type ScatterPath struct {
	Color     *string  `yaml:"color,omitempty"`
	GroupBy   []string `yaml:"groupBy,omitempty"`
	PathWidth *float64 `yaml:"pathWidth,omitempty"`
	Opacity   *float64 `yaml:"opacity,omitempty"`
}

func (ScatterPath) Kind() Kind { return KindScatterPath }
