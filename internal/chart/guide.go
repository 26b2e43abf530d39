package chart

// Axis draws an axis for the scale on its channel.
type Axis struct {
	Name              *string   `yaml:"name,omitempty"`
	Position          *string   `yaml:"position,omitempty"`
	Title             *string   `yaml:"title,omitempty"`
	Baseline          *bool     `yaml:"baseline,omitempty"`
	BaselineOffset    *float64  `yaml:"baselineOffset,omitempty"`
	Grid              *bool     `yaml:"grid,omitempty"`
	Ticks             *bool     `yaml:"ticks,omitempty"`
	HideDefaultLabels *bool     `yaml:"hideDefaultLabels,omitempty"`
	LabelAlign        *string   `yaml:"labelAlign,omitempty"`
	LabelFontWeight   *string   `yaml:"labelFontWeight,omitempty"`
	LabelOrientation  *string   `yaml:"labelOrientation,omitempty"`
	LabelFormat       *string   `yaml:"labelFormat,omitempty"`
	NumberFormat      *string   `yaml:"numberFormat,omitempty"`
	CurrencyCode      *string   `yaml:"currencyCode,omitempty"`
	Granularity       *string   `yaml:"granularity,omitempty"`
	TickMinStep       *float64  `yaml:"tickMinStep,omitempty"`
	TruncateLabels    *bool     `yaml:"truncateLabels,omitempty"`
	Range             []float64 `yaml:"range,omitempty"`
	Children          Elements  `yaml:"children,omitempty"`
}

func (Axis) Kind() Kind { return KindAxis }

// LegendLabel renames one series in the legend.
type LegendLabel struct {
	SeriesName string `yaml:"seriesName"`
	Label      string `yaml:"label"`
}

// LegendDescription attaches a hover description to one series.
type LegendDescription struct {
	SeriesName  string `yaml:"seriesName"`
	Description string `yaml:"description"`
	Title       string `yaml:"title,omitempty"`
}

// Legend lists the series of the facet scales.
type Legend struct {
	Name          *string             `yaml:"name,omitempty"`
	Position      *string             `yaml:"position,omitempty"`
	Title         *string             `yaml:"title,omitempty"`
	Color         *ColorFacet         `yaml:"color,omitempty"`
	LineType      *LineTypeFacet      `yaml:"lineType,omitempty"`
	Opacity       *NumericFacet       `yaml:"opacity,omitempty"`
	Keys          []string            `yaml:"keys,omitempty"`
	Highlight     *bool               `yaml:"highlight,omitempty"`
	IsToggleable  *bool               `yaml:"isToggleable,omitempty"`
	HiddenEntries []string            `yaml:"hiddenEntries,omitempty"`
	LegendLabels  []LegendLabel       `yaml:"legendLabels,omitempty"`
	Descriptions  []LegendDescription `yaml:"descriptions,omitempty"`
	OnClick       Handler             `yaml:"-"`
	OnMouseOver   Handler             `yaml:"-"`
	OnMouseOut    Handler             `yaml:"-"`
}

func (Legend) Kind() Kind { return KindLegend }

// Title sets the chart title.
type Title struct {
	Text       string  `yaml:"text"`
	FontWeight *string `yaml:"fontWeight,omitempty"`
	Position   *string `yaml:"position,omitempty"`
	Orient     *string `yaml:"orient,omitempty"`
}

func (Title) Kind() Kind { return KindTitle }
