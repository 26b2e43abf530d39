package vega

// Spec is the root of a Vega specification.
type Spec struct {
	Schema      string         `json:"$schema,omitempty"`
	Description string         `json:"description,omitempty"`
	Width       int            `json:"width,omitempty"`
	Height      int            `json:"height,omitempty"`
	Padding     int            `json:"padding,omitempty"`
	Background  any            `json:"background,omitempty"`
	Autosize    map[string]any `json:"autosize,omitempty"`
	Title       *Title         `json:"title,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
	Data        []Data         `json:"data"`
	Scales      []Scale        `json:"scales"`
	Signals     []Signal       `json:"signals"`
	Marks       []Mark         `json:"marks"`
	Axes        []Axis         `json:"axes,omitempty"`
	Legends     []Legend       `json:"legends,omitempty"`
	Usermeta    map[string]any `json:"usermeta,omitempty"`
}

// Data is a named data source.
type Data struct {
	Name      string      `json:"name"`
	Source    string      `json:"source,omitempty"`
	Values    []any       `json:"values,omitempty"`
	Transform []Transform `json:"transform,omitempty"`
	On        []Trigger   `json:"on,omitempty"`
}

// Trigger modifies a data source when a signal changes.
type Trigger struct {
	Trigger string `json:"trigger"`
	Toggle  string `json:"toggle,omitempty"`
	Insert  string `json:"insert,omitempty"`
	Remove  any    `json:"remove,omitempty"`
}

// Transform is one step of a data pipeline. Only the fields relevant to Type are set.
type Transform struct {
	Type       string   `json:"type"`
	As         any      `json:"as,omitempty"`
	Expr       string   `json:"expr,omitempty"`
	Field      string   `json:"field,omitempty"`
	Fields     []string `json:"fields,omitempty"`
	Groupby    []string `json:"groupby,omitempty"`
	Ops        []string `json:"ops,omitempty"`
	Sort       *Compare `json:"sort,omitempty"`
	Units      []string `json:"units,omitempty"`
	Method     string   `json:"method,omitempty"`
	Order      int      `json:"order,omitempty"`
	X          string   `json:"x,omitempty"`
	Y          string   `json:"y,omitempty"`
	Frame      []any    `json:"frame,omitempty"`
	Extent     any      `json:"extent,omitempty"`
	Size       []any    `json:"size,omitempty"`
	StartAngle any      `json:"startAngle,omitempty"`
	EndAngle   any      `json:"endAngle,omitempty"`
	Key        string   `json:"key,omitempty"`
	ParentKey  string   `json:"parentKey,omitempty"`
	Offset     string   `json:"offset,omitempty"`
	Signal     string   `json:"signal,omitempty"`
	Params     []any    `json:"params,omitempty"`
}

// Compare is a sort specification.
type Compare struct {
	Field any `json:"field"`
	Order any `json:"order,omitempty"`
}

// Scale maps a data domain to a visual range.
type Scale struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Domain       *Domain  `json:"domain,omitempty"`
	Range        any      `json:"range,omitempty"`
	Padding      *float64 `json:"padding,omitempty"`
	PaddingInner *float64 `json:"paddingInner,omitempty"`
	PaddingOuter *float64 `json:"paddingOuter,omitempty"`
	Nice         any      `json:"nice,omitempty"`
	Zero         *bool    `json:"zero,omitempty"`
	Round        *bool    `json:"round,omitempty"`
	Reverse      *bool    `json:"reverse,omitempty"`
}

// Signal is a named reactive value.
type Signal struct {
	Name   string    `json:"name,omitempty"`
	Value  any       `json:"value"`
	Update string    `json:"update,omitempty"`
	Signal string    `json:"signal,omitempty"`
	On     []OnEvent `json:"on,omitempty"`
}

// OnEvent updates a signal when an event stream fires.
type OnEvent struct {
	Events string `json:"events"`
	Update string `json:"update"`
}

// Mark is a visual mark; group marks nest further marks.
type Mark struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Type        string      `json:"type"`
	From        *From       `json:"from,omitempty"`
	Interactive *bool       `json:"interactive,omitempty"`
	Clip        *bool       `json:"clip,omitempty"`
	ZIndex      int         `json:"zindex,omitempty"`
	Encode      *Encode     `json:"encode,omitempty"`
	Transform   []Transform `json:"transform,omitempty"`
	Data        []Data      `json:"data,omitempty"`
	Signals     []Signal    `json:"signals,omitempty"`
	Scales      []Scale     `json:"scales,omitempty"`
	Marks       []Mark      `json:"marks,omitempty"`
}

// From binds a mark to a data source or a facet.
type From struct {
	Data  string `json:"data,omitempty"`
	Facet *Facet `json:"facet,omitempty"`
}

// Facet partitions a data source into one group per key.
type Facet struct {
	Name    string   `json:"name"`
	Data    string   `json:"data"`
	Groupby []string `json:"groupby"`
}

// Axis is an axis definition.
type Axis struct {
	Name            string      `json:"name,omitempty"`
	Scale           string      `json:"scale"`
	Orient          string      `json:"orient"`
	Title           string      `json:"title,omitempty"`
	Grid            bool        `json:"grid"`
	Ticks           bool        `json:"ticks"`
	Domain          bool        `json:"domain"`
	Labels          *bool       `json:"labels,omitempty"`
	LabelAlign      string      `json:"labelAlign,omitempty"`
	LabelAngle      *float64    `json:"labelAngle,omitempty"`
	LabelFlush      *bool       `json:"labelFlush,omitempty"`
	LabelLimit      int         `json:"labelLimit,omitempty"`
	LabelPadding    int         `json:"labelPadding,omitempty"`
	LabelOffset     int         `json:"labelOffset,omitempty"`
	LabelSeparation int         `json:"labelSeparation,omitempty"`
	LabelFontWeight string      `json:"labelFontWeight,omitempty"`
	TickCount       any         `json:"tickCount,omitempty"`
	TickMinStep     *float64    `json:"tickMinStep,omitempty"`
	Format          string      `json:"format,omitempty"`
	FormatType      string      `json:"formatType,omitempty"`
	Values          any         `json:"values,omitempty"`
	ZIndex          int         `json:"zindex,omitempty"`
	Encode          GuideEncode `json:"encode,omitempty"`
}

// Legend is a legend definition.
type Legend struct {
	Name       string      `json:"name,omitempty"`
	Fill       string      `json:"fill,omitempty"`
	Stroke     string      `json:"stroke,omitempty"`
	Opacity    string      `json:"opacity,omitempty"`
	StrokeDash string      `json:"strokeDash,omitempty"`
	Title      string      `json:"title,omitempty"`
	Orient     string      `json:"orient,omitempty"`
	Direction  string      `json:"direction,omitempty"`
	Columns    any         `json:"columns,omitempty"`
	SymbolType string      `json:"symbolType,omitempty"`
	LabelLimit int         `json:"labelLimit,omitempty"`
	Values     any         `json:"values,omitempty"`
	Encode     GuideEncode `json:"encode,omitempty"`
}

// Title is the chart title.
type Title struct {
	Text       string `json:"text"`
	Orient     string `json:"orient,omitempty"`
	Anchor     string `json:"anchor,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	Frame      string `json:"frame,omitempty"`
}
