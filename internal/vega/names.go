package vega

// SchemaURL is the Vega schema the specification targets.
const SchemaURL = "https://vega.github.io/schema/vega/v5.json"

// Data source names.
const (
	TableData         = "table"
	FilteredTableData = "filteredTable"
)

// Fields added to every datum.
const (
	MarkIDField   = "rscMarkId"
	SeriesIDField = "rscSeriesId"
)

// Interaction and style signal names.
const (
	HighlightedItemSignal   = "highlightedItem"
	HighlightedSeriesSignal = "highlightedSeries"
	HighlightedGroupSignal  = "highlightedGroup"
	SelectedItemSignal      = "selectedItem"
	SelectedSeriesSignal    = "selectedSeries"
	HiddenSeriesSignal      = "hiddenSeries"
	ColorsSignal            = "colors"
	LineTypesSignal         = "lineTypes"
	OpacitiesSignal         = "opacities"
	BackgroundColorSignal   = "backgroundColor"
)

// Facet scale names.
const (
	ColorScale      = "color"
	LineTypeScale   = "lineType"
	OpacityScale    = "opacity"
	LineWidthScale  = "lineWidth"
	SymbolSizeScale = "symbolSize"
)

// HighlightContrastRatio is the ratio between highlighted and dimmed opacity.
const HighlightContrastRatio = 5

// Scale types.
const (
	ScaleLinear  = "linear"
	ScaleBand    = "band"
	ScalePoint   = "point"
	ScaleTime    = "time"
	ScaleOrdinal = "ordinal"
)

// Mark types.
const (
	MarkGroup  = "group"
	MarkRect   = "rect"
	MarkLine   = "line"
	MarkArea   = "area"
	MarkSymbol = "symbol"
	MarkArc    = "arc"
	MarkText   = "text"
	MarkRule   = "rule"
	MarkPath   = "path"
	MarkTrail  = "trail"
)
