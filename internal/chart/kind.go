package chart

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the construct an element describes.
type Kind int

const (
	KindUnknown Kind = iota // unrecognized tag; adapters ignore it

	KindChart
	KindBar
	KindLine
	KindArea
	KindScatter
	KindDonut
	KindCombo
	KindBullet
	KindSunburst
	KindAxis
	KindLegend
	KindTitle
	KindChartTooltip
	KindChartPopover
	KindBarAnnotation
	KindTrendline
	KindMetricRange
	KindReferenceLine
	KindDonutSummary
	KindSegmentLabel
	KindScatterPath
)

var kindTags = map[string]Kind{
	"chart":         KindChart,
	"bar":           KindBar,
	"line":          KindLine,
	"area":          KindArea,
	"scatter":       KindScatter,
	"donut":         KindDonut,
	"combo":         KindCombo,
	"bullet":        KindBullet,
	"sunburst":      KindSunburst,
	"axis":          KindAxis,
	"legend":        KindLegend,
	"title":         KindTitle,
	"tooltip":       KindChartTooltip,
	"popover":       KindChartPopover,
	"annotation":    KindBarAnnotation,
	"trendline":     KindTrendline,
	"metricRange":   KindMetricRange,
	"referenceLine": KindReferenceLine,
	"donutSummary":  KindDonutSummary,
	"segmentLabel":  KindSegmentLabel,
	"scatterPath":   KindScatterPath,
}

// KindFromTag returns the kind for a document tag, or KindUnknown.
func KindFromTag(tag string) Kind {
	return kindTags[tag]
}

// Tag returns the document tag of k, or "" for KindUnknown.
func (k Kind) Tag() string {
	for tag, kind := range kindTags {
		if kind == k {
			return tag
		}
	}

	return ""
}

// IsMark reports whether k draws data (as opposed to a guide or decoration).
func (k Kind) IsMark() bool {
	switch k {
	case KindBar, KindLine, KindArea, KindScatter, KindDonut, KindCombo, KindBullet, KindSunburst:
		return true
	default:
		return false
	}
}

// NamePrefix is the lowerCamel base used for synthesized names, e.g. "bar" or "metricRange".
func (k Kind) NamePrefix() string {
	s := k.String()
	if s == "" {
		return s
	}

	return string(s[0]+'a'-'A') + s[1:]
}
