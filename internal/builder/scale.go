package builder

import (
	"strings"
	"unicode"

	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

// Encoding channels.
const (
	ChannelX = "x"
	ChannelY = "y"
)

// DualAxisScaleNames are the scale and signal names of a split metric scale.
type DualAxisScaleNames struct {
	PrimaryScale    string
	SecondaryScale  string
	PrimaryDomain   string
	SecondaryDomain string
}

// GetScaleName derives the shared scale name for a channel and scale type,
// e.g. ("x", "linear") -> "xLinear".
func GetScaleName(channel string, scaleType options.ScaleType) string {
	return channel + naming.ToPascalCase(string(scaleType))
}

// GetScaleField returns the first domain field of s. It reports false for
// scales without a data-driven domain.
func GetScaleField(s vega.Scale) (string, bool) {
	if s.Domain == nil {
		return "", false
	}

	if s.Domain.Field != "" {
		return s.Domain.Field, true
	}

	return common.First(s.Domain.Fields)
}

// GetDualAxisScaleNames suffixes base with the dual axis names.
func GetDualAxisScaleNames(base string) DualAxisScaleNames {
	return DualAxisScaleNames{
		PrimaryScale:    base + "Primary",
		SecondaryScale:  base + "Secondary",
		PrimaryDomain:   base + "PrimaryDomain",
		SecondaryDomain: base + "SecondaryDomain",
	}
}

// ScaleChannel infers the channel of a scale from its name: "xBand" and
// "combo0Line1YLinear" read as x and y. Facet scales have no channel.
func ScaleChannel(name string) string {
	runes := []rune(name)
	if len(runes) > 1 && (runes[0] == 'x' || runes[0] == 'y') && unicode.IsUpper(runes[1]) {
		return string(runes[0])
	}

	for _, t := range []options.ScaleType{options.ScaleLinear, options.ScaleBand, options.ScaleTime, options.ScalePoint} {
		suffix := naming.ToPascalCase(string(t))

		base := strings.TrimSuffix(name, suffix)
		base = strings.TrimSuffix(base, "Primary")
		base = strings.TrimSuffix(base, "Secondary")

		if base == name {
			continue
		}

		if strings.HasSuffix(base, "X") {
			return ChannelX
		}

		if strings.HasSuffix(base, "Y") {
			return ChannelY
		}
	}

	return ""
}

// AddDomainFields appends fields to the domain of s, skipping fields already
// present. The domain becomes a fields list if it held a single field.
func AddDomainFields(s *vega.Scale, fields ...string) {
	if s.Domain == nil {
		s.Domain = &vega.Domain{Data: vega.TableData}
	}

	if s.Domain.Field != "" {
		s.Domain.Fields = common.AppendIfAbsent(s.Domain.Fields, s.Domain.Field)
		s.Domain.Field = ""
	}

	if s.Domain.Fields == nil {
		s.Domain.Fields = []string{}
	}

	for _, f := range fields {
		if f != "" {
			s.Domain.Fields = common.AppendIfAbsent(s.Domain.Fields, f)
		}
	}
}

// AddScale returns the scale named s.Name, appending s when absent. An
// existing scale keeps its settings and gains the domain fields of s.
func AddScale(spec *vega.Spec, s vega.Scale) *vega.Scale {
	if existing := spec.Scale(s.Name); existing != nil {
		if s.Domain != nil && s.Domain.Signal == "" && s.Domain.Values == nil {
			fields := s.Domain.Fields
			if s.Domain.Field != "" {
				fields = append([]string{s.Domain.Field}, fields...)
			}

			AddDomainFields(existing, fields...)
		}

		return existing
	}

	spec.Scales = append(spec.Scales, s)

	return &spec.Scales[len(spec.Scales)-1]
}

// AddFieldToFacetScale adds field to the domain of the named facet scale.
func AddFieldToFacetScale(spec *vega.Spec, facetScale, field string) {
	if field == "" {
		return
	}

	s := spec.Scale(facetScale)
	if s == nil {
		return
	}

	AddDomainFields(s, field)
}

var facetScales = map[string]string{
	"color":      vega.ColorScale,
	"lineType":   vega.LineTypeScale,
	"opacity":    vega.OpacityScale,
	"lineWidth":  vega.LineWidthScale,
	"size":       vega.SymbolSizeScale,
	"symbolSize": vega.SymbolSizeScale,
}

// GetFacetScaleName returns the facet scale encoding facetType, or "" for an
// unknown facet type.
func GetFacetScaleName(facetType string) string {
	return facetScales[facetType]
}

// FacetFields lists the fields that identify a series: the domain fields of
// the color, line type and opacity scales, in that order.
func FacetFields(spec *vega.Spec) []string {
	var fields []string

	for _, name := range []string{vega.ColorScale, vega.LineTypeScale, vega.OpacityScale} {
		s := spec.Scale(name)
		if s == nil || s.Domain == nil {
			continue
		}

		fields = common.AppendIfAbsent(fields, s.Domain.Fields...)
	}

	return fields
}

// AddDimensionScale adds or extends the dimension scale for channel.
func AddDimensionScale(spec *vega.Spec, channel string, scaleType options.ScaleType, field string, padding float64) string {
	name := GetScaleName(channel, scaleType)
	s := vega.Scale{
		Name:   name,
		Type:   string(scaleType),
		Domain: &vega.Domain{Data: vega.TableData, Fields: []string{field}},
		Range:  channelRange(channel),
	}

	switch scaleType {
	case options.ScaleBand:
		s.PaddingInner = vega.Float(padding)
		s.PaddingOuter = vega.Float(padding / 2)
	case options.ScalePoint:
		s.Padding = vega.Float(padding)
	case options.ScaleLinear:
		s.Zero = vega.Bool(false)
		s.Nice = false
	}

	AddScale(spec, s)

	return name
}

// AddBandScale adds or extends a band dimension scale with explicit paddings.
func AddBandScale(spec *vega.Spec, channel, field string, paddingInner, paddingOuter float64) string {
	name := GetScaleName(channel, options.ScaleBand)
	AddScale(spec, vega.Scale{
		Name:         name,
		Type:         vega.ScaleBand,
		Domain:       &vega.Domain{Data: vega.TableData, Fields: []string{field}},
		Range:        channelRange(channel),
		PaddingInner: vega.Float(paddingInner),
		PaddingOuter: vega.Float(paddingOuter),
	})

	return name
}

// AddMetricScale adds or extends a linear metric scale over the filtered table.
func AddMetricScale(spec *vega.Spec, name, channel string, fields ...string) string {
	AddScale(spec, vega.Scale{
		Name:   name,
		Type:   vega.ScaleLinear,
		Domain: &vega.Domain{Data: vega.FilteredTableData, Fields: append([]string{}, fields...)},
		Range:  channelRange(channel),
		Nice:   true,
		Zero:   vega.Bool(true),
	})

	return name
}

// MetricScaleName is the metric scale a mark draws against: metricAxis when
// set, otherwise the default linear scale of channel.
func MetricScaleName(channel, metricAxis string) string {
	if metricAxis != "" {
		return metricAxis
	}

	return GetScaleName(channel, options.ScaleLinear)
}

// AddDualMetricScales adds the primary and secondary scales of base, with
// domains read from the extent signals. The signals are bound by the extent
// transforms of the mark that splits its series.
func AddDualMetricScales(spec *vega.Spec, base, channel string) DualAxisScaleNames {
	names := GetDualAxisScaleNames(base)

	for _, pair := range [][2]string{{names.PrimaryScale, names.PrimaryDomain}, {names.SecondaryScale, names.SecondaryDomain}} {
		AddScale(spec, vega.Scale{
			Name:   pair[0],
			Type:   vega.ScaleLinear,
			Domain: &vega.Domain{Signal: pair[1]},
			Range:  channelRange(channel),
			Nice:   true,
			Zero:   vega.Bool(true),
		})
	}

	return names
}

func channelRange(channel string) string {
	if channel == ChannelY {
		return "height"
	}

	return "width"
}

func otherChannel(channel string) string {
	if channel == ChannelX {
		return ChannelY
	}

	return ChannelX
}
