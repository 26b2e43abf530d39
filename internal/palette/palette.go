// Package palette holds the static color, dash and theme tables used when
// resolving facet values into concrete rendering values.
package palette

import "strings"

// ColorScheme selects the light or dark variant of named colors and config.
type ColorScheme string

const (
	Light ColorScheme = "light"
	Dark  ColorScheme = "dark"
)

// Categorical is the default series color order.
var Categorical = []string{
	"categorical-100", "categorical-200", "categorical-300", "categorical-400",
	"categorical-500", "categorical-600", "categorical-700", "categorical-800",
	"categorical-900", "categorical-1000", "categorical-1100", "categorical-1200",
}

var lightColors = map[string]string{
	"categorical-100":  "#0fb5ae",
	"categorical-200":  "#4046ca",
	"categorical-300":  "#f68511",
	"categorical-400":  "#de3d82",
	"categorical-500":  "#7e84fa",
	"categorical-600":  "#72e06a",
	"categorical-700":  "#147af3",
	"categorical-800":  "#7326d3",
	"categorical-900":  "#e8c600",
	"categorical-1000": "#cb5d00",
	"categorical-1100": "#008f5d",
	"categorical-1200": "#bce931",
	"gray-50":          "#ffffff",
	"gray-100":         "#f8f8f8",
	"gray-200":         "#e6e6e6",
	"gray-300":         "#d5d5d5",
	"gray-400":         "#b1b1b1",
	"gray-500":         "#909090",
	"gray-600":         "#6d6d6d",
	"gray-700":         "#494949",
	"gray-800":         "#2c2c2c",
	"gray-900":         "#1d1d1d",
	"blue-400":         "#5d89ff",
	"blue-700":         "#2a5cf0",
	"blue-900":         "#1c3fbf",
	"red-700":          "#d31510",
	"green-700":        "#007a4d",
	"static-blue":      "#1473e6",
}

var darkColors = map[string]string{
	"gray-50":   "#1d1d1d",
	"gray-100":  "#2c2c2c",
	"gray-200":  "#393939",
	"gray-300":  "#494949",
	"gray-400":  "#5c5c5c",
	"gray-500":  "#7c7c7c",
	"gray-600":  "#a2a2a2",
	"gray-700":  "#c8c8c8",
	"gray-800":  "#e3e3e3",
	"gray-900":  "#ffffff",
	"blue-400":  "#304ee0",
	"blue-700":  "#5b9bff",
	"blue-900":  "#8dbaff",
	"red-700":   "#ff5a4f",
	"green-700": "#2fb47d",
}

// Color resolves a named color for scheme. Unknown names (CSS colors, hex
// values) are returned unchanged.
func Color(name string, scheme ColorScheme) string {
	if scheme == Dark {
		if c, ok := darkColors[name]; ok {
			return c
		}
	}

	if c, ok := lightColors[name]; ok {
		return c
	}

	return name
}

// Colors resolves every entry of names.
func Colors(names []string, scheme ColorScheme) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Color(n, scheme)
	}

	return out
}

// LineTypes is the default series dash order.
var LineTypes = []string{"solid", "dashed", "dotted", "dotDash", "shortDash", "longDash", "twoDash"}

var dashes = map[string][]float64{
	"solid":     {},
	"dashed":    {7, 4},
	"dotted":    {2, 3},
	"dotDash":   {2, 3, 7, 4},
	"shortDash": {3, 4},
	"longDash":  {11, 4},
	"twoDash":   {5, 2, 11, 2},
}

// StrokeDash returns the dash array for a named line type. A space or comma
// separated list of numbers is parsed as a literal dash array; anything else is solid.
func StrokeDash(lineType string) []float64 {
	if d, ok := dashes[lineType]; ok {
		return append([]float64{}, d...)
	}

	return parseDashArray(lineType)
}

// StrokeDashes maps every line type through StrokeDash.
func StrokeDashes(lineTypes []string) [][]float64 {
	out := make([][]float64, len(lineTypes))
	for i, lt := range lineTypes {
		out[i] = StrokeDash(lt)
	}

	return out
}

func parseDashArray(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))

	for _, f := range fields {
		var v float64

		for _, r := range f {
			if r < '0' || r > '9' {
				return []float64{}
			}

			v = v*10 + float64(r-'0')
		}

		out = append(out, v)
	}

	return out
}

// Config returns the base rendering config for a color scheme.
func Config(scheme ColorScheme) map[string]any {
	text := Color("gray-800", scheme)
	grid := Color("gray-300", scheme)
	domain := Color("gray-900", scheme)

	return map[string]any{
		"font": "adobe-clean, 'Source Sans Pro', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif",
		"axis": map[string]any{
			"domainColor":     domain,
			"gridColor":       grid,
			"labelColor":      text,
			"labelFontSize":   12,
			"tickColor":       grid,
			"titleColor":      text,
			"titleFontSize":   14,
			"titleFontWeight": "bold",
		},
		"legend": map[string]any{
			"labelColor":    text,
			"labelFontSize": 12,
			"symbolSize":    100,
			"titleColor":    text,
			"titleFontSize": 12,
		},
		"text": map[string]any{
			"fill":     text,
			"fontSize": 14,
		},
		"title": map[string]any{
			"color":    text,
			"fontSize": 16,
		},
		"view": map[string]any{"stroke": nil},
	}
}
