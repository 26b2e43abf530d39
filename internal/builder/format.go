package builder

import (
	"fmt"
	"strings"

	"chartspec/internal/locale"
	"chartspec/internal/options"
)

// Named number formats.
const (
	FormatCurrency       = "currency"
	FormatShortNumber    = "shortNumber"
	FormatStandardNumber = "standardNumber"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
	"BRL": "R$",
	"CHF": "CHF",
	"CAD": "CA$",
	"AUD": "A$",
}

// NumberFormatExpression returns a Vega expression formatting valueExpr.
// format is a named format or a d3-format specifier; an empty format returns
// an empty expression. currencyCode replaces the locale currency symbol,
// keeping the locale's symbol position.
func NumberFormatExpression(valueExpr, format, currencyCode string, loc locale.NumberLocale) string {
	switch format {
	case "":
		return ""
	case FormatShortNumber:
		return fmt.Sprintf("upper(replace(format(%s, '.3~s'), 'G', 'B'))", valueExpr)
	case FormatStandardNumber:
		return fmt.Sprintf("format(%s, ',')", valueExpr)
	case FormatCurrency:
		if currencyCode == "" {
			return fmt.Sprintf("format(%s, '$,.2f')", valueExpr)
		}

		return currencyExpression(valueExpr, ",.2f", currencyCode, loc)
	}

	if currencyCode != "" && strings.Contains(format, "$") {
		return currencyExpression(valueExpr, strings.ReplaceAll(format, "$", ""), currencyCode, loc)
	}

	return fmt.Sprintf("format(%s, '%s')", valueExpr, escapeQuote(format))
}

func currencyExpression(valueExpr, specifier, currencyCode string, loc locale.NumberLocale) string {
	symbol, ok := currencySymbols[strings.ToUpper(currencyCode)]
	if !ok {
		symbol = strings.ToUpper(currencyCode) + " "
	}

	number := fmt.Sprintf("format(%s, '%s')", valueExpr, escapeQuote(specifier))

	prefix, _ := loc.CurrencyAffixes()
	if prefix != "" {
		return fmt.Sprintf("'%s' + %s", escapeQuote(symbol), number)
	}

	return fmt.Sprintf("%s + ' %s'", number, escapeQuote(strings.TrimSpace(symbol)))
}

// LabelFormatExpression returns the expression for an axis label format:
// percentage, duration (seconds as h:mm:ss) or linear.
func LabelFormatExpression(valueExpr, labelFormat string) string {
	switch labelFormat {
	case options.LabelFormatPercentage:
		return fmt.Sprintf("format(%s, '~%%')", valueExpr)
	case options.LabelFormatDuration:
		v := valueExpr
		minutes := fmt.Sprintf("floor(%s / 60) %% 60", v)
		seconds := fmt.Sprintf("floor(%s) %% 60", v)

		return fmt.Sprintf("floor(%s / 3600) + ':' + (%s < 10 ? '0' : '') + %s + ':' + (%s < 10 ? '0' : '') + %s",
			v, minutes, minutes, seconds, seconds)
	case options.LabelFormatLinear:
		return fmt.Sprintf("format(%s, ',')", valueExpr)
	default:
		return ""
	}
}

// TimeFormat holds the label formats of a time axis.
type TimeFormat struct {
	// Primary formats every tick.
	Primary string
	// Secondary formats the context axis; empty when there is none.
	Secondary string
	// SecondaryInterval is the tick interval of the context axis.
	SecondaryInterval string
	// Interval is the tick interval of the primary axis.
	Interval string
}

var timeFormats = map[options.Granularity]TimeFormat{
	options.Second:  {Primary: "%-I:%M:%S %p", Secondary: "%b %-d", SecondaryInterval: "day", Interval: "second"},
	options.Minute:  {Primary: "%-I:%M %p", Secondary: "%b %-d", SecondaryInterval: "day", Interval: "minute"},
	options.Hour:    {Primary: "%-I %p", Secondary: "%b %-d", SecondaryInterval: "day", Interval: "hour"},
	options.Day:     {Primary: "%-d", Secondary: "%b", SecondaryInterval: "month", Interval: "day"},
	options.Week:    {Primary: "%-d", Secondary: "%b", SecondaryInterval: "month", Interval: "week"},
	options.Month:   {Primary: "%b", Secondary: "%Y", SecondaryInterval: "year", Interval: "month"},
	options.Quarter: {Primary: "Q%q", Secondary: "%Y", SecondaryInterval: "year", Interval: "month"},
}

// TimeFormats returns the label formats for granularity, defaulting to day.
func TimeFormats(granularity options.Granularity) TimeFormat {
	if f, ok := timeFormats[granularity]; ok {
		return f
	}

	return timeFormats[options.Day]
}

func escapeQuote(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
