package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chartspec/internal/locale"
	"chartspec/internal/options"
)

func TestNumberFormatExpression(t *testing.T) {
	us := locale.Get(locale.Code("en-US")).Number
	de := locale.Get(locale.Code("de-DE")).Number

	tests := []struct {
		name     string
		format   string
		currency string
		loc      locale.NumberLocale
		want     string
	}{
		{"empty", "", "", us, ""},
		{"standard", FormatStandardNumber, "", us, "format(datum.value, ',')"},
		{"currency without code", FormatCurrency, "", us, "format(datum.value, '$,.2f')"},
		{"currency prefix", FormatCurrency, "USD", us, "'$' + format(datum.value, ',.2f')"},
		{"currency suffix", FormatCurrency, "EUR", de, "format(datum.value, ',.2f') + ' €'"},
		{"unknown currency", FormatCurrency, "xyz", us, "'XYZ ' + format(datum.value, ',.2f')"},
		{"d3 specifier", ".2f", "", us, "format(datum.value, '.2f')"},
		{"d3 currency specifier", "$,.0f", "JPY", us, "'¥' + format(datum.value, ',.0f')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberFormatExpression("datum.value", tt.format, tt.currency, tt.loc))
		})
	}
}

func TestLabelFormatExpression(t *testing.T) {
	assert.Equal(t, "format(datum.value, '~%')", LabelFormatExpression("datum.value", options.LabelFormatPercentage))
	assert.Equal(t, "format(datum.value, ',')", LabelFormatExpression("datum.value", options.LabelFormatLinear))
	assert.Contains(t, LabelFormatExpression("datum.value", options.LabelFormatDuration), "floor(datum.value / 3600)")
	assert.Empty(t, LabelFormatExpression("datum.value", ""))
}

func TestTimeFormats(t *testing.T) {
	assert.Equal(t, TimeFormats(options.Day), TimeFormats("fortnight"))
	assert.Equal(t, "%b", TimeFormats(options.Month).Primary)
	assert.Equal(t, "year", TimeFormats(options.Quarter).SecondaryInterval)
}
