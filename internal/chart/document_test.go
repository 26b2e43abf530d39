package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartspec/internal/locale"
)

func TestParse(t *testing.T) {
	doc := `
width: 800
colorScheme: dark
locale: {number: fr-FR, time: en-US}
hiddenSeries: [Windows]
data:
  - {datetime: 1667890800000, people: 5, adoptionRate: 0.5}
children:
  - combo:
      name: combo1
      dimension: datetime
      children:
        - bar:
            metric: people
            color: {value: categorical-300}
            children:
              - tooltip: {highlightBy: series}
              - annotation: {textKey: people}
        - line:
            metric: adoptionRate
            lineType: {value: dashed}
  - axis: {position: bottom, grid: true}
  - legend: {highlight: true, keys: [series]}
  - title: Adoption
  - sparkle: {size: 3}
`

	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, c)

	require.NotNil(t, c.Width)
	assert.Equal(t, 800, *c.Width)
	assert.Nil(t, c.Height)
	assert.Equal(t, "dark", *c.ColorScheme)
	assert.Equal(t, locale.Codes("fr-FR", "en-US"), *c.Locale)
	assert.Equal(t, []string{"Windows"}, c.HiddenSeries)
	require.Len(t, c.Data, 1)
	assert.Equal(t, 5, c.Data[0]["people"])

	require.Len(t, c.Children, 5)

	combo, ok := c.Children[0].(Combo)
	require.True(t, ok)
	assert.Equal(t, "combo1", *combo.Name)
	require.Len(t, combo.Children, 2)

	bar, ok := combo.Children[0].(Bar)
	require.True(t, ok)
	assert.Equal(t, "people", *bar.Metric)
	require.NotNil(t, bar.Color)
	assert.True(t, bar.Color.IsStatic())
	assert.Equal(t, "categorical-300", bar.Color.Value())
	assert.Nil(t, bar.Dimension)
	require.Len(t, bar.Children, 2)
	assert.Equal(t, KindChartTooltip, bar.Children[0].Kind())
	assert.Equal(t, KindBarAnnotation, bar.Children[1].Kind())

	line, ok := combo.Children[1].(Line)
	require.True(t, ok)
	assert.Equal(t, "dashed", line.LineType.Value())

	axis, ok := c.Children[1].(Axis)
	require.True(t, ok)
	assert.True(t, *axis.Grid)

	legend, ok := c.Children[2].(Legend)
	require.True(t, ok)
	assert.Equal(t, []string{"series"}, legend.Keys)

	assert.Equal(t, Title{Text: "Adoption"}, c.Children[3])
	assert.Equal(t, Unknown{Tag: "sparkle"}, c.Children[4])
}

func TestParseBareTags(t *testing.T) {
	doc := `
children:
  - bar:
  - line
`

	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, c.Children, 2)
	assert.Equal(t, Bar{}, c.Children[0])
	assert.Equal(t, Line{}, c.Children[1])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"children not a list", "children: {bar: {}}"},
		{"two keys in one child", "children:\n  - {bar: {}, line: {}}"},
		{"bad prop type", "children:\n  - bar: {paddingRatio: wide}"},
		{"static facet without value", "children:\n  - bar: {color: {static: red}}"},
		{"invalid yaml", "children: [bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestUnwrap(t *testing.T) {
	bar := Bar{Metric: new(string)}

	assert.Equal(t, bar, Unwrap(&bar))
	assert.Equal(t, bar, Unwrap(bar))

	var nilBar *Bar
	assert.Equal(t, Element(nilBar), Unwrap(nilBar))
}
