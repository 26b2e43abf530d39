package compile

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/diagnostic"
	"chartspec/internal/locale"
	"chartspec/internal/vega"
)

func newCompiler(t *testing.T, mutate func(c *Config)) *Compiler {
	t.Helper()

	config := DefaultConfig()
	config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	if mutate != nil {
		mutate(&config)
	}

	c, err := New(config)
	require.NoError(t, err)

	return c
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "  ", config.Indent)
	assert.Equal(t, 128, config.CacheSize)
	assert.False(t, config.InlineData)
	assert.Empty(t, config.Locale)
}

func TestCompile(t *testing.T) {
	c := newCompiler(t, nil)

	root := chart.Chart{
		Data: []chart.Datum{{"category": "a", "value": 1, "series": "s"}},
		Children: chart.Elements{
			chart.Bar{},
			chart.Axis{Position: common.Ptr("bottom")},
			chart.Axis{Position: common.Ptr("left")},
			chart.Legend{},
			chart.Title{Text: "Revenue"},
		},
	}

	result := c.Compile(root)
	spec := result.Spec

	assert.True(t, result.Diagnostics.IsEmpty(), result.Diagnostics.Codes())
	assert.NotNil(t, spec.Mark("bar0_group"))

	require.Len(t, spec.Axes, 2)
	assert.Equal(t, "xBand", spec.Axes[0].Scale)
	assert.Equal(t, "yLinear", spec.Axes[1].Scale)

	require.Len(t, spec.Legends, 1)
	assert.Equal(t, vega.ColorScale, spec.Legends[0].Fill)

	require.NotNil(t, spec.Title)
	assert.Equal(t, "Revenue", spec.Title.Text)

	assert.Equal(t, root.Data, result.Data)
	assert.Empty(t, spec.DataSource(vega.TableData).Values)
}

func TestCompileIndexesMarksPerKind(t *testing.T) {
	c := newCompiler(t, nil)

	result := c.Compile(chart.Chart{
		Children: chart.Elements{
			chart.Bar{},
			chart.Line{},
			&chart.Bar{Type: common.Ptr("dodged")},
		},
	})

	assert.NotNil(t, result.Spec.Mark("bar0_group"))
	assert.NotNil(t, result.Spec.Mark("bar1_group"))
	assert.NotNil(t, result.Spec.Mark("line0_group"))
}

func TestCompileDiagnostics(t *testing.T) {
	tests := []struct {
		name  string
		root  chart.Chart
		codes []string
		paths []string
	}{
		{
			name: "unknown children",
			root: chart.Chart{Children: chart.Elements{
				chart.Unknown{Tag: "sparkle"},
				chart.Bar{Children: chart.Elements{chart.Legend{}}},
			}},
			codes: []string{diagnostic.CodeUnknownChild, diagnostic.CodeUnknownChild},
			paths: []string{"chart", "chart/bar[0]"},
		},
		{
			name:  "axis without a scale",
			root:  chart.Chart{Children: chart.Elements{chart.Axis{Position: common.Ptr("left")}}},
			codes: []string{diagnostic.CodeAxisDefaultScale},
			paths: []string{"chart/axis[0]"},
		},
		{
			name:  "unsupported locale",
			root:  chart.Chart{Locale: common.Ptr(locale.Code("xx-XX"))},
			codes: []string{diagnostic.CodeLocaleFallback, diagnostic.CodeLocaleFallback},
			paths: []string{"chart", "chart"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newCompiler(t, nil).Compile(tt.root)

			assert.Equal(t, tt.codes, result.Diagnostics.Codes())

			var paths []string
			for _, d := range result.Diagnostics.All() {
				paths = append(paths, d.Path)
			}

			assert.Equal(t, tt.paths, paths)
			assert.False(t, result.Diagnostics.IsEmpty())
		})
	}
}

func TestCompileDefaultLocale(t *testing.T) {
	c := newCompiler(t, func(c *Config) { c.Locale = "de-DE" })

	result := c.Compile(chart.Chart{})
	assert.Equal(t, locale.Get(locale.Code("de-DE")), result.Spec.Config["locale"])

	result = c.Compile(chart.Chart{Locale: common.Ptr(locale.Code("fr-FR"))})
	assert.Equal(t, locale.Get(locale.Code("fr-FR")), result.Spec.Config["locale"])
}

func TestCompileInlineData(t *testing.T) {
	c := newCompiler(t, func(c *Config) { c.InlineData = true })

	result := c.Compile(chart.Chart{
		Data:     []chart.Datum{{"value": 1}, {"value": 2}},
		Children: chart.Elements{chart.Bar{}},
	})

	values := result.Spec.DataSource(vega.TableData).Values
	require.Len(t, values, 2)
	assert.Equal(t, chart.Datum{"value": 2}, values[1])
}

const barDocument = `
data:
  - {category: a, value: 1}
children:
  - bar: {}
  - axis: {position: bottom}
`

func TestCompileDocument(t *testing.T) {
	c := newCompiler(t, func(c *Config) { c.Indent = "" })

	doc, err := c.CompileDocument([]byte(barDocument))
	require.NoError(t, err)
	assert.Contains(t, string(doc.JSON), `"name":"bar0_group"`)
	assert.Contains(t, string(doc.JSON), vega.SchemaURL)
	assert.True(t, doc.Diagnostics.IsEmpty())
	assert.Equal(t, 1, c.CacheLen())

	again, err := c.CompileDocument([]byte(barDocument))
	require.NoError(t, err)
	assert.Equal(t, doc.JSON, again.JSON)
	assert.Equal(t, 1, c.CacheLen())

	_, err = c.CompileDocument([]byte("children: {bar: 1}"))
	require.Error(t, err)
	assert.Equal(t, 1, c.CacheLen())
}

func TestCompileDocumentReturnsPrivateJSON(t *testing.T) {
	c := newCompiler(t, nil)

	first, err := c.CompileDocument([]byte(barDocument))
	require.NoError(t, err)

	want := string(first.JSON)
	first.JSON[0] = 'X'

	second, err := c.CompileDocument([]byte(barDocument))
	require.NoError(t, err)
	assert.Equal(t, want, string(second.JSON))

	second.JSON[0] = 'Y'

	third, err := c.CompileDocument([]byte(barDocument))
	require.NoError(t, err)
	assert.Equal(t, want, string(third.JSON))
}

func TestCompileDocumentWithoutCache(t *testing.T) {
	c := newCompiler(t, func(c *Config) { c.CacheSize = 0 })

	doc, err := c.CompileDocument([]byte(barDocument))
	require.NoError(t, err)
	assert.Contains(t, string(doc.JSON), "\n  \"$schema\"")
	assert.Equal(t, 0, c.CacheLen())
}

func TestCompileSuggestsTags(t *testing.T) {
	result := newCompiler(t, nil).Compile(chart.Chart{
		Children: chart.Elements{chart.Unknown{Tag: "legnd"}},
	})

	require.Len(t, result.Diagnostics.Warnings, 1)

	warning := result.Diagnostics.Warnings[0]
	assert.Equal(t, "legnd", warning.Construct)
	assert.Equal(t, []string{"legend"}, warning.Suggestions)
}
