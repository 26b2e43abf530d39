package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"comboChart", []string{"combo", "Chart"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"line1Trendline0", []string{"line1", "Trendline0"}},
		{"bar 2", []string{"bar", "2"}},
		{"my-chart_name", []string{"my", "chart", "name"}},
		{"1abc", []string{"1", "abc"}},
		{"ID2", []string{"ID", "2"}},
		{"", nil},
		{"---", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"combo1", "combo1"},
		{"Combo Chart", "comboChart"},
		{"my-chart name", "myChartName"},
		{"XMLParser", "xmlParser"},
		{"bar 2", "bar2"},
		{"ALLCAPS", "allcaps"},
		{"line1Trendline0", "line1Trendline0"},
		{"", ""},
		{"!!!", "!!!"},
		{" - ", " - "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCamelCase(tt.input))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "Line1", ToPascalCase("line1"))
	assert.Equal(t, "MetricRange0", ToPascalCase("MetricRange0"))
	assert.Equal(t, "ComboChart", ToPascalCase("combo chart"))
	assert.Equal(t, "", ToPascalCase(""))
	assert.Equal(t, "??", ToPascalCase("??"))
}

func TestCombineNames(t *testing.T) {
	tests := []struct {
		name     string
		parent   string
		child    string
		expected string
	}{
		{"both present", "combo1", "line1", "combo1Line1"},
		{"child already pascal", "bar0", "Trendline0", "bar0Trendline0"},
		{"parent needs camel", "My Chart", "bar0", "myChartBar0"},
		{"missing parent", "", "line1", "line1"},
		{"missing child", "combo1", "", "combo1"},
		{"both missing", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CombineNames(tt.parent, tt.child))
		})
	}
}

func TestChildNameAndResolve(t *testing.T) {
	assert.Equal(t, "bar0Trendline1", ChildName("bar0", "Trendline", 1))

	explicit := "custom"
	empty := ""
	assert.Equal(t, "custom", Resolve(&explicit, "bar0"))
	assert.Equal(t, "bar0", Resolve(&empty, "bar0"))
	assert.Equal(t, "bar0", Resolve(nil, "bar0"))
}
