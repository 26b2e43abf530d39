package adapter

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartspec/internal/chart"
	"chartspec/internal/common"
)

// assertMinimal checks that o carries no props: every pointer is nil, every
// slice is empty and every bool is false. MarkType is structural.
func assertMinimal(t *testing.T, o any) {
	t.Helper()

	v := reflect.ValueOf(o)
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		name := v.Type().Field(i).Name

		switch f.Kind() {
		case reflect.Pointer, reflect.Interface:
			assert.True(t, f.IsNil(), "%s should be unset", name)
		case reflect.Slice:
			assert.Zero(t, f.Len(), "%s should be empty", name)
		case reflect.Bool:
			assert.False(t, f.Bool(), "%s should be false", name)
		}
	}
}

func TestAdaptersAreMinimal(t *testing.T) {
	tests := []struct {
		name     string
		options  any
		markType chart.Kind
	}{
		{"bar", GetBarOptions(chart.Bar{}), chart.KindBar},
		{"line", GetLineOptions(chart.Line{}), chart.KindLine},
		{"area", GetAreaOptions(chart.Area{}), chart.KindArea},
		{"scatter", GetScatterOptions(chart.Scatter{}), chart.KindScatter},
		{"donut", GetDonutOptions(chart.Donut{}), chart.KindDonut},
		{"combo", GetComboOptions(chart.Combo{}, 0), chart.KindCombo},
		{"bullet", GetBulletOptions(chart.Bullet{}), chart.KindBullet},
		{"sunburst", GetSunburstOptions(chart.Sunburst{}), chart.KindSunburst},
		{"axis", GetAxisOptions(chart.Axis{}), chart.KindAxis},
		{"legend", GetLegendOptions(chart.Legend{}), chart.KindLegend},
		{"title", GetTitleOptions(chart.Title{}), chart.KindTitle},
		{"chart", GetChartOptions(chart.Chart{}), chart.KindChart},
		{"tooltip", GetChartTooltipOptions(chart.ChartTooltip{}), chart.KindUnknown},
		{"popover", GetChartPopoverOptions(chart.ChartPopover{}), chart.KindUnknown},
		{"annotation", GetBarAnnotationOptions(chart.BarAnnotation{}), chart.KindUnknown},
		{"trendline", GetTrendlineOptions(chart.Trendline{}), chart.KindUnknown},
		{"metricRange", GetMetricRangeOptions(chart.MetricRange{}), chart.KindUnknown},
		{"referenceLine", GetReferenceLineOptions(chart.ReferenceLine{}), chart.KindUnknown},
		{"donutSummary", GetDonutSummaryOptions(chart.DonutSummary{}), chart.KindUnknown},
		{"segmentLabel", GetSegmentLabelOptions(chart.SegmentLabel{}), chart.KindUnknown},
		{"scatterPath", GetScatterPathOptions(chart.ScatterPath{}), chart.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMinimal(t, tt.options)

			if tt.markType != chart.KindUnknown {
				markType := reflect.ValueOf(tt.options).FieldByName("MarkType").Interface()
				assert.Equal(t, tt.markType, markType)
			}
		})
	}
}

func TestBarOptionsCopiesSetProps(t *testing.T) {
	o := GetBarOptions(chart.Bar{
		Metric: common.Ptr("people"),
		Color:  chart.StaticFacet("gray-800"),
	})

	assert.Equal(t, "people", *o.Metric)
	assert.True(t, o.Color.IsStatic())
	assert.Nil(t, o.Dimension)
	assert.Nil(t, o.Opacity)
}

func TestInteractionFlags(t *testing.T) {
	noop := func(chart.Datum) {}

	tests := []struct {
		name     string
		bar      chart.Bar
		click    bool
		mouseOut bool
	}{
		{"none", chart.Bar{}, false, false},
		{"click", chart.Bar{OnClick: noop}, true, false},
		{"over", chart.Bar{OnMouseOver: noop}, false, true},
		{"out", chart.Bar{OnMouseOut: noop}, false, true},
		{"all", chart.Bar{OnClick: noop, OnMouseOver: noop, OnMouseOut: noop}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := GetBarOptions(tt.bar)
			assert.Equal(t, tt.click, o.HasOnClick)
			assert.Equal(t, tt.mouseOut, o.HasMouseInteraction)
		})
	}
}

func TestChildrenPartitioning(t *testing.T) {
	t.Run("donut tooltip", func(t *testing.T) {
		o := GetDonutOptions(chart.Donut{Children: chart.Elements{chart.ChartTooltip{}}})

		assert.Len(t, o.ChartTooltips, 1)
		assert.Empty(t, o.ChartPopovers)
		assert.Empty(t, o.DonutSummaries)
		assert.Empty(t, o.SegmentLabels)
	})

	t.Run("bar children in document order", func(t *testing.T) {
		o := GetBarOptions(chart.Bar{Children: chart.Elements{
			chart.Trendline{Method: common.Ptr("average")},
			chart.BarAnnotation{TextKey: common.Ptr("label")},
			&chart.ChartPopover{Width: common.Ptr(100)},
			chart.Trendline{Method: common.Ptr("median")},
			chart.Legend{},
			chart.MetricRange{MetricStart: "lo", MetricEnd: "hi"},
			chart.Unknown{Tag: "sparkle"},
		}})

		require.Len(t, o.Trendlines, 2)
		assert.Equal(t, "average", *o.Trendlines[0].Method)
		assert.Equal(t, "median", *o.Trendlines[1].Method)
		assert.Len(t, o.BarAnnotations, 1)
		require.Len(t, o.ChartPopovers, 1)
		assert.Equal(t, 100, *o.ChartPopovers[0].Width)
		assert.Empty(t, o.ChartTooltips)
	})

	t.Run("line metric range", func(t *testing.T) {
		o := GetLineOptions(chart.Line{Children: chart.Elements{
			chart.MetricRange{MetricStart: "lo", MetricEnd: "hi"},
			chart.BarAnnotation{},
		}})

		require.Len(t, o.MetricRanges, 1)
		assert.Equal(t, "lo", *o.MetricRanges[0].MetricStart)
		assert.Empty(t, o.Trendlines)
	})

	t.Run("trendline tooltip", func(t *testing.T) {
		o := GetTrendlineOptions(chart.Trendline{Children: chart.Elements{chart.ChartTooltip{}, chart.ChartPopover{}}})
		assert.Len(t, o.ChartTooltips, 1)
	})

	t.Run("axis reference lines", func(t *testing.T) {
		o := GetAxisOptions(chart.Axis{Children: chart.Elements{chart.ReferenceLine{Value: 10}, chart.Trendline{}}})
		require.Len(t, o.ReferenceLines, 1)
		assert.Equal(t, 10, o.ReferenceLines[0].Value)
	})
}

func TestGetComboMarkName(t *testing.T) {
	assert.Equal(t, "bar1", GetComboMarkName(chart.Bar{Name: common.Ptr("bar1")}, "combo1", 1))
	assert.Equal(t, "combo1Line1", GetComboMarkName(chart.Line{}, "combo1", 1))
	assert.Equal(t, "combo1Bar0", GetComboMarkName(&chart.Bar{}, "combo1", 0))
}

func TestGetComboOptionsNamesChildren(t *testing.T) {
	o := GetComboOptions(chart.Combo{
		Children: chart.Elements{
			chart.Bar{Metric: common.Ptr("people")},
			chart.Line{Metric: common.Ptr("adoptionRate")},
			chart.Line{},
			chart.Axis{},
		},
	}, 2)

	require.Len(t, o.Marks, 3)
	assert.Nil(t, o.Name)
	assert.Equal(t, "combo2Bar0", *o.Marks[0].Bar.Name)
	assert.Equal(t, "combo2Line0", *o.Marks[1].Line.Name)
	assert.Equal(t, "combo2Line1", *o.Marks[2].Line.Name)
	assert.Equal(t, "people", *o.Marks[0].Bar.Metric)
}

func TestGetChartOptionsPartitionsChildren(t *testing.T) {
	o := GetChartOptions(chart.Chart{Children: chart.Elements{
		chart.Axis{},
		chart.Line{},
		chart.Legend{},
		chart.Bar{},
		chart.Title{Text: "Hello"},
		chart.Trendline{},
	}})

	require.Len(t, o.Marks, 2)
	assert.Equal(t, chart.KindLine, o.Marks[0].Kind())
	assert.Equal(t, chart.KindBar, o.Marks[1].Kind())
	assert.Len(t, o.Axes, 1)
	assert.Len(t, o.Legends, 1)
	require.Len(t, o.Titles, 1)
	assert.Equal(t, "Hello", o.Titles[0].Text)
}

func TestFindUnknownChildren(t *testing.T) {
	root := chart.Chart{Children: chart.Elements{
		chart.Bar{Children: chart.Elements{chart.ChartTooltip{}, chart.DonutSummary{}}},
		chart.Unknown{Tag: "sparkle"},
		chart.Bar{Children: chart.Elements{
			chart.Trendline{Children: chart.Elements{chart.Legend{}}},
		}},
	}}

	unknown := FindUnknownChildren(root)

	require.Len(t, unknown, 3)
	assert.Equal(t, "chart/bar[0]", unknown[0].Path)
	assert.Equal(t, chart.KindDonutSummary, unknown[0].Child.Kind())
	assert.Equal(t, "chart", unknown[1].Path)
	assert.Equal(t, "chart/bar[1]/trendline[0]", unknown[2].Path)
	assert.Equal(t, chart.KindTrendline, unknown[2].Parent)
}

func TestAcceptedTags(t *testing.T) {
	assert.Equal(t, []string{"bar", "line"}, AcceptedTags(chart.KindCombo))
	assert.Equal(t, []string{"tooltip"}, AcceptedTags(chart.KindTrendline))
	assert.Empty(t, AcceptedTags(chart.KindTitle))
}

func TestAcceptsChild(t *testing.T) {
	assert.True(t, AcceptsChild(chart.KindCombo, chart.KindLine))
	assert.False(t, AcceptsChild(chart.KindCombo, chart.KindArea))
	assert.False(t, AcceptsChild(chart.KindTitle, chart.KindChartTooltip))
	assert.True(t, AcceptsChild(chart.KindChart, chart.KindTitle))
}
