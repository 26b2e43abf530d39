package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/locale"
	"chartspec/internal/palette"
)

func ctx(i int) MarkContext {
	return MarkContext{Index: i, ColorScheme: palette.Light}
}

func TestApplyBarDefaults(t *testing.T) {
	s := ApplyBarDefaults(BarOptions{}, ctx(1))

	assert.Equal(t, "bar1", s.Name)
	assert.Equal(t, DefaultCategoricalDimension, s.Dimension)
	assert.Equal(t, DefaultMetric, s.Metric)
	assert.Equal(t, DefaultColor, s.Color.Field())
	assert.False(t, s.Color.IsStatic())
	assert.Equal(t, "solid", s.LineType.Value())
	assert.InDelta(t, 1.0, s.Opacity.Value(), 1e-9)
	assert.InDelta(t, 0.0, s.LineWidth.Value(), 1e-9)
	assert.Equal(t, Vertical, s.Orientation)
	assert.Equal(t, Stacked, s.Type)
	assert.InDelta(t, 0.4, s.PaddingRatio, 1e-9)
	assert.InDelta(t, 0.2, s.PaddingOuter, 1e-9)
	assert.InDelta(t, 0.1, s.GroupedPadding, 1e-9)
	assert.NotNil(t, s.BarAnnotations)
	assert.NotNil(t, s.ChartPopovers)
	assert.NotNil(t, s.ChartTooltips)
	assert.NotNil(t, s.Trendlines)
}

func TestExplicitDefaultsResolveLikeUnset(t *testing.T) {
	t.Run("bar", func(t *testing.T) {
		explicit := BarOptions{
			Name:             common.Ptr("bar0"),
			Dimension:        common.Ptr(DefaultCategoricalDimension),
			Metric:           common.Ptr(DefaultMetric),
			Color:            chart.FieldFacet[string](DefaultColor),
			LineType:         chart.StaticFacet("solid"),
			Opacity:          chart.StaticFacet(1.0),
			LineWidth:        chart.StaticFacet(0.0),
			Orientation:      common.Ptr(string(Vertical)),
			Type:             common.Ptr(string(Stacked)),
			PaddingRatio:     common.Ptr(0.4),
			PaddingOuter:     common.Ptr(0.2),
			GroupedPadding:   common.Ptr(0.1),
			HasSquareCorners: common.Ptr(false),
			DualMetricAxis:   common.Ptr(false),
		}
		assert.Equal(t, ApplyBarDefaults(BarOptions{}, ctx(0)), ApplyBarDefaults(explicit, ctx(0)))
	})

	t.Run("line", func(t *testing.T) {
		explicit := LineOptions{
			Name:        common.Ptr("line0"),
			Dimension:   common.Ptr(DefaultTimeDimension),
			Metric:      common.Ptr(DefaultMetric),
			Color:       chart.FieldFacet[string](DefaultColor),
			LineWidth:   chart.StaticFacet(1.0),
			ScaleType:   common.Ptr(string(ScaleTime)),
			Interpolate: common.Ptr("linear"),
		}
		assert.Equal(t, ApplyLineDefaults(LineOptions{}, ctx(0)), ApplyLineDefaults(explicit, ctx(0)))
	})

	t.Run("axis", func(t *testing.T) {
		explicit := AxisOptions{
			Position:    common.Ptr("bottom"),
			Granularity: common.Ptr("day"),
			LabelAlign:  common.Ptr("center"),
		}
		assert.Equal(t, ApplyAxisDefaults(AxisOptions{}, ctx(0)), ApplyAxisDefaults(explicit, ctx(0)))
	})

	t.Run("trendline", func(t *testing.T) {
		parent := ApplyLineDefaults(LineOptions{}, ctx(0)).Parent()
		explicit := TrendlineOptions{
			Method:    common.Ptr("linear"),
			LineType:  chart.StaticFacet("dashed"),
			LineWidth: chart.StaticFacet(1.5),
		}
		assert.Equal(t, ApplyTrendlineDefaults(TrendlineOptions{}, parent, 0), ApplyTrendlineDefaults(explicit, parent, 0))
	})
}

func TestApplyDefaultsDoesNotMutateInput(t *testing.T) {
	in := BarOptions{
		Trendlines: []TrendlineOptions{{}},
	}
	_ = ApplyBarDefaults(in, ctx(0))

	assert.Nil(t, in.Name)
	assert.Nil(t, in.Trendlines[0].Name)

	combo := ComboOptions{Marks: []ComboMarkOptions{{Bar: &BarOptions{}}}}
	_ = ApplyComboDefaults(combo, ctx(0))

	assert.Nil(t, combo.Marks[0].Bar.Dimension)
	assert.Nil(t, combo.Marks[0].Bar.Name)
}

func TestDecorationNames(t *testing.T) {
	s := ApplyLineDefaults(LineOptions{
		Trendlines:    []TrendlineOptions{{}, {Name: common.Ptr("custom")}},
		MetricRanges:  []MetricRangeOptions{{}, {}},
		ChartTooltips: []ChartTooltipOptions{{}},
		ChartPopovers: []ChartPopoverOptions{{}},
	}, ctx(0))

	require.Len(t, s.Trendlines, 2)
	assert.Equal(t, "line0Trendline0", s.Trendlines[0].Name)
	assert.Equal(t, "custom", s.Trendlines[1].Name)
	assert.Equal(t, "line0MetricRange1", s.MetricRanges[1].Name)
	assert.Equal(t, "line0Tooltip0", s.ChartTooltips[0].Name)
	assert.Equal(t, 250, s.ChartPopovers[0].Width)
}

func TestDecorationsInheritParent(t *testing.T) {
	s := ApplyBarDefaults(BarOptions{
		Metric:         common.Ptr("people"),
		Color:          chart.FieldFacet[string]("country"),
		BarAnnotations: []BarAnnotationOptions{{}},
		Trendlines:     []TrendlineOptions{{}, {Color: common.Ptr("gray-800")}},
	}, ctx(0))

	assert.Equal(t, "people", s.BarAnnotations[0].TextKey)
	assert.Equal(t, "country", s.Trendlines[0].Color.Field())
	assert.True(t, s.Trendlines[1].Color.IsStatic())
	assert.Equal(t, "gray-800", s.Trendlines[1].Color.Value())
	assert.Equal(t, "people", s.Trendlines[0].Parent.Metric)
}

func TestParseTrendlineMethod(t *testing.T) {
	tests := []struct {
		method   string
		expected TrendlineMethod
	}{
		{"linear", TrendlineMethod{Kind: MethodRegression, Name: "linear"}},
		{"exponential", TrendlineMethod{Kind: MethodRegression, Name: "exp"}},
		{"logarithmic", TrendlineMethod{Kind: MethodRegression, Name: "log"}},
		{"power", TrendlineMethod{Kind: MethodRegression, Name: "pow"}},
		{"quadratic", TrendlineMethod{Kind: MethodRegression, Name: "quad", Order: 2}},
		{"polynomial-4", TrendlineMethod{Kind: MethodRegression, Name: "poly", Order: 4}},
		{"polynomial", TrendlineMethod{Kind: MethodRegression, Name: "poly", Order: 2}},
		{"average", TrendlineMethod{Kind: MethodAggregate, Name: "mean"}},
		{"median", TrendlineMethod{Kind: MethodAggregate, Name: "median"}},
		{"movingAverage-7", TrendlineMethod{Kind: MethodWindow, Name: "mean", Order: 7}},
		{"bogus", TrendlineMethod{Kind: MethodRegression, Name: "linear"}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTrendlineMethod(tt.method))
		})
	}
}

func TestApplyComboDefaults(t *testing.T) {
	s := ApplyComboDefaults(ComboOptions{
		Name: common.Ptr("combo1"),
		Marks: []ComboMarkOptions{
			{Bar: &BarOptions{Metric: common.Ptr("people")}},
			{Line: &LineOptions{Metric: common.Ptr("adoptionRate")}},
			{Line: &LineOptions{Name: common.Ptr("explicit"), Dimension: common.Ptr("week")}},
		},
	}, ctx(0))

	require.Len(t, s.Marks, 3)
	assert.Equal(t, "combo1Bar0", s.Marks[0].Name())
	assert.Equal(t, "combo1Line0", s.Marks[1].Name())
	assert.Equal(t, "explicit", s.Marks[2].Name())

	assert.Equal(t, DefaultTimeDimension, s.Marks[0].Bar.Dimension)
	assert.Equal(t, DefaultTimeDimension, s.Marks[1].Line.Dimension)
	assert.Equal(t, "week", s.Marks[2].Line.Dimension)

	assert.Equal(t, ScaleBand, s.Marks[1].Line.ScaleType)
	assert.Equal(t, "adoptionRate", s.Marks[1].Metric())
}

func TestApplyComboDefaultsLinesOnly(t *testing.T) {
	s := ApplyComboDefaults(ComboOptions{
		Dimension: common.Ptr("month"),
		Marks:     []ComboMarkOptions{{Line: &LineOptions{}}},
	}, ctx(2))

	assert.Equal(t, "combo2", s.Name)
	assert.Equal(t, "combo2Line0", s.Marks[0].Name())
	assert.Equal(t, "month", s.Marks[0].Line.Dimension)
	assert.Equal(t, ScaleTime, s.Marks[0].Line.ScaleType)
}

func TestApplySunburstDefaultsChainsKeys(t *testing.T) {
	s := ApplySunburstDefaults(SunburstOptions{ID: common.Ptr("node")}, ctx(0))

	assert.Equal(t, "node", s.SegmentKey)
	assert.Equal(t, "node", s.Color)
	assert.Equal(t, "parent", s.ParentKey)
}

func TestApplyBulletDefaults(t *testing.T) {
	s := ApplyBulletDefaults(BulletOptions{
		Thresholds: []chart.Threshold{{ThresholdMax: common.Ptr(50.0), Fill: "red-700"}},
	}, ctx(0))

	assert.Equal(t, "bullet0", s.Name)
	assert.Equal(t, "currentAmount", s.Metric)
	assert.Equal(t, "graphLabel", s.Dimension)
	assert.Equal(t, "target", s.Target)
	assert.True(t, s.ShowTarget)
	assert.Equal(t, BulletScaleNormal, s.ScaleType)
	require.Len(t, s.Thresholds, 1)
	assert.Nil(t, s.Thresholds[0].Min)
}

func TestApplyChartDefaults(t *testing.T) {
	s := ApplyChartDefaults(ChartOptions{})

	assert.Equal(t, 600, s.Width)
	assert.Equal(t, 400, s.Height)
	assert.Equal(t, palette.Light, s.ColorScheme)
	assert.Equal(t, palette.Categorical, s.Colors)
	assert.Equal(t, locale.Code(locale.DefaultCode), s.Locale)
	assert.NotNil(t, s.HiddenSeries)

	custom := ApplyChartDefaults(ChartOptions{Locale: common.Ptr(locale.Code("fr-FR")), Colors: []string{"red-700"}})
	assert.Equal(t, "fr-FR", custom.Locale.Code)
	assert.Equal(t, []string{"red-700"}, custom.Colors)
}

func TestApplyTitleAndLegendDefaults(t *testing.T) {
	title := ApplyTitleDefaults(TitleOptions{Text: "Sales"})
	assert.Equal(t, TitleSpecOptions{Text: "Sales", FontWeight: "bold", Position: "middle", Orient: Top}, title)

	legend := ApplyLegendDefaults(LegendOptions{}, ctx(0))
	assert.Equal(t, "legend0", legend.Name)
	assert.Equal(t, Bottom, legend.Position)
	assert.Nil(t, legend.Color)
	assert.NotNil(t, legend.Keys)
}
