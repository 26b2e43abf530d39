package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

func axisAt(position string) options.AxisSpecOptions {
	return options.ApplyAxisDefaults(options.AxisOptions{Position: common.Ptr(position)}, markCtx(0))
}

func TestResolveAxisScale(t *testing.T) {
	spec := newSpec()
	AddBandScale(spec, ChannelX, "browser", 0.4, 0.2)
	AddMetricScale(spec, "yLinear", ChannelY, "value")
	AddDualMetricScales(spec, "yLinear", ChannelY)
	AddMetricScale(spec, "axis0", ChannelY, "custom")
	AddMetricScale(spec, "timeline", ChannelX, "date")

	tests := []struct {
		name      string
		axis      options.AxisSpecOptions
		want      string
		wantFound bool
	}{
		{"scale named like the axis", axisAt("left"), "axis0", true},
		{"dual primary on the left", func() options.AxisSpecOptions {
			a := axisAt("left")
			a.Name = "left"
			return a
		}(), "yLinearPrimary", true},
		{"named scale wins on the right", axisAt("right"), "axis0", true},
		{"first scale on the channel", axisAt("bottom"), "xBand", true},
		{"named scale on the wrong channel", axisAt("top"), "xBand", true},
		{"named x scale at the bottom", func() options.AxisSpecOptions {
			a := axisAt("bottom")
			a.Name = "timeline"
			return a
		}(), "timeline", true},
		{"named x scale skipped on the left", func() options.AxisSpecOptions {
			a := axisAt("left")
			a.Name = "timeline"
			return a
		}(), "yLinearPrimary", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ResolveAxisScale(spec, tt.axis)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("secondary", func(t *testing.T) {
		a := axisAt("right")
		a.Name = "right"

		got, found := ResolveAxisScale(spec, a)
		assert.True(t, found)
		assert.Equal(t, "yLinearSecondary", got)
	})

	t.Run("missing scale", func(t *testing.T) {
		got, found := ResolveAxisScale(newSpec(), axisAt("left"))
		assert.False(t, found)
		assert.Equal(t, "yLinear", got)
	})
}

func TestAddAxis(t *testing.T) {
	t.Run("creates a default scale", func(t *testing.T) {
		spec := newSpec()
		AddAxis(spec, axisAt("left"))

		require.Len(t, spec.Axes, 1)
		assert.Equal(t, "yLinear", spec.Axes[0].Scale)
		assert.Equal(t, "left", spec.Axes[0].Orient)
		assert.NotNil(t, spec.Scale("yLinear"))
	})

	t.Run("range pins the domain", func(t *testing.T) {
		spec := newSpec()
		AddMetricScale(spec, "yLinear", ChannelY, "value")

		axis := options.ApplyAxisDefaults(options.AxisOptions{
			Position: common.Ptr("left"),
			Range:    []float64{0, 100},
		}, markCtx(0))
		AddAxis(spec, axis)

		assert.Equal(t, []any{0.0, 100.0}, spec.Scale("yLinear").Domain.Values)
	})

	t.Run("time axis adds a context axis", func(t *testing.T) {
		spec := newSpec()
		AddLine(spec, options.ApplyLineDefaults(options.LineOptions{}, markCtx(0)))

		AddAxis(spec, options.ApplyAxisDefaults(options.AxisOptions{Granularity: common.Ptr("month")}, markCtx(0)))

		require.Len(t, spec.Axes, 2)
		assert.Equal(t, "xTime", spec.Axes[0].Scale)
		assert.Equal(t, "%b", spec.Axes[0].Format)
		assert.Equal(t, "axis0_secondary", spec.Axes[1].Name)
		assert.Equal(t, "%Y", spec.Axes[1].Format)
	})

	t.Run("label formats", func(t *testing.T) {
		tests := []struct {
			name string
			axis options.AxisOptions
			want string
		}{
			{"percentage", options.AxisOptions{LabelFormat: common.Ptr("percentage")}, "format(datum.value, '~%')"},
			{"currency", options.AxisOptions{NumberFormat: common.Ptr("currency"), CurrencyCode: common.Ptr("EUR")}, "'€' + format(datum.value, ',.2f')"},
			{"short number", options.AxisOptions{NumberFormat: common.Ptr("shortNumber")}, "upper(replace(format(datum.value, '.3~s'), 'G', 'B'))"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				spec := newSpec()
				tt.axis.Position = common.Ptr("left")
				AddAxis(spec, options.ApplyAxisDefaults(tt.axis, markCtx(0)))

				labels := spec.Axes[0].Encode["labels"]
				require.NotNil(t, labels)
				assert.Equal(t, tt.want, labels.Update["text"][0].Signal)
			})
		}
	})

	t.Run("baseline and reference lines", func(t *testing.T) {
		spec := newSpec()
		AddBar(spec, options.ApplyBarDefaults(options.BarOptions{}, markCtx(0)))

		AddAxis(spec, options.ApplyAxisDefaults(options.AxisOptions{
			Baseline: common.Ptr(true),
			ReferenceLines: []options.ReferenceLineOptions{
				{Value: "Chrome", Label: common.Ptr("Most used")},
				{Value: "Safari", Position: common.Ptr("after")},
			},
		}, markCtx(0)))

		assert.NotNil(t, spec.Mark("axis0_baseline"))

		center := spec.Mark("axis0ReferenceLine0")
		require.NotNil(t, center)
		assert.InDelta(t, 0.5, *center.Encode.Update["x"][0].Band, 1e-9)
		assert.Equal(t, "xBand", center.Encode.Update["x"][0].Scale)
		assert.NotNil(t, spec.Mark("axis0ReferenceLine0_label"))

		after := spec.Mark("axis0ReferenceLine1")
		require.NotNil(t, after)
		assert.InDelta(t, 1.0, *after.Encode.Update["x"][0].Band, 1e-9)
		assert.Nil(t, spec.Mark("axis0ReferenceLine1_label"))
	})
}

func legendWith(o options.LegendOptions) options.LegendSpecOptions {
	return options.ApplyLegendDefaults(o, markCtx(0))
}

func barSpec(t *testing.T) *vega.Spec {
	t.Helper()

	spec := newSpec()
	AddBar(spec, options.ApplyBarDefaults(options.BarOptions{}, markCtx(0)))

	return spec
}

func TestAddLegend(t *testing.T) {
	t.Run("facets come from the facet scales", func(t *testing.T) {
		spec := barSpec(t)
		AddLegend(spec, legendWith(options.LegendOptions{}))

		require.Len(t, spec.Legends, 1)
		legend := spec.Legends[0]
		assert.Equal(t, vega.ColorScale, legend.Fill)
		assert.Empty(t, legend.StrokeDash)
		assert.Equal(t, "bottom", legend.Orient)
		assert.Equal(t, "horizontal", legend.Direction)
		assert.Equal(t, LegendEntryName("legend0"), legend.Encode["entries"].Name)
	})

	t.Run("highlight dims other series", func(t *testing.T) {
		spec := barSpec(t)
		defer dumpOnFailure(t, spec)

		AddLegend(spec, legendWith(options.LegendOptions{Highlight: common.Ptr(true)}))

		assert.Contains(t, eventNames(spec.Signal(vega.HighlightedSeriesSignal)), "@legend0_legendEntry:mouseover")
		assert.Equal(t, GetHighlightOpacityRule(nil, ""), spec.Mark("bar0").Encode.Update["opacity"][0])
		assert.True(t, *spec.Legends[0].Encode["entries"].Interactive)
	})

	t.Run("keys highlight groups", func(t *testing.T) {
		spec := barSpec(t)
		defer dumpOnFailure(t, spec)

		AddLegend(spec, legendWith(options.LegendOptions{
			Keys:      []string{"browser", "os"},
			Highlight: common.Ptr(true),
		}))

		assert.Contains(t, dataNames(spec), "legend0Aggregate")
		require.NotNil(t, spec.Scale("legend0Entries"))
		assert.Equal(t, "legend0Entries", spec.Legends[0].Fill)

		table := spec.DataSource(vega.TableData)
		last := table.Transform[len(table.Transform)-1]
		assert.Equal(t, HighlightGroupIDField("legend0"), last.As)
		assert.Equal(t, "datum.browser + ' | ' + datum.os", last.Expr)

		assert.Contains(t, eventNames(spec.Signal(vega.HighlightedGroupSignal)), "@legend0_legendEntry:mouseover")
		assert.Equal(t, GetHighlightOpacityRule([]string{"browser"}, "legend0"), spec.Mark("bar0").Encode.Update["opacity"][0])
	})

	t.Run("hidden entries", func(t *testing.T) {
		spec := barSpec(t)
		AddLegend(spec, legendWith(options.LegendOptions{HiddenEntries: []string{"Other"}}))

		data := spec.DataSource("legend0Aggregate")
		require.NotNil(t, data)
		assert.Equal(t, "indexof(['Other'], datum.legend0_highlightGroupId) === -1", data.Transform[2].Expr)
		assert.Equal(t, map[string]string{"signal": "pluck(data('legend0Aggregate'), 'legend0_highlightGroupId')"}, spec.Legends[0].Values)
	})

	t.Run("toggleable", func(t *testing.T) {
		spec := barSpec(t)
		AddLegend(spec, legendWith(options.LegendOptions{IsToggleable: common.Ptr(true)}))

		hidden := spec.DataSource("legend0_hiddenEntries")
		require.NotNil(t, hidden)
		assert.Equal(t, []vega.Trigger{{Trigger: "legend0_toggledEntry", Toggle: "legend0_toggledEntry"}}, hidden.On)
		assert.Equal(t, "pluck(data('legend0_hiddenEntries'), 'value')", spec.Signal(vega.HiddenSeriesSignal).Update)
		assert.Contains(t, eventNames(spec.Signal("legend0_toggledEntry")), "@legend0_legendEntry:click")
	})

	t.Run("labels and descriptions", func(t *testing.T) {
		spec := barSpec(t)
		AddLegend(spec, legendWith(options.LegendOptions{
			LegendLabels: []chart.LegendLabel{{SeriesName: "Chrome", Label: "Google Chrome"}},
			Descriptions: []chart.LegendDescription{{SeriesName: "Chrome", Description: "Most used"}},
		}))

		legend := spec.Legends[0]
		text := legend.Encode["labels"].Update["text"]
		require.Len(t, text, 2)
		assert.Equal(t, "datum.value === 'Chrome'", text[0].Test)
		assert.Equal(t, "Google Chrome", text[0].Value)

		tooltip := legend.Encode["entries"].Update["tooltip"]
		require.Len(t, tooltip, 2)
		assert.Equal(t, map[string]string{"description": "Most used"}, tooltip[0].Value)
	})
}

func TestAddTitle(t *testing.T) {
	spec := newSpec()
	AddTitle(spec, options.ApplyTitleDefaults(options.TitleOptions{Text: "Browser usage"}))

	require.NotNil(t, spec.Title)
	assert.Equal(t, vega.Title{Text: "Browser usage", Orient: "top", Anchor: "middle", FontWeight: "bold"}, *spec.Title)
}
