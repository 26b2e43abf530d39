package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/options"
	"chartspec/internal/palette"
	"chartspec/internal/vega"
)

func markCtx(i int) options.MarkContext {
	return options.MarkContext{Index: i, ColorScheme: palette.Light}
}

func transformTypes(d *vega.Data) []string {
	types := make([]string, len(d.Transform))
	for i, t := range d.Transform {
		types[i] = t.Type
	}

	return types
}

func eventNames(s *vega.Signal) []string {
	names := make([]string, len(s.On))
	for i, e := range s.On {
		names[i] = e.Events
	}

	return names
}

func TestAddBar(t *testing.T) {
	t.Run("stacked", func(t *testing.T) {
		spec := newSpec()
		defer dumpOnFailure(t, spec)

		AddBar(spec, options.ApplyBarDefaults(options.BarOptions{}, markCtx(0)))

		filtered := spec.DataSource(vega.FilteredTableData)
		require.Len(t, filtered.Transform, 1)
		assert.Equal(t, "stack", filtered.Transform[0].Type)
		assert.Equal(t, []string{"value0", "value1"}, filtered.Transform[0].As)

		assert.Equal(t, []string{"category"}, spec.Scale("xBand").Domain.Fields)
		assert.Equal(t, []string{"value1"}, spec.Scale("yLinear").Domain.Fields)
		assert.Equal(t, []string{"series"}, spec.Scale(vega.ColorScale).Domain.Fields)

		group := spec.Mark("bar0_group")
		require.NotNil(t, group)
		assert.Equal(t, []string{"bar0"}, vega.MarkNames(group.Marks))
		assert.Equal(t, vega.Rule(vega.Value(6.0)), spec.Mark("bar0").Encode.Update["cornerRadiusTopLeft"])
	})

	t.Run("dodged", func(t *testing.T) {
		spec := newSpec()
		defer dumpOnFailure(t, spec)

		AddBar(spec, options.ApplyBarDefaults(options.BarOptions{Type: common.Ptr("dodged")}, markCtx(0)))

		assert.Empty(t, spec.DataSource(vega.FilteredTableData).Transform)
		assert.Equal(t, []string{"value"}, spec.Scale("yLinear").Domain.Fields)

		group := spec.Mark("bar0_group")
		require.NotNil(t, group)
		require.Len(t, group.Scales, 1)
		assert.Equal(t, DodgedPositionScale("bar0"), group.Scales[0].Name)
		assert.Equal(t, []string{"category"}, group.From.Facet.Groupby)
	})

	t.Run("horizontal swaps channels", func(t *testing.T) {
		spec := newSpec()
		AddBar(spec, options.ApplyBarDefaults(options.BarOptions{Orientation: common.Ptr("horizontal")}, markCtx(0)))

		assert.NotNil(t, spec.Scale("yBand"))
		assert.NotNil(t, spec.Scale("xLinear"))
		assert.Nil(t, spec.Scale("xBand"))
	})

	t.Run("square corners", func(t *testing.T) {
		spec := newSpec()
		AddBar(spec, options.ApplyBarDefaults(options.BarOptions{HasSquareCorners: common.Ptr(true)}, markCtx(0)))

		assert.Equal(t, vega.Rule(vega.Value(0.0)), spec.Mark("bar0").Encode.Update["cornerRadiusTopLeft"])
	})

	t.Run("dual metric axis", func(t *testing.T) {
		spec := newSpec()
		defer dumpOnFailure(t, spec)

		AddBar(spec, options.ApplyBarDefaults(options.BarOptions{DualMetricAxis: common.Ptr(true)}, markCtx(0)))

		assert.Subset(t, dataNames(spec), []string{"bar0_series", "bar0_primaryData", "bar0_secondaryData"})
		assert.Contains(t, signalNames(spec), "bar0_firstRscSeriesId")
		assert.NotContains(t, signalNames(spec), "yLinearPrimaryDomain")
		assert.Equal(t, "yLinearPrimaryDomain", spec.Scale("yLinearPrimary").Domain.Signal)
		assert.Equal(t, "yLinearSecondaryDomain", spec.Scale("yLinearSecondary").Domain.Signal)
		assert.Nil(t, spec.Scale("yLinear"))

		primary := spec.DataSource("bar0_primaryData")
		assert.Equal(t, "yLinearPrimaryDomain", primary.Transform[len(primary.Transform)-1].Signal)
	})
}

func TestAddBarInteraction(t *testing.T) {
	t.Run("tooltip highlights the item", func(t *testing.T) {
		spec := newSpec()
		defer dumpOnFailure(t, spec)

		AddBar(spec, options.ApplyBarDefaults(options.BarOptions{
			ChartTooltips: []options.ChartTooltipOptions{{ExcludeDataKeys: []string{"excludeFromTooltip"}}},
		}, markCtx(0)))

		bar := spec.Mark("bar0")
		require.NotNil(t, bar)
		assert.True(t, *bar.Interactive)

		tooltip := bar.Encode.Update["tooltip"]
		require.Len(t, tooltip, 2)
		assert.Equal(t, "datum.excludeFromTooltip", tooltip[0].Test)
		assert.Equal(t, "datum", tooltip[1].Signal)

		assert.Equal(t, []string{"@bar0:mouseover", "@bar0:mouseout"}, eventNames(spec.Signal(vega.HighlightedItemSignal)))
		assert.Equal(t, GetHighlightedItemOpacityRule(), bar.Encode.Update["opacity"][0])
	})

	t.Run("popover selects the item", func(t *testing.T) {
		spec := newSpec()
		defer dumpOnFailure(t, spec)

		AddBar(spec, options.ApplyBarDefaults(options.BarOptions{
			ChartPopovers: []options.ChartPopoverOptions{{}},
		}, markCtx(0)))

		bar := spec.Mark("bar0")
		assert.Equal(t, GetCursor(true), bar.Encode.Update["cursor"])
		assert.Contains(t, eventNames(spec.Signal(vega.SelectedItemSignal)), "@bar0:click")

		popovers, ok := spec.Usermeta["popovers"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, popovers, 1)
		assert.Equal(t, "bar0Popover0", popovers[0]["name"])
		assert.Equal(t, 250, popovers[0]["width"])
	})

	t.Run("static bar is not interactive", func(t *testing.T) {
		spec := newSpec()
		AddBar(spec, options.ApplyBarDefaults(options.BarOptions{}, markCtx(0)))

		assert.Nil(t, spec.Mark("bar0").Interactive)
		assert.Empty(t, spec.Signal(vega.HighlightedItemSignal).On)
	})
}

func TestAddBarDecorations(t *testing.T) {
	spec := newSpec()
	defer dumpOnFailure(t, spec)

	AddBar(spec, options.ApplyBarDefaults(options.BarOptions{
		BarAnnotations: []options.BarAnnotationOptions{{}},
		Trendlines:     []options.TrendlineOptions{{Method: common.Ptr("average")}},
	}, markCtx(0)))

	assert.NotNil(t, spec.Mark("bar0Annotation0_text"))
	assert.NotNil(t, spec.Mark("bar0Annotation0_background"))

	data := spec.DataSource("bar0Trendline0_data")
	require.NotNil(t, data)
	assert.Equal(t, vega.FilteredTableData, data.Source)
	assert.NotNil(t, spec.Mark("bar0Trendline0"))
	assert.NotNil(t, spec.Mark("bar0Trendline0_group"))
}

func TestAddLine(t *testing.T) {
	t.Run("time dimension", func(t *testing.T) {
		spec := newSpec()
		defer dumpOnFailure(t, spec)

		AddLine(spec, options.ApplyLineDefaults(options.LineOptions{}, markCtx(0)))

		table := spec.DataSource(vega.TableData)
		assert.Equal(t, []string{"identifier", "timeunit"}, transformTypes(table))
		assert.Equal(t, []string{"datetime0"}, spec.Scale("xTime").Domain.Fields)
		assert.Equal(t, []string{"value"}, spec.Scale("yLinear").Domain.Fields)

		group := spec.Mark("line0_group")
		require.NotNil(t, group)
		assert.Equal(t, []string{"series"}, group.From.Facet.Groupby)
		assert.Nil(t, spec.Mark("line0_voronoi"))
	})

	t.Run("interactive line adds hover marks", func(t *testing.T) {
		spec := newSpec()
		defer dumpOnFailure(t, spec)

		AddLine(spec, options.ApplyLineDefaults(options.LineOptions{
			ChartTooltips: []options.ChartTooltipOptions{{}},
		}, markCtx(0)))

		voronoi := spec.Mark("line0_voronoi")
		require.NotNil(t, voronoi)
		assert.Equal(t, "line0_pointsForVoronoi", voronoi.From.Data)
		assert.Equal(t, "datum.datum", voronoi.Encode.Update["tooltip"][0].Signal)
		assert.NotNil(t, spec.Mark("line0_point"))
		assert.Contains(t, eventNames(spec.Signal(vega.HighlightedItemSignal)), "@line0_voronoi:mouseover")
	})

	t.Run("metric range fitted to the axis", func(t *testing.T) {
		spec := newSpec()
		defer dumpOnFailure(t, spec)

		AddLine(spec, options.ApplyLineDefaults(options.LineOptions{
			MetricRanges: []options.MetricRangeOptions{{
				MetricStart:    common.Ptr("low"),
				MetricEnd:      common.Ptr("high"),
				ScaleAxisToFit: common.Ptr(true),
			}},
		}, markCtx(0)))

		assert.Equal(t, []string{"value", "low", "high"}, spec.Scale("yLinear").Domain.Fields)
		assert.Equal(t,
			[]string{"line0MetricRange0_area", "line0MetricRange0_startLine", "line0MetricRange0_endLine", "line0"},
			vega.MarkNames(spec.Mark("line0_group").Marks))
	})

	t.Run("static points", func(t *testing.T) {
		spec := newSpec()
		AddLine(spec, options.ApplyLineDefaults(options.LineOptions{StaticPoint: common.Ptr("point")}, markCtx(0)))

		assert.NotNil(t, spec.DataSource("line0_staticPointData"))
		assert.NotNil(t, spec.Mark("line0_staticPoints"))
	})
}

func TestAddArea(t *testing.T) {
	t.Run("stacked", func(t *testing.T) {
		spec := newSpec()
		defer dumpOnFailure(t, spec)

		AddArea(spec, options.ApplyAreaDefaults(options.AreaOptions{}, markCtx(0)))

		assert.Equal(t, []string{"stack"}, transformTypes(spec.DataSource(vega.FilteredTableData)))
		assert.Equal(t, []string{"value0", "value1"}, spec.Scale("yLinear").Domain.Fields)
		assert.Equal(t, []string{"area0"}, vega.MarkNames(spec.Mark("area0_group").Marks))
	})

	t.Run("explicit bounds", func(t *testing.T) {
		spec := newSpec()
		AddArea(spec, options.ApplyAreaDefaults(options.AreaOptions{
			MetricStart: common.Ptr("low"),
			MetricEnd:   common.Ptr("high"),
		}, markCtx(0)))

		assert.Empty(t, spec.DataSource(vega.FilteredTableData).Transform)
		assert.Equal(t, []string{"low", "high"}, spec.Scale("yLinear").Domain.Fields)
	})
}

func TestAddScatter(t *testing.T) {
	spec := newSpec()
	defer dumpOnFailure(t, spec)

	AddScatter(spec, options.ApplyScatterDefaults(options.ScatterOptions{
		Dimension:    common.Ptr("speed"),
		Metric:       common.Ptr("power"),
		Color:        chart.FieldFacet[string]("model"),
		Size:         chart.FieldFacet[float64]("weight"),
		ScatterPaths: []options.ScatterPathOptions{{GroupBy: []string{"model"}}},
	}, markCtx(0)))

	assert.Equal(t, []string{"speed"}, spec.Scale("xLinear").Domain.Fields)
	assert.Equal(t, []string{"power"}, spec.Scale("yLinear").Domain.Fields)
	assert.Equal(t, []string{"weight"}, spec.Scale(vega.SymbolSizeScale).Domain.Fields)
	assert.Equal(t, []string{"model"}, spec.Scale(vega.ColorScale).Domain.Fields)

	names := vega.MarkNames(spec.Marks)
	assert.Equal(t, []string{"scatter0Path0_group", "scatter0Path0", "scatter0"}, names)
	assert.Equal(t, vega.MarkTrail, spec.Mark("scatter0Path0").Type)
}

func TestAddDonut(t *testing.T) {
	spec := newSpec()
	defer dumpOnFailure(t, spec)

	AddDonut(spec, options.ApplyDonutDefaults(options.DonutOptions{
		DonutSummaries: []options.DonutSummaryOptions{{Label: common.Ptr("Visitors")}},
		SegmentLabels:  []options.SegmentLabelOptions{{Percent: common.Ptr(true)}},
	}, markCtx(0)))

	filtered := spec.DataSource(vega.FilteredTableData)
	require.Len(t, filtered.Transform, 1)
	assert.Equal(t, "pie", filtered.Transform[0].Type)
	assert.Equal(t, []string{"donut0_startAngle", "donut0_endAngle"}, filtered.Transform[0].As)

	assert.Contains(t, signalNames(spec), "donut0_radius")
	assert.Contains(t, dataNames(spec), "donut0_aggregate")
	assert.Equal(t,
		[]string{"donut0", "donut0Summary_value", "donut0Summary_label", "donut0SegmentLabel", "donut0SegmentLabel_value"},
		vega.MarkNames(spec.Marks))
}

func TestAddBullet(t *testing.T) {
	tests := []struct {
		scaleType string
		check     func(t *testing.T, s *vega.Scale, spec *vega.Spec)
	}{
		{options.BulletScaleNormal, func(t *testing.T, s *vega.Scale, _ *vega.Spec) {
			assert.Equal(t, []string{"currentAmount", "target"}, s.Domain.Fields)
		}},
		{options.BulletScaleFixed, func(t *testing.T, s *vega.Scale, _ *vega.Spec) {
			assert.Equal(t, []any{0, 100.0}, s.Domain.Values)
		}},
		{options.BulletScaleFlexible, func(t *testing.T, s *vega.Scale, spec *vega.Spec) {
			assert.Equal(t, "[0, max(bullet0_maxValue, 100)]", s.Domain.Signal)
			assert.Contains(t, signalNames(spec), "bullet0_maxValue")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.scaleType, func(t *testing.T) {
			spec := newSpec()
			defer dumpOnFailure(t, spec)

			AddBullet(spec, options.ApplyBulletDefaults(options.BulletOptions{ScaleType: common.Ptr(tt.scaleType)}, markCtx(0)))

			s := spec.Scale(BulletScaleName("bullet0"))
			require.NotNil(t, s)
			tt.check(t, s, spec)

			group := spec.Mark("bullet0_group")
			require.NotNil(t, group)
			assert.Equal(t, []string{"bullet0_rect", "bullet0_target", "bullet0_label", "bullet0_valueLabel"}, vega.MarkNames(group.Marks))
		})
	}
}

func TestAddBulletThresholds(t *testing.T) {
	spec := newSpec()

	AddBullet(spec, options.ApplyBulletDefaults(options.BulletOptions{
		Thresholds: []chart.Threshold{{ThresholdMax: common.Ptr(50.0), Fill: "red-500"}, {ThresholdMin: common.Ptr(50.0), Fill: "green-500"}},
		Track:      common.Ptr(true),
	}, markCtx(0)))

	assert.Contains(t, dataNames(spec), "bullet0_thresholds")
	assert.Equal(t,
		[]string{"bullet0_track", "bullet0_thresholdRect", "bullet0_rect", "bullet0_target", "bullet0_label", "bullet0_valueLabel"},
		vega.MarkNames(spec.Mark("bullet0_group").Marks))
}

func TestAddSunburst(t *testing.T) {
	spec := newSpec()
	AddSunburst(spec, options.ApplySunburstDefaults(options.SunburstOptions{}, markCtx(0)))

	data := spec.DataSource("sunburst0_data")
	require.NotNil(t, data)
	assert.Equal(t, []string{"stratify", "partition"}, transformTypes(data))
	assert.Equal(t, "id", data.Transform[0].Key)
	assert.Equal(t, "parent", data.Transform[0].ParentKey)
	assert.Equal(t, []string{"id"}, spec.Scale(vega.ColorScale).Domain.Fields)
	assert.Equal(t, vega.MarkArc, spec.Mark("sunburst0").Type)
}
