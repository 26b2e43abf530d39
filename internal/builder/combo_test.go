package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartspec/internal/common"
	"chartspec/internal/options"
)

func comboOf(dual bool, marks ...options.ComboMarkOptions) options.ComboSpecOptions {
	return options.ApplyComboDefaults(options.ComboOptions{
		DualMetricAxis: common.Ptr(dual),
		Marks:          marks,
	}, markCtx(0))
}

func barMetric(metric string) options.ComboMarkOptions {
	return options.ComboMarkOptions{Bar: &options.BarOptions{Metric: common.Ptr(metric)}}
}

func lineMetric(metric string) options.ComboMarkOptions {
	return options.ComboMarkOptions{Line: &options.LineOptions{Metric: common.Ptr(metric)}}
}

func TestComboMetricAxes(t *testing.T) {
	explicit := func(m options.ComboMarkOptions, axis string) options.ComboMarkOptions {
		if m.Bar != nil {
			m.Bar.MetricAxis = common.Ptr(axis)
		} else {
			m.Line.MetricAxis = common.Ptr(axis)
		}

		return m
	}

	tests := []struct {
		name  string
		combo options.ComboSpecOptions
		want  []string
	}{
		{
			name:  "different metrics get their own scale",
			combo: comboOf(false, barMetric("people"), lineMetric("adoptionRate")),
			want:  []string{"", "combo0Line0YLinear"},
		},
		{
			name:  "same metric shares the default scale",
			combo: comboOf(false, barMetric("value"), lineMetric("value")),
			want:  []string{"", ""},
		},
		{
			name:  "explicit metric axis is shared",
			combo: comboOf(false, explicit(barMetric("a"), "shared"), explicit(lineMetric("b"), "shared")),
			want:  []string{"shared", "shared"},
		},
		{
			name:  "dual metric axis",
			combo: comboOf(true, barMetric("people"), lineMetric("adoptionRate"), lineMetric("churn")),
			want:  []string{"yLinearPrimary", "yLinearSecondary", "yLinearSecondary"},
		},
		{
			name:  "empty",
			combo: comboOf(false),
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComboMetricAxes(tt.combo))
		})
	}
}

func TestAddCombo(t *testing.T) {
	spec := newSpec()
	defer dumpOnFailure(t, spec)

	AddCombo(spec, comboOf(false, barMetric("people"), lineMetric("adoptionRate")))

	assert.NotNil(t, spec.Mark("combo0Bar0"))
	assert.NotNil(t, spec.Mark("combo0Line0"))

	xBand := spec.Scale("xBand")
	require.NotNil(t, xBand)
	assert.Equal(t, []string{"datetime"}, xBand.Domain.Fields)
	assert.Nil(t, spec.Scale("xTime"))

	assert.Equal(t, []string{"people1"}, spec.Scale("yLinear").Domain.Fields)
	assert.Equal(t, []string{"adoptionRate"}, spec.Scale("combo0Line0YLinear").Domain.Fields)
	assert.Equal(t, ChannelY, ScaleChannel("combo0Line0YLinear"))

	line := spec.Mark("combo0Line0")
	assert.Equal(t, "xBand", line.Encode.Update["x"][0].Scale)
	assert.InDelta(t, 0.5, *line.Encode.Update["x"][0].Band, 1e-9)
	assert.Equal(t, "combo0Line0YLinear", line.Encode.Enter["y"][0].Scale)
}

func TestAddComboDualMetricAxis(t *testing.T) {
	spec := newSpec()
	defer dumpOnFailure(t, spec)

	AddCombo(spec, comboOf(true, barMetric("people"), lineMetric("adoptionRate")))

	assert.Equal(t, []string{"people1"}, spec.Scale("yLinearPrimary").Domain.Fields)
	assert.Equal(t, []string{"adoptionRate"}, spec.Scale("yLinearSecondary").Domain.Fields)
	assert.NotContains(t, dataNames(spec), "combo0Bar0_series")

	axis := options.ApplyAxisDefaults(options.AxisOptions{Position: common.Ptr("right")}, markCtx(0))
	name, found := ResolveAxisScale(spec, axis)
	assert.True(t, found)
	assert.Equal(t, "yLinearSecondary", name)
}
