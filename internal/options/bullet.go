package options

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/palette"
)

// Bullet layout and scale modes.
const (
	BulletColumn = "column"
	BulletRow    = "row"

	BulletLabelTop  = "top"
	BulletLabelSide = "side"

	BulletScaleNormal   = "normal"
	BulletScaleFixed    = "fixed"
	BulletScaleFlexible = "flexible"
)

// BulletOptions is the adapted form of a Bullet element.
type BulletOptions struct {
	MarkType          chart.Kind
	Name              *string
	Metric            *string
	Dimension         *string
	Target            *string
	Color             *string
	Direction         *string
	NumberFormat      *string
	ShowTarget        *bool
	ShowTargetValue   *bool
	LabelPosition     *string
	ScaleType         *string
	MaxScaleValue     *float64
	ThresholdBarColor *bool
	Thresholds        []chart.Threshold
	Track             *bool
	MetricLabel       *string
}

// Threshold is a resolved bullet threshold; nil bounds are open.
type Threshold struct {
	Min  *float64
	Max  *float64
	Fill string
}

// BulletSpecOptions is a fully resolved bullet.
type BulletSpecOptions struct {
	Name              string
	Index             int
	Metric            string
	Dimension         string
	Target            string
	Color             string
	Direction         string
	NumberFormat      string
	ShowTarget        bool
	ShowTargetValue   bool
	LabelPosition     string
	ScaleType         string
	MaxScaleValue     float64
	ThresholdBarColor bool
	Thresholds        []Threshold
	Track             bool
	MetricLabel       string
	ColorScheme       palette.ColorScheme
}

// ApplyBulletDefaults resolves o.
func ApplyBulletDefaults(o BulletOptions, ctx MarkContext) BulletSpecOptions {
	thresholds := make([]Threshold, len(o.Thresholds))
	for i, t := range o.Thresholds {
		thresholds[i] = Threshold{Min: t.ThresholdMin, Max: t.ThresholdMax, Fill: t.Fill}
	}

	return BulletSpecOptions{
		Name:              naming.Resolve(o.Name, naming.Indexed("bullet", ctx.Index)),
		Index:             ctx.Index,
		Metric:            common.Deref(o.Metric, "currentAmount"),
		Dimension:         common.Deref(o.Dimension, "graphLabel"),
		Target:            common.Deref(o.Target, "target"),
		Color:             common.Deref(o.Color, "blue-900"),
		Direction:         common.Deref(o.Direction, BulletColumn),
		NumberFormat:      common.Deref(o.NumberFormat, ""),
		ShowTarget:        common.Deref(o.ShowTarget, true),
		ShowTargetValue:   common.Deref(o.ShowTargetValue, false),
		LabelPosition:     common.Deref(o.LabelPosition, BulletLabelTop),
		ScaleType:         common.Deref(o.ScaleType, BulletScaleNormal),
		MaxScaleValue:     common.Deref(o.MaxScaleValue, 100),
		ThresholdBarColor: common.Deref(o.ThresholdBarColor, false),
		Thresholds:        thresholds,
		Track:             common.Deref(o.Track, false),
		MetricLabel:       common.Deref(o.MetricLabel, ""),
		ColorScheme:       ctx.ColorScheme,
	}
}
