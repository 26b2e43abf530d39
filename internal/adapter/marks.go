package adapter

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/naming"
	"chartspec/internal/options"
)

// GetBarOptions adapts a bar and its decorations.
func GetBarOptions(el chart.Bar) options.BarOptions {
	d := partition(chart.KindBar, el.Children)

	return options.BarOptions{
		MarkType:            chart.KindBar,
		Name:                el.Name,
		Dimension:           el.Dimension,
		Metric:              el.Metric,
		Color:               el.Color,
		LineType:            el.LineType,
		Opacity:             el.Opacity,
		LineWidth:           el.LineWidth,
		Orientation:         el.Orientation,
		Type:                el.Type,
		PaddingRatio:        el.PaddingRatio,
		PaddingOuter:        el.PaddingOuter,
		GroupedPadding:      el.GroupedPadding,
		HasSquareCorners:    el.HasSquareCorners,
		Order:               el.Order,
		MetricAxis:          el.MetricAxis,
		DualMetricAxis:      el.DualMetricAxis,
		BarAnnotations:      d.annotations,
		ChartPopovers:       d.popovers,
		ChartTooltips:       d.tooltips,
		Trendlines:          d.trendlines,
		HasOnClick:          el.OnClick != nil,
		HasMouseInteraction: hasMouseInteraction(el.OnMouseOver, el.OnMouseOut),
	}
}

// GetLineOptions adapts a line and its decorations.
func GetLineOptions(el chart.Line) options.LineOptions {
	d := partition(chart.KindLine, el.Children)

	return options.LineOptions{
		MarkType:            chart.KindLine,
		Name:                el.Name,
		Dimension:           el.Dimension,
		Metric:              el.Metric,
		Color:               el.Color,
		LineType:            el.LineType,
		Opacity:             el.Opacity,
		LineWidth:           el.LineWidth,
		ScaleType:           el.ScaleType,
		Interpolate:         el.Interpolate,
		Padding:             el.Padding,
		StaticPoint:         el.StaticPoint,
		MetricAxis:          el.MetricAxis,
		DualMetricAxis:      el.DualMetricAxis,
		ChartPopovers:       d.popovers,
		ChartTooltips:       d.tooltips,
		MetricRanges:        d.metricRanges,
		Trendlines:          d.trendlines,
		HasOnClick:          el.OnClick != nil,
		HasMouseInteraction: hasMouseInteraction(el.OnMouseOver, el.OnMouseOut),
	}
}

// GetAreaOptions adapts an area and its decorations.
func GetAreaOptions(el chart.Area) options.AreaOptions {
	d := partition(chart.KindArea, el.Children)

	return options.AreaOptions{
		MarkType:            chart.KindArea,
		Name:                el.Name,
		Dimension:           el.Dimension,
		Metric:              el.Metric,
		MetricStart:         el.MetricStart,
		MetricEnd:           el.MetricEnd,
		Color:               el.Color,
		Opacity:             el.Opacity,
		ScaleType:           el.ScaleType,
		Padding:             el.Padding,
		ChartPopovers:       d.popovers,
		ChartTooltips:       d.tooltips,
		HasOnClick:          el.OnClick != nil,
		HasMouseInteraction: hasMouseInteraction(el.OnMouseOver, el.OnMouseOut),
	}
}

// GetScatterOptions adapts a scatter and its decorations.
func GetScatterOptions(el chart.Scatter) options.ScatterOptions {
	d := partition(chart.KindScatter, el.Children)

	return options.ScatterOptions{
		MarkType:            chart.KindScatter,
		Name:                el.Name,
		Dimension:           el.Dimension,
		Metric:              el.Metric,
		Color:               el.Color,
		LineType:            el.LineType,
		LineWidth:           el.LineWidth,
		Opacity:             el.Opacity,
		Size:                el.Size,
		DimensionScaleType:  el.DimensionScaleType,
		MetricAxis:          el.MetricAxis,
		ChartPopovers:       d.popovers,
		ChartTooltips:       d.tooltips,
		ScatterPaths:        d.paths,
		Trendlines:          d.trendlines,
		HasOnClick:          el.OnClick != nil,
		HasMouseInteraction: hasMouseInteraction(el.OnMouseOver, el.OnMouseOut),
	}
}

// GetDonutOptions adapts a donut and its decorations.
func GetDonutOptions(el chart.Donut) options.DonutOptions {
	d := partition(chart.KindDonut, el.Children)

	return options.DonutOptions{
		MarkType:            chart.KindDonut,
		Name:                el.Name,
		Metric:              el.Metric,
		Color:               el.Color,
		StartAngle:          el.StartAngle,
		HoleRatio:           el.HoleRatio,
		IsBoolean:           el.IsBoolean,
		ChartPopovers:       d.popovers,
		ChartTooltips:       d.tooltips,
		DonutSummaries:      d.summaries,
		SegmentLabels:       d.labels,
		HasOnClick:          el.OnClick != nil,
		HasMouseInteraction: hasMouseInteraction(el.OnMouseOver, el.OnMouseOut),
	}
}

// GetBulletOptions adapts a bullet.
func GetBulletOptions(el chart.Bullet) options.BulletOptions {
	return options.BulletOptions{
		MarkType:          chart.KindBullet,
		Name:              el.Name,
		Metric:            el.Metric,
		Dimension:         el.Dimension,
		Target:            el.Target,
		Color:             el.Color,
		Direction:         el.Direction,
		NumberFormat:      el.NumberFormat,
		ShowTarget:        el.ShowTarget,
		ShowTargetValue:   el.ShowTargetValue,
		LabelPosition:     el.LabelPosition,
		ScaleType:         el.ScaleType,
		MaxScaleValue:     el.MaxScaleValue,
		ThresholdBarColor: el.ThresholdBarColor,
		Thresholds:        common.Clone(el.Thresholds),
		Track:             el.Track,
		MetricLabel:       el.MetricLabel,
	}
}

// GetSunburstOptions adapts a sunburst and its decorations.
func GetSunburstOptions(el chart.Sunburst) options.SunburstOptions {
	d := partition(chart.KindSunburst, el.Children)

	return options.SunburstOptions{
		MarkType:            chart.KindSunburst,
		Name:                el.Name,
		Metric:              el.Metric,
		ID:                  el.ID,
		ParentKey:           el.ParentKey,
		SegmentKey:          el.SegmentKey,
		Color:               el.Color,
		ChartPopovers:       d.popovers,
		ChartTooltips:       d.tooltips,
		HasOnClick:          el.OnClick != nil,
		HasMouseInteraction: hasMouseInteraction(el.OnMouseOver, el.OnMouseOut),
	}
}

// GetComboOptions adapts a combo. Every child mark is adapted fully and gets
// a name scoped under the combo name, counting children of the same kind.
// A combo without a name is scoped under the name it will resolve to.
func GetComboOptions(el chart.Combo, index int) options.ComboOptions {
	comboName := naming.Resolve(el.Name, naming.Indexed("combo", index))

	o := options.ComboOptions{
		MarkType:       chart.KindCombo,
		Name:           el.Name,
		Dimension:      el.Dimension,
		DualMetricAxis: el.DualMetricAxis,
		Marks:          []options.ComboMarkOptions{},
	}

	counts := make(map[chart.Kind]int)

	for _, child := range el.Children {
		child = chart.Unwrap(child)

		switch c := child.(type) {
		case chart.Bar:
			bar := GetBarOptions(c)
			bar.Name = common.Ptr(GetComboMarkName(c, comboName, counts[chart.KindBar]))
			o.Marks = append(o.Marks, options.ComboMarkOptions{Bar: &bar})
		case chart.Line:
			line := GetLineOptions(c)
			line.Name = common.Ptr(GetComboMarkName(c, comboName, counts[chart.KindLine]))
			o.Marks = append(o.Marks, options.ComboMarkOptions{Line: &line})
		default:
			continue
		}

		counts[child.Kind()]++
	}

	return o
}

// GetComboMarkName returns the explicit name of mark, or
// {comboName}{MarkKind}{index} when it has none.
func GetComboMarkName(mark chart.Element, comboName string, index int) string {
	mark = chart.Unwrap(mark)

	var explicit *string

	switch m := mark.(type) {
	case chart.Bar:
		explicit = m.Name
	case chart.Line:
		explicit = m.Name
	case chart.Area:
		explicit = m.Name
	case chart.Scatter:
		explicit = m.Name
	}

	return naming.Resolve(explicit, naming.ChildName(comboName, mark.Kind().String(), index))
}
