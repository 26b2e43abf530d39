package adapter

import (
	"chartspec/internal/chart"
	"chartspec/internal/common"
	"chartspec/internal/options"
)

// GetAxisOptions adapts an axis and its reference lines.
func GetAxisOptions(el chart.Axis) options.AxisOptions {
	o := options.AxisOptions{
		MarkType:          chart.KindAxis,
		Name:              el.Name,
		Position:          el.Position,
		Title:             el.Title,
		Baseline:          el.Baseline,
		BaselineOffset:    el.BaselineOffset,
		Grid:              el.Grid,
		Ticks:             el.Ticks,
		HideDefaultLabels: el.HideDefaultLabels,
		LabelAlign:        el.LabelAlign,
		LabelFontWeight:   el.LabelFontWeight,
		LabelOrientation:  el.LabelOrientation,
		LabelFormat:       el.LabelFormat,
		NumberFormat:      el.NumberFormat,
		CurrencyCode:      el.CurrencyCode,
		Granularity:       el.Granularity,
		TickMinStep:       el.TickMinStep,
		TruncateLabels:    el.TruncateLabels,
		ReferenceLines:    []options.ReferenceLineOptions{},
	}

	if el.Range != nil {
		o.Range = common.Clone(el.Range)
	}

	for _, child := range el.Children {
		if r, ok := chart.Unwrap(child).(chart.ReferenceLine); ok {
			o.ReferenceLines = append(o.ReferenceLines, GetReferenceLineOptions(r))
		}
	}

	return o
}

// GetLegendOptions adapts a legend.
func GetLegendOptions(el chart.Legend) options.LegendOptions {
	o := options.LegendOptions{
		MarkType:            chart.KindLegend,
		Name:                el.Name,
		Position:            el.Position,
		Title:               el.Title,
		Color:               el.Color,
		LineType:            el.LineType,
		Opacity:             el.Opacity,
		Highlight:           el.Highlight,
		IsToggleable:        el.IsToggleable,
		HasOnClick:          el.OnClick != nil,
		HasMouseInteraction: hasMouseInteraction(el.OnMouseOver, el.OnMouseOut),
	}

	if el.Keys != nil {
		o.Keys = common.Clone(el.Keys)
	}

	if el.HiddenEntries != nil {
		o.HiddenEntries = common.Clone(el.HiddenEntries)
	}

	if el.LegendLabels != nil {
		o.LegendLabels = common.Clone(el.LegendLabels)
	}

	if el.Descriptions != nil {
		o.Descriptions = common.Clone(el.Descriptions)
	}

	return o
}

// GetTitleOptions adapts a title.
func GetTitleOptions(el chart.Title) options.TitleOptions {
	return options.TitleOptions{
		MarkType:   chart.KindTitle,
		Text:       el.Text,
		FontWeight: el.FontWeight,
		Position:   el.Position,
		Orient:     el.Orient,
	}
}

// GetChartOptions adapts the root chart. Children are adapted in document
// order; combos get their sibling index so child names can be scoped.
func GetChartOptions(el chart.Chart) options.ChartOptions {
	o := options.ChartOptions{
		MarkType:          chart.KindChart,
		Data:              el.Data,
		Width:             el.Width,
		Height:            el.Height,
		Padding:           el.Padding,
		BackgroundColor:   el.BackgroundColor,
		ColorScheme:       el.ColorScheme,
		Colors:            el.Colors,
		LineTypes:         el.LineTypes,
		Opacities:         el.Opacities,
		Locale:            el.Locale,
		Title:             el.Title,
		Description:       el.Description,
		HiddenSeries:      el.HiddenSeries,
		HighlightedSeries: el.HighlightedSeries,
		Marks:             []options.MarkOptions{},
		Axes:              []options.AxisOptions{},
		Legends:           []options.LegendOptions{},
		Titles:            []options.TitleOptions{},
	}

	combos := 0

	for _, child := range el.Children {
		switch c := chart.Unwrap(child).(type) {
		case chart.Bar:
			o.Marks = append(o.Marks, GetBarOptions(c))
		case chart.Line:
			o.Marks = append(o.Marks, GetLineOptions(c))
		case chart.Area:
			o.Marks = append(o.Marks, GetAreaOptions(c))
		case chart.Scatter:
			o.Marks = append(o.Marks, GetScatterOptions(c))
		case chart.Donut:
			o.Marks = append(o.Marks, GetDonutOptions(c))
		case chart.Combo:
			o.Marks = append(o.Marks, GetComboOptions(c, combos))
			combos++
		case chart.Bullet:
			o.Marks = append(o.Marks, GetBulletOptions(c))
		case chart.Sunburst:
			o.Marks = append(o.Marks, GetSunburstOptions(c))
		case chart.Axis:
			o.Axes = append(o.Axes, GetAxisOptions(c))
		case chart.Legend:
			o.Legends = append(o.Legends, GetLegendOptions(c))
		case chart.Title:
			o.Titles = append(o.Titles, GetTitleOptions(c))
		}
	}

	return o
}
