package adapter

import (
	"fmt"

	"chartspec/internal/chart"
)

var acceptedChildren = map[chart.Kind][]chart.Kind{
	chart.KindChart: {
		chart.KindBar, chart.KindLine, chart.KindArea, chart.KindScatter, chart.KindDonut,
		chart.KindCombo, chart.KindBullet, chart.KindSunburst,
		chart.KindAxis, chart.KindLegend, chart.KindTitle,
	},
	chart.KindBar:       {chart.KindBarAnnotation, chart.KindChartPopover, chart.KindChartTooltip, chart.KindTrendline},
	chart.KindLine:      {chart.KindChartPopover, chart.KindChartTooltip, chart.KindMetricRange, chart.KindTrendline},
	chart.KindArea:      {chart.KindChartPopover, chart.KindChartTooltip},
	chart.KindScatter:   {chart.KindChartPopover, chart.KindChartTooltip, chart.KindScatterPath, chart.KindTrendline},
	chart.KindDonut:     {chart.KindChartPopover, chart.KindChartTooltip, chart.KindDonutSummary, chart.KindSegmentLabel},
	chart.KindSunburst:  {chart.KindChartPopover, chart.KindChartTooltip},
	chart.KindCombo:     {chart.KindBar, chart.KindLine},
	chart.KindAxis:      {chart.KindReferenceLine},
	chart.KindTrendline: {chart.KindChartTooltip},
}

// AcceptsChild reports whether an element of kind parent uses children of kind child.
func AcceptsChild(parent, child chart.Kind) bool {
	for _, k := range acceptedChildren[parent] {
		if k == child {
			return true
		}
	}

	return false
}

// AcceptedTags lists the document tags of the children parent uses.
func AcceptedTags(parent chart.Kind) []string {
	kinds := acceptedChildren[parent]

	tags := make([]string, len(kinds))
	for i, k := range kinds {
		tags[i] = k.Tag()
	}

	return tags
}

// Children returns the children of el, or nil for elements without children.
func Children(el chart.Element) chart.Elements {
	switch e := chart.Unwrap(el).(type) {
	case chart.Chart:
		return e.Children
	case chart.Bar:
		return e.Children
	case chart.Line:
		return e.Children
	case chart.Area:
		return e.Children
	case chart.Scatter:
		return e.Children
	case chart.Donut:
		return e.Children
	case chart.Combo:
		return e.Children
	case chart.Sunburst:
		return e.Children
	case chart.Axis:
		return e.Children
	case chart.Trendline:
		return e.Children
	default:
		return nil
	}
}

// UnknownChild is a child that its parent ignores.
type UnknownChild struct {
	// Path locates the parent, e.g. "chart/bar[0]".
	Path   string
	Parent chart.Kind
	Child  chart.Element
}

// FindUnknownChildren walks the tree under root and lists every child its
// parent does not accept, in document order.
func FindUnknownChildren(root chart.Element) []UnknownChild {
	var out []UnknownChild

	root = chart.Unwrap(root)
	walkChildren(root, root.Kind().Tag(), &out)

	return out
}

func walkChildren(parent chart.Element, path string, out *[]UnknownChild) {
	counts := make(map[chart.Kind]int)

	for _, child := range Children(parent) {
		child = chart.Unwrap(child)
		kind := child.Kind()

		if !AcceptsChild(parent.Kind(), kind) {
			*out = append(*out, UnknownChild{Path: path, Parent: parent.Kind(), Child: child})

			continue
		}

		childPath := fmt.Sprintf("%s/%s[%d]", path, kind.Tag(), counts[kind])
		counts[kind]++

		walkChildren(child, childPath, out)
	}
}
