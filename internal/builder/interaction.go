package builder

import (
	"fmt"

	"chartspec/internal/options"
	"chartspec/internal/palette"
	"chartspec/internal/vega"
)

// interaction describes the interactive decorations of one mark.
type interaction struct {
	// Visible is the mark that is dimmed and outlined.
	Visible *vega.Mark
	// Hover is the mark receiving pointer events; it may equal Visible.
	Hover *vega.Mark
	// Voronoi is set when Hover draws voronoi cells wrapping the data rows.
	Voronoi bool
	// Dimension is the parent dimension field, for dimension highlighting.
	Dimension string
	// HighlightBy applies when the mark has mouse handlers but no tooltip.
	HighlightBy options.HighlightBy

	Tooltips            []options.ChartTooltipSpecOptions
	Popovers            []options.ChartPopoverSpecOptions
	HasOnClick          bool
	HasMouseInteraction bool
	ColorScheme         palette.ColorScheme
}

func (in interaction) active() bool {
	return in.HasMouseInteraction || in.HasOnClick || len(in.Tooltips) > 0 || len(in.Popovers) > 0
}

// addInteraction wires tooltips, popovers and mouse handlers of one mark.
func addInteraction(spec *vega.Spec, in interaction) {
	if !in.active() {
		return
	}

	hover := in.Hover
	if hover == nil {
		hover = in.Visible
	}

	hover.Interactive = vega.Bool(true)

	if len(in.Tooltips) > 0 {
		SetEntry(hover.UpdateEntry(), "tooltip", getTooltipRule(in.Tooltips[0], in.Voronoi))
	}

	highlightBy := in.HighlightBy
	if len(in.Tooltips) > 0 {
		highlightBy = in.Tooltips[0].HighlightBy
	}

	if len(in.Tooltips) > 0 || in.HasMouseInteraction {
		addHighlight(spec, in, hover.Name, highlightBy)
	}

	if len(in.Popovers) > 0 || in.HasOnClick {
		SetEntry(hover.UpdateEntry(), "cursor", GetCursor(true))
	}

	if len(in.Popovers) > 0 {
		AddSelectedEvents(spec, hover.Name, in.Voronoi)

		visible := in.Visible.UpdateEntry()
		visible["stroke"] = GetSelectedStrokeRule(in.ColorScheme, visible["stroke"])

		width := visible["strokeWidth"]
		visible["strokeWidth"] = append(vega.Rule(vega.ValueRef{
			Test:  fmt.Sprintf("isValid(%s) && %s === datum.%s", vega.SelectedItemSignal, vega.SelectedItemSignal, vega.MarkIDField),
			Value: 2,
		}), width...)

		for _, p := range in.Popovers {
			addPopoverMeta(spec, p)
		}
	}
}

func addHighlight(spec *vega.Spec, in interaction, hoverName string, by options.HighlightBy) {
	update := in.Visible.UpdateEntry()

	switch by {
	case options.HighlightSeries:
		AddHighlightedSeriesEvents(spec, hoverName, in.Voronoi)
		update["opacity"] = insertRule(update["opacity"], GetHighlightOpacityRule(nil, ""))
	case options.HighlightDimension:
		signal := in.Visible.Name + "_highlightedDimension"
		path := "datum." + in.Dimension
		if in.Voronoi {
			path = "datum.datum." + in.Dimension
		}

		AddSignalEvents(spec, signal, HoverEvents(hoverName, path)...)
		update["opacity"] = insertRule(update["opacity"], vega.ValueRef{
			Test:  fmt.Sprintf("isValid(%s) && %s !== datum.%s", signal, signal, in.Dimension),
			Value: 1.0 / vega.HighlightContrastRatio,
		})
	default:
		AddHighlightedItemEvents(spec, hoverName, in.Voronoi)
		if in.Hover == nil || in.Hover == in.Visible {
			update["opacity"] = insertRule(update["opacity"], GetHighlightedItemOpacityRule())
		}
	}
}

// getTooltipRule shows the datum unless it sets any excluded key.
func getTooltipRule(t options.ChartTooltipSpecOptions, voronoi bool) vega.ProductionRule {
	datum := "datum"
	if voronoi {
		datum = "datum.datum"
	}

	rule := make(vega.ProductionRule, 0, len(t.ExcludeDataKeys)+1)
	for _, key := range t.ExcludeDataKeys {
		rule = append(rule, vega.ValueRef{Test: fmt.Sprintf("%s.%s", datum, key), Value: nil, Signal: "null"})
	}

	return append(rule, vega.SignalRef(datum))
}

// addPopoverMeta records popover geometry for the host application.
func addPopoverMeta(spec *vega.Spec, p options.ChartPopoverSpecOptions) {
	if spec.Usermeta == nil {
		spec.Usermeta = map[string]any{}
	}

	popovers, _ := spec.Usermeta["popovers"].([]map[string]any)
	for _, existing := range popovers {
		if existing["name"] == p.Name {
			return
		}
	}

	entry := map[string]any{
		"name":        p.Name,
		"markName":    p.MarkName,
		"width":       p.Width,
		"highlightBy": string(p.HighlightBy),
	}
	if p.Height > 0 {
		entry["height"] = p.Height
	}

	spec.Usermeta["popovers"] = append(popovers, entry)
}
