package builder

import (
	"fmt"
	"strings"

	"chartspec/internal/chart"
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

// LegendEntryName names the interactive entry group of a legend.
func LegendEntryName(legendName string) string {
	return legendName + "_legendEntry"
}

// legendFacets are the facet fields a legend describes; empty when unused.
type legendFacets struct {
	color, lineType, opacity string
}

func (f legendFacets) first() string {
	for _, field := range []string{f.color, f.lineType, f.opacity} {
		if field != "" {
			return field
		}
	}

	return ""
}

// getLegendFacets prefers the legend's own facets and falls back to the
// fields the marks added to the facet scales.
func getLegendFacets(spec *vega.Spec, o options.LegendSpecOptions) legendFacets {
	pick := func(own *chart.Facet[string], scale string) string {
		if own != nil {
			return own.Field()
		}

		if s := spec.Scale(scale); s != nil {
			if field, ok := GetScaleField(*s); ok {
				return field
			}
		}

		return ""
	}

	f := legendFacets{
		color:    pick(o.Color, vega.ColorScale),
		lineType: pick(o.LineType, vega.LineTypeScale),
	}

	if o.Opacity != nil {
		f.opacity = o.Opacity.Field()
	} else if s := spec.Scale(vega.OpacityScale); s != nil {
		f.opacity, _ = GetScaleField(*s)
	}

	return f
}

// AddLegend adds a legend over the populated facet scales and its hover,
// toggle, label and description behavior.
func AddLegend(spec *vega.Spec, o options.LegendSpecOptions) {
	facets := getLegendFacets(spec, o)
	field := facets.first()

	legend := vega.Legend{
		Name:       o.Name,
		Title:      o.Title,
		Orient:     string(o.Position),
		Direction:  legendDirection(o.Position),
		SymbolType: "circle",
		Encode:     vega.GuideEncode{},
	}

	if facets.color != "" {
		legend.Fill = vega.ColorScale
	}

	if facets.lineType != "" {
		legend.StrokeDash = vega.LineTypeScale
		if facets.color == "" {
			legend.SymbolType = "stroke"
			legend.Stroke = vega.LineTypeScale
		}
	}

	if facets.opacity != "" {
		legend.Opacity = vega.OpacityScale
	}

	if len(o.Keys) > 0 || (len(o.HiddenEntries) > 0 && field != "") {
		addLegendEntries(spec, o, field, &legend)
	}

	entries := &vega.GuideBlock{Name: LegendEntryName(o.Name), Update: vega.EncodeEntry{}}
	legend.Encode["entries"] = entries

	if o.Highlight || o.IsToggleable || len(o.Descriptions) > 0 || o.HasOnClick || o.HasMouseInteraction {
		entries.Interactive = vega.Bool(true)
	}

	if o.Highlight {
		signal := vega.HighlightedSeriesSignal
		if len(o.Keys) > 0 {
			signal = vega.HighlightedGroupSignal
		}

		AddSignalEvents(spec, signal, HoverEvents(LegendEntryName(o.Name), "datum.value")...)
		SetHoverOpacityForMarks(spec.Marks, o.Keys, o.Name)

		legend.Encode["symbols"] = &vega.GuideBlock{Update: vega.EncodeEntry{
			"opacity": vega.Rule(
				vega.ValueRef{
					Test:  fmt.Sprintf("isValid(%s) && %s !== datum.value", signal, signal),
					Value: 1.0 / vega.HighlightContrastRatio,
				},
				vega.Value(1),
			),
		}}
	}

	if o.IsToggleable {
		addLegendToggle(spec, o.Name)

		legend.Encode["labels"] = &vega.GuideBlock{Update: vega.EncodeEntry{
			"fillOpacity": vega.Rule(
				vega.ValueRef{Test: fmt.Sprintf("indexof(%s, datum.value) !== -1", vega.HiddenSeriesSignal), Value: 0.5},
				vega.Value(1),
			),
		}}
	}

	if len(o.LegendLabels) > 0 {
		labels := legend.Encode["labels"]
		if labels == nil {
			labels = &vega.GuideBlock{Update: vega.EncodeEntry{}}
			legend.Encode["labels"] = labels
		}

		labels.Update["text"] = getLegendLabelRule(o.LegendLabels)
	}

	if len(o.Descriptions) > 0 {
		entries.Update["tooltip"] = getLegendDescriptionRule(o.Descriptions)
	}

	spec.Legends = append(spec.Legends, legend)
}

// addLegendToggle keeps the clicked entries in {name}_hiddenEntries and
// derives the hidden series signal from it.
func addLegendToggle(spec *vega.Spec, legendName string) {
	toggled := legendName + "_toggledEntry"
	data := legendName + "_hiddenEntries"

	AddSignalEvents(spec, toggled, vega.OnEvent{
		Events: fmt.Sprintf("@%s:click", LegendEntryName(legendName)),
		Update: "{value: datum.value}",
	})

	AddData(spec, vega.Data{
		Name:   data,
		Values: []any{},
		On:     []vega.Trigger{{Trigger: toggled, Toggle: toggled}},
	})

	hidden := AddSignal(spec, vega.Signal{Name: vega.HiddenSeriesSignal, Value: []any{}})
	hidden.Update = fmt.Sprintf("pluck(data('%s'), 'value')", data)
}

func legendDirection(p options.Position) string {
	if p.IsVertical() {
		return "vertical"
	}

	return "horizontal"
}

// addLegendEntries aggregates the legend entries into {name}Aggregate. With
// keys every entry is a group of key values that marks match through the group
// id added to the table; hidden entries are filtered out.
func addLegendEntries(spec *vega.Spec, o options.LegendSpecOptions, field string, legend *vega.Legend) {
	data := o.Name + "Aggregate"
	groupID := HighlightGroupIDField(o.Name)

	groupby := o.Keys
	if len(groupby) == 0 {
		groupby = []string{field}
	}

	expr := highlightGroupExpr(groupby)

	transforms := []vega.Transform{
		{Type: "aggregate", Groupby: groupby},
		{Type: "formula", As: groupID, Expr: expr},
	}

	if len(o.HiddenEntries) > 0 {
		quoted := make([]string, len(o.HiddenEntries))
		for i, e := range o.HiddenEntries {
			quoted[i] = "'" + escapeQuote(e) + "'"
		}

		transforms = append(transforms, vega.Transform{
			Type: "filter",
			Expr: fmt.Sprintf("indexof([%s], datum.%s) === -1", strings.Join(quoted, ", "), groupID),
		})
	}

	AddData(spec, vega.Data{Name: data, Source: vega.TableData, Transform: transforms})

	if len(o.Keys) == 0 {
		legend.Values = map[string]string{"signal": fmt.Sprintf("pluck(data('%s'), '%s')", data, groupID)}

		return
	}

	AddTransform(spec, vega.TableData, vega.Transform{Type: "formula", As: groupID, Expr: expr})

	entries := o.Name + "Entries"
	AddScale(spec, vega.Scale{
		Name:   entries,
		Type:   vega.ScaleOrdinal,
		Domain: &vega.Domain{Data: data, Field: groupID},
		Range:  map[string]string{"signal": vega.ColorsSignal},
	})

	legend.Fill = entries
	legend.Stroke = ""
	legend.StrokeDash = ""
	legend.Opacity = ""
}

func highlightGroupExpr(fields []string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = "datum." + f
	}

	return strings.Join(parts, " + ' | ' + ")
}

func getLegendLabelRule(labels []chart.LegendLabel) vega.ProductionRule {
	rule := make(vega.ProductionRule, 0, len(labels)+1)
	for _, l := range labels {
		rule = append(rule, vega.ValueRef{
			Test:  fmt.Sprintf("datum.value === '%s'", escapeQuote(l.SeriesName)),
			Value: l.Label,
		})
	}

	return append(rule, vega.SignalRef("datum.label"))
}

func getLegendDescriptionRule(descriptions []chart.LegendDescription) vega.ProductionRule {
	rule := make(vega.ProductionRule, 0, len(descriptions)+1)
	for _, d := range descriptions {
		tooltip := map[string]string{"description": d.Description}
		if d.Title != "" {
			tooltip["title"] = d.Title
		}

		rule = append(rule, vega.ValueRef{
			Test:  fmt.Sprintf("datum.value === '%s'", escapeQuote(d.SeriesName)),
			Value: tooltip,
		})
	}

	return append(rule, vega.SignalRef("null"))
}
