package builder

import (
	"fmt"

	"chartspec/internal/options"
	"chartspec/internal/palette"
	"chartspec/internal/vega"
)

const annotationOffset = 4

// getBarAnnotationMarks labels the end of every bar of o. Stacked bars are
// labelled once per stack, on the top segment.
func getBarAnnotationMarks(spec *vega.Spec, o options.BarSpecOptions, g barGeometry, a options.BarAnnotationSpecOptions) []vega.Mark {
	from := o.Name + "_facet"
	if o.Type != options.Dodged {
		from = a.Name + "_data"
		topField := a.Name + "_stackTop"

		AddData(spec, vega.Data{
			Name:   from,
			Source: vega.FilteredTableData,
			Transform: []vega.Transform{
				{
					Type:    "joinaggregate",
					Groupby: []string{o.Dimension},
					Ops:     []string{"max"},
					Fields:  []string{g.endField},
					As:      []string{topField},
				},
				{Type: "filter", Expr: fmt.Sprintf("datum.%s === datum.%s", g.endField, topField)},
			},
		})
	}

	text := vega.Mark{
		Name:        a.Name + "_text",
		Type:        vega.MarkText,
		From:        &vega.From{Data: from},
		Interactive: vega.Bool(false),
		ZIndex:      1,
		Encode:      &vega.Encode{Enter: vega.EncodeEntry{}, Update: vega.EncodeEntry{}},
	}

	enter := text.Encode.Enter
	enter["text"] = vega.Rule(vega.FieldRef(a.TextKey))
	enter["fill"] = vega.Rule(vega.Value(palette.Color("gray-800", o.ColorScheme)))
	enter["fontSize"] = vega.Rule(vega.Value(12))
	enter["fontWeight"] = vega.Rule(vega.Value("bold"))

	if a.Width > 0 {
		enter["limit"] = vega.Rule(vega.Value(a.Width))
	}

	update := text.Encode.Update
	end := g.metricRule(g.endField)
	for i := range end {
		end[i].Offset = annotationOffset
		if g.metricChannel == ChannelY {
			end[i].Offset = -annotationOffset
		}
	}

	update[g.metricChannel] = end

	if o.Type == options.Dodged {
		position := DodgedPositionScale(o.Name)
		field := o.Color.Field()
		if field == "" {
			field = vega.SeriesIDField
		}

		update[g.dimChannel] = vega.Rule(vega.ValueRef{Scale: position, Field: field, Band: vega.Float(0.5)})
	} else {
		update[g.dimChannel] = vega.Rule(vega.ValueRef{Scale: g.dimScale, Field: o.Dimension, Band: vega.Float(0.5)})
	}

	if g.metricChannel == ChannelY {
		update["align"] = vega.Rule(vega.Value("center"))
		update["baseline"] = vega.Rule(vega.Value("bottom"))
	} else {
		update["align"] = vega.Rule(vega.Value("left"))
		update["baseline"] = vega.Rule(vega.Value("middle"))
	}

	background := vega.Mark{
		Name:        a.Name + "_background",
		Type:        vega.MarkRect,
		From:        &vega.From{Data: text.Name},
		Interactive: vega.Bool(false),
		Encode: &vega.Encode{Update: vega.EncodeEntry{
			"x":            vega.Rule(vega.SignalRef("datum.bounds.x1 - 3")),
			"x2":           vega.Rule(vega.SignalRef("datum.bounds.x2 + 3")),
			"y":            vega.Rule(vega.SignalRef("datum.bounds.y1 - 2")),
			"y2":           vega.Rule(vega.SignalRef("datum.bounds.y2 + 2")),
			"fill":         vega.Rule(vega.Value(palette.Color("gray-50", o.ColorScheme))),
			"cornerRadius": vega.Rule(vega.Value(2)),
		}},
	}

	return []vega.Mark{text, background}
}
