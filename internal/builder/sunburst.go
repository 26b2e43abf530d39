package builder

import (
	"chartspec/internal/chart"
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

// AddSunburst lays out the id/parent hierarchy of the table as rings.
func AddSunburst(spec *vega.Spec, o options.SunburstSpecOptions) {
	data := o.Name + "_data"

	AddData(spec, vega.Data{
		Name:   data,
		Source: vega.FilteredTableData,
		Transform: []vega.Transform{
			{Type: "stratify", Key: o.ID, ParentKey: o.ParentKey},
			{
				Type:  "partition",
				Field: o.Metric,
				Sort:  &vega.Compare{Field: o.Metric, Order: "descending"},
				Size: []any{
					map[string]string{"signal": "2 * PI"},
					map[string]string{"signal": "min(width, height) / 2"},
				},
				As: []string{"a0", "r0", "a1", "r1", "depth", "children"},
			},
		},
	})

	color := *chart.FieldFacet[string](o.Color)

	arc := vega.Mark{
		Name: o.Name,
		Type: vega.MarkArc,
		From: &vega.From{Data: data},
		Encode: &vega.Encode{
			Enter: vega.EncodeEntry{
				"x":           vega.Rule(vega.SignalRef("width / 2")),
				"y":           vega.Rule(vega.SignalRef("height / 2")),
				"fill":        GetColorProductionRule(spec, color, o.ColorScheme),
				"stroke":      vega.Rule(vega.SignalRef(vega.BackgroundColorSignal)),
				"strokeWidth": vega.Rule(vega.Value(1)),
			},
			Update: vega.EncodeEntry{
				"startAngle":  vega.Rule(vega.FieldRef("a0")),
				"endAngle":    vega.Rule(vega.FieldRef("a1")),
				"innerRadius": vega.Rule(vega.FieldRef("r0")),
				"outerRadius": vega.Rule(vega.FieldRef("r1")),
				// Inner rings fade so the leaves stand out.
				"fillOpacity": vega.Rule(vega.SignalRef("datum.depth > 1 ? 1 / (datum.depth * 0.5 + 0.5) : 1")),
			},
		},
	}

	addInteraction(spec, interaction{
		Visible:             &arc,
		HighlightBy:         options.HighlightItem,
		Tooltips:            o.ChartTooltips,
		Popovers:            o.ChartPopovers,
		HasOnClick:          o.HasOnClick,
		HasMouseInteraction: o.HasMouseInteraction,
		ColorScheme:         o.ColorScheme,
	})

	spec.Marks = append(spec.Marks, arc)
}
