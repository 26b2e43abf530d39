package builder

import (
	"chartspec/internal/options"
	"chartspec/internal/vega"
)

// AddTitle sets the chart title.
func AddTitle(spec *vega.Spec, o options.TitleSpecOptions) {
	spec.Title = &vega.Title{
		Text:       o.Text,
		Orient:     string(o.Orient),
		Anchor:     o.Position,
		FontWeight: o.FontWeight,
	}
}
