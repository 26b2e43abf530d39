package builder

import (
	"chartspec/internal/locale"
	"chartspec/internal/options"
	"chartspec/internal/palette"
	"chartspec/internal/vega"
)

// InitializeSpec returns a draft with the base data sources, signals, facet
// scales and config for o.
func InitializeSpec(o options.ChartSpecOptions) *vega.Spec {
	loc := locale.Get(o.Locale)

	config := palette.Config(o.ColorScheme)
	config["locale"] = loc

	spec := &vega.Spec{
		Schema:      vega.SchemaURL,
		Description: o.Description,
		Width:       o.Width,
		Height:      o.Height,
		Padding:     o.Padding,
		Background:  map[string]string{"signal": vega.BackgroundColorSignal},
		Config:      config,
		Data:        getTableData(),
		Scales:      getFacetScales(o),
		Signals:     getDefaultSignals(o),
		Marks:       []vega.Mark{},
	}

	if o.Title != "" {
		spec.Title = &vega.Title{Text: o.Title}
	}

	return spec
}

// SpecLocale returns the locale stored in the draft config, or the default.
func SpecLocale(spec *vega.Spec) locale.Locale {
	if loc, ok := spec.Config["locale"].(locale.Locale); ok {
		return loc
	}

	return locale.Get(locale.Code(locale.DefaultCode))
}

func getTableData() []vega.Data {
	return []vega.Data{
		{
			Name:   vega.TableData,
			Values: []any{},
			Transform: []vega.Transform{
				{Type: "identifier", As: vega.MarkIDField},
			},
		},
		{
			Name:   vega.FilteredTableData,
			Source: vega.TableData,
		},
	}
}

func getDefaultSignals(o options.ChartSpecOptions) []vega.Signal {
	opacities := make([]any, len(o.Opacities))
	for i, v := range o.Opacities {
		opacities[i] = v
	}

	hidden := make([]any, len(o.HiddenSeries))
	for i, v := range o.HiddenSeries {
		hidden[i] = v
	}

	var highlighted any
	if o.HighlightedSeries != "" {
		highlighted = o.HighlightedSeries
	}

	return []vega.Signal{
		{Name: vega.BackgroundColorSignal, Value: palette.Color(o.BackgroundColor, o.ColorScheme)},
		{Name: vega.ColorsSignal, Value: palette.Colors(o.Colors, o.ColorScheme)},
		{Name: vega.LineTypesSignal, Value: palette.StrokeDashes(o.LineTypes)},
		{Name: vega.OpacitiesSignal, Value: opacities},
		{Name: vega.HiddenSeriesSignal, Value: hidden},
		{Name: vega.HighlightedItemSignal},
		{Name: vega.HighlightedSeriesSignal, Value: highlighted},
		{Name: vega.SelectedItemSignal},
		{Name: vega.SelectedSeriesSignal},
	}
}

func getFacetScales(o options.ChartSpecOptions) []vega.Scale {
	emptyDomain := func() *vega.Domain {
		return &vega.Domain{Data: vega.TableData, Fields: []string{}}
	}

	opacityScale := vega.Scale{
		Name:    vega.OpacityScale,
		Type:    vega.ScalePoint,
		Domain:  emptyDomain(),
		Range:   []float64{1, 0},
		Padding: vega.Float(1),
	}
	if len(o.Opacities) > 0 {
		opacityScale.Type = vega.ScaleOrdinal
		opacityScale.Range = map[string]string{"signal": vega.OpacitiesSignal}
		opacityScale.Padding = nil
	}

	return []vega.Scale{
		{
			Name:   vega.ColorScale,
			Type:   vega.ScaleOrdinal,
			Domain: emptyDomain(),
			Range:  map[string]string{"signal": vega.ColorsSignal},
		},
		{
			Name:   vega.LineTypeScale,
			Type:   vega.ScaleOrdinal,
			Domain: emptyDomain(),
			Range:  map[string]string{"signal": vega.LineTypesSignal},
		},
		opacityScale,
		{
			Name:   vega.LineWidthScale,
			Type:   vega.ScaleOrdinal,
			Domain: emptyDomain(),
			Range:  []float64{1, 2, 3, 4, 5},
		},
		{
			Name:   vega.SymbolSizeScale,
			Type:   vega.ScaleLinear,
			Domain: emptyDomain(),
			Range:  []float64{24, 400},
			Zero:   vega.Bool(false),
		},
	}
}

// RemoveUnusedFacetScales drops facet scales no mark added a field to.
func RemoveUnusedFacetScales(spec *vega.Spec) {
	facet := map[string]bool{
		vega.ColorScale:      true,
		vega.LineTypeScale:   true,
		vega.OpacityScale:    true,
		vega.LineWidthScale:  true,
		vega.SymbolSizeScale: true,
	}

	kept := spec.Scales[:0]

	for _, s := range spec.Scales {
		if facet[s.Name] {
			if _, ok := GetScaleField(s); !ok {
				continue
			}
		}

		kept = append(kept, s)
	}

	spec.Scales = kept
}

// FinalizeSpec adds the series id derived from the populated facet scales and
// the hidden series filter. It runs once, after every construct is added.
func FinalizeSpec(spec *vega.Spec) {
	fields := FacetFields(spec)

	table := spec.DataSource(vega.TableData)
	if table != nil {
		table.Transform = append(table.Transform, GetSeriesIDTransform(fields))
	}

	filtered := spec.DataSource(vega.FilteredTableData)
	if filtered != nil {
		filtered.Transform = append([]vega.Transform{GetHiddenSeriesFilter()}, filtered.Transform...)
	}
}
