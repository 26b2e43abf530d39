package builder

import (
	"fmt"

	"chartspec/internal/vega"
)

// addDualMetricAxisData splits the series of markName: the first series is
// measured on the primary scale and the rest on the secondary one. It binds
// the extent of valueField per side to the domain signals and returns the
// names plus the test selecting the primary series.
func addDualMetricAxisData(spec *vega.Spec, markName, base, channel string, extentFields ...string) (DualAxisScaleNames, string) {
	names := AddDualMetricScales(spec, base, channel)

	seriesData := markName + "_series"
	firstSignal := markName + "_firstRscSeriesId"

	AddData(spec, vega.Data{
		Name:   seriesData,
		Source: vega.FilteredTableData,
		Transform: []vega.Transform{
			{Type: "aggregate", Groupby: []string{vega.SeriesIDField}},
		},
	})
	AddSignal(spec, vega.Signal{
		Name:   firstSignal,
		Update: fmt.Sprintf("length(data('%s')) > 0 ? data('%s')[0].%s : null", seriesData, seriesData, vega.SeriesIDField),
	})

	test := fmt.Sprintf("datum.%s === %s", vega.SeriesIDField, firstSignal)

	for _, side := range []struct {
		data, filter, signal string
	}{
		{markName + "_primaryData", test, names.PrimaryDomain},
		{markName + "_secondaryData", "!(" + test + ")", names.SecondaryDomain},
	} {
		transforms := []vega.Transform{{Type: "filter", Expr: side.filter}}
		field := extentFields[0]

		if len(extentFields) > 1 {
			field = markName + "_extentValue"
			transforms = append(transforms, vega.Transform{
				Type: "formula",
				As:   field,
				Expr: extentMaxExpr(extentFields),
			})
		}

		transforms = append(transforms, vega.Transform{Type: "extent", Field: field, Signal: side.signal})

		AddData(spec, vega.Data{Name: side.data, Source: vega.FilteredTableData, Transform: transforms})
	}

	return names, test
}

func extentMaxExpr(fields []string) string {
	expr := "max("
	for i, f := range fields {
		if i > 0 {
			expr += ", "
		}

		expr += "datum." + f
	}

	return expr + ")"
}

// dualScaledRule measures field on the primary scale for the primary series
// and on the secondary scale otherwise.
func dualScaledRule(names DualAxisScaleNames, test, field string) vega.ProductionRule {
	primary := vega.ScaledField(names.PrimaryScale, field)
	primary.Test = test

	return vega.Rule(primary, vega.ScaledField(names.SecondaryScale, field))
}

// dualScaledValueRule is dualScaledRule for a constant domain value.
func dualScaledValueRule(names DualAxisScaleNames, test string, value any) vega.ProductionRule {
	return vega.Rule(
		vega.ValueRef{Test: test, Scale: names.PrimaryScale, Value: value},
		vega.ValueRef{Scale: names.SecondaryScale, Value: value},
	)
}
