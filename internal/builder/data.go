package builder

import (
	"fmt"
	"strings"

	"chartspec/internal/vega"
)

// AddData returns the data source named d.Name, appending d when absent.
func AddData(spec *vega.Spec, d vega.Data) *vega.Data {
	if existing := spec.DataSource(d.Name); existing != nil {
		return existing
	}

	spec.Data = append(spec.Data, d)

	return &spec.Data[len(spec.Data)-1]
}

// AddTransform appends t to the named data source unless an equal transform
// writing the same outputs is already there.
func AddTransform(spec *vega.Spec, data string, t vega.Transform) {
	d := spec.DataSource(data)
	if d == nil {
		return
	}

	for _, existing := range d.Transform {
		if existing.Type == t.Type && fmt.Sprint(existing.As) == fmt.Sprint(t.As) && t.As != nil {
			return
		}
	}

	d.Transform = append(d.Transform, t)
}

// GetSeriesIDTransform derives the series id from the facet fields. Multiple
// fields are joined with " | ".
func GetSeriesIDTransform(facetFields []string) vega.Transform {
	expr := "''"
	if len(facetFields) > 0 {
		parts := make([]string, len(facetFields))
		for i, f := range facetFields {
			parts[i] = "datum." + f
		}

		expr = strings.Join(parts, ` + " | " + `)
	}

	return vega.Transform{Type: "formula", As: vega.SeriesIDField, Expr: expr}
}

// GetHiddenSeriesFilter removes hidden series from the filtered table.
func GetHiddenSeriesFilter() vega.Transform {
	return vega.Transform{
		Type: "filter",
		Expr: fmt.Sprintf("indexof(%s, datum.%s) === -1", vega.HiddenSeriesSignal, vega.SeriesIDField),
	}
}

// StackFields returns the start and end fields of a stacked metric.
func StackFields(metric string) (start, end string) {
	return metric + "0", metric + "1"
}

// GetStackTransform stacks metric per dimension value, ordered by series.
func GetStackTransform(dimension, metric, order string) vega.Transform {
	start, end := StackFields(metric)

	sortField := vega.SeriesIDField
	if order != "" {
		sortField = order
	}

	return vega.Transform{
		Type:    "stack",
		Groupby: []string{dimension},
		Field:   metric,
		Sort:    &vega.Compare{Field: sortField},
		As:      []string{start, end},
	}
}

// TimeFields returns the start and end fields of a time unit transform.
func TimeFields(dimension string) (start, end string) {
	return dimension + "0", dimension + "1"
}

// AddTimeTransform truncates dimension to time units on the table, once per dimension.
func AddTimeTransform(spec *vega.Spec, dimension string) string {
	start, end := TimeFields(dimension)

	AddTransform(spec, vega.TableData, vega.Transform{
		Type:  "timeunit",
		Field: dimension,
		Units: []string{"year", "month", "date", "hours", "minutes"},
		As:    []string{start, end},
	})

	return start
}
