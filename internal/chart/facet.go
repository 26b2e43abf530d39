package chart

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Facet binds a visual channel either to a data field (scaled) or to a static value.
// YAML formats supported:
//   - Field name: "series"
//   - Static value: {value: "gray-800"}
type Facet[T any] struct {
	field  string
	value  T
	static bool
}

// FieldFacet returns a facet that scales the named data field.
func FieldFacet[T any](field string) *Facet[T] {
	return &Facet[T]{field: field}
}

// StaticFacet returns a facet with a fixed value.
func StaticFacet[T any](v T) *Facet[T] {
	return &Facet[T]{value: v, static: true}
}

// IsStatic reports whether the facet holds a fixed value.
func (f Facet[T]) IsStatic() bool {
	return f.static
}

// Field returns the data field name; empty for static facets.
func (f Facet[T]) Field() string {
	return f.field
}

// Value returns the static value; the zero value for field facets.
func (f Facet[T]) Value() T {
	return f.value
}

// String returns the field name or a rendering of the static value.
func (f Facet[T]) String() string {
	if f.static {
		return fmt.Sprintf("{value: %v}", f.value)
	}

	return f.field
}

// UnmarshalYAML implements custom YAML unmarshaling for Facet.
func (f *Facet[T]) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var field string
		if err := node.Decode(&field); err != nil {
			return err
		}

		*f = Facet[T]{field: field}

		return nil

	case yaml.MappingNode:
		var raw struct {
			Value *T `yaml:"value"`
		}

		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("invalid static facet: %w", err)
		}

		if raw.Value == nil {
			return fmt.Errorf("static facet at line %d has no value", node.Line)
		}

		*f = Facet[T]{value: *raw.Value, static: true}

		return nil

	default:
		return fmt.Errorf("expected field name or {value: ...}, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Facet.
func (f Facet[T]) MarshalYAML() (any, error) {
	if f.static {
		return map[string]T{"value": f.value}, nil
	}

	return f.field, nil
}

// ColorFacet is a color bound to a field or a static color name.
type ColorFacet = Facet[string]

// LineTypeFacet is a line type bound to a field or a static dash name.
type LineTypeFacet = Facet[string]

// NumericFacet is a numeric channel (opacity, line width, size) bound to a field or a static number.
type NumericFacet = Facet[float64]
