package vega

import "encoding/json"

// Encode holds the property sets of a mark.
type Encode struct {
	Enter  EncodeEntry `json:"enter,omitempty"`
	Update EncodeEntry `json:"update,omitempty"`
}

// EncodeEntry maps a visual channel to its production rule.
type EncodeEntry map[string]ProductionRule

// GuideEncode maps a guide element (labels, symbols, entries, title) to its encoding block.
type GuideEncode map[string]*GuideBlock

// GuideBlock is the encoding of one guide element.
type GuideBlock struct {
	Name        string      `json:"name,omitempty"`
	Interactive *bool       `json:"interactive,omitempty"`
	Enter       EncodeEntry `json:"enter,omitempty"`
	Update      EncodeEntry `json:"update,omitempty"`
}

// ProductionRule is an ordered list of value references. The first entry
// whose test passes (or that has no test) is used.
type ProductionRule []ValueRef

// ValueRef is a single value reference, optionally guarded by a test.
type ValueRef struct {
	Test   string   `json:"test,omitempty"`
	Value  any      `json:"value,omitempty"`
	Signal string   `json:"signal,omitempty"`
	Field  string   `json:"field,omitempty"`
	Scale  string   `json:"scale,omitempty"`
	Band   *float64 `json:"band,omitempty"`
	Offset any      `json:"offset,omitempty"`
	Mult   any      `json:"mult,omitempty"`
}

// HasTest reports whether the reference is conditional.
func (v ValueRef) HasTest() bool {
	return v.Test != ""
}

// Domain is a scale domain: a data reference (field or fields), a signal, or literal values.
type Domain struct {
	Data   string   `json:"data,omitempty"`
	Field  string   `json:"field,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Signal string   `json:"signal,omitempty"`
	Values []any    `json:"-"`
}

// MarshalJSON writes literal domains as a bare array.
func (d Domain) MarshalJSON() ([]byte, error) {
	if d.Values != nil {
		return json.Marshal(d.Values)
	}

	type plain Domain

	return json.Marshal(plain(d))
}

// Value returns a static value reference.
func Value(v any) ValueRef {
	return ValueRef{Value: v}
}

// SignalRef returns a signal value reference.
func SignalRef(expr string) ValueRef {
	return ValueRef{Signal: expr}
}

// FieldRef returns a data field reference.
func FieldRef(field string) ValueRef {
	return ValueRef{Field: field}
}

// ScaledField returns a reference to field passed through scale.
func ScaledField(scale, field string) ValueRef {
	return ValueRef{Scale: scale, Field: field}
}

// Rule builds a production rule from refs.
func Rule(refs ...ValueRef) ProductionRule {
	return ProductionRule(refs)
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
