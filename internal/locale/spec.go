package locale

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Spec selects a locale. Exactly one form is used:
//   - Code: one code for both tables, e.g. "fr-FR"
//   - Number/Time: independent selections, each a code or a definition
type Spec struct {
	Code   string
	Number *NumberSpec
	Time   *TimeSpec
}

// NumberSpec selects the number table by code or supplies it directly.
type NumberSpec struct {
	Code       string
	Definition *NumberLocale
}

// TimeSpec selects the time table by code or supplies it directly.
type TimeSpec struct {
	Code       string
	Definition *TimeLocale
}

// Code returns a Spec using code for both tables.
func Code(code string) Spec {
	return Spec{Code: code}
}

// Codes returns a Spec with independent number and time codes.
func Codes(number, time string) Spec {
	return Spec{Number: &NumberSpec{Code: number}, Time: &TimeSpec{Code: time}}
}

// Definitions returns a Spec that passes both definitions through.
func Definitions(number NumberLocale, time TimeLocale) Spec {
	return Spec{Number: &NumberSpec{Definition: &number}, Time: &TimeSpec{Definition: &time}}
}

// IsZero reports whether no selection was made.
func (s Spec) IsZero() bool {
	return s.Code == "" && s.Number == nil && s.Time == nil
}

// UnmarshalYAML accepts either a code string or a {number, time} map.
//
//	locale: fr-FR
//	locale: {number: fr-FR, time: en-US}
//	locale: {number: {decimal: ",", thousands: ".", grouping: [3], currency: ["", "€"]}}
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&s.Code)

	case yaml.MappingNode:
		var raw struct {
			Number *NumberSpec `yaml:"number"`
			Time   *TimeSpec   `yaml:"time"`
		}

		if err := node.Decode(&raw); err != nil {
			return err
		}

		s.Number = raw.Number
		s.Time = raw.Time

		return nil

	default:
		return fmt.Errorf("locale: expected code or map, got %v", node.Kind)
	}
}

// UnmarshalYAML accepts either a code string or a number definition map.
func (n *NumberSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&n.Code)

	case yaml.MappingNode:
		var def NumberLocale
		if err := node.Decode(&def); err != nil {
			return fmt.Errorf("locale: invalid number definition: %w", err)
		}

		n.Definition = &def

		return nil

	default:
		return fmt.Errorf("locale: expected number code or definition, got %v", node.Kind)
	}
}

// UnmarshalYAML accepts either a code string or a time definition map.
func (t *TimeSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&t.Code)

	case yaml.MappingNode:
		var def TimeLocale
		if err := node.Decode(&def); err != nil {
			return fmt.Errorf("locale: invalid time definition: %w", err)
		}

		t.Definition = &def

		return nil

	default:
		return fmt.Errorf("locale: expected time code or definition, got %v", node.Kind)
	}
}
