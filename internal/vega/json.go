package vega

import (
	"bytes"
	"encoding/json"
)

// Marshal encodes v as JSON without escaping '<', '>' and '&', which appear
// in signal expressions.
func Marshal(v any) ([]byte, error) {
	return marshal(v, "")
}

// MarshalIndent is Marshal with indentation.
func MarshalIndent(v any, indent string) ([]byte, error) {
	return marshal(v, indent)
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
