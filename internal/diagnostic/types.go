package diagnostic

import (
	"fmt"
	"strings"

	"chartspec/internal/common"
)

// Diagnostic codes.
const (
	CodeUnknownChild     = "unknown_child"
	CodeAxisDefaultScale = "axis_default_scale"
	CodeLocaleFallback   = "locale_fallback"
)

// Diagnostics holds all diagnostic information from one compilation.
// Compilation is total, so there is no error tier.
type Diagnostics struct {
	Warnings []Diagnostic `json:"warnings,omitempty"`
	Infos    []Diagnostic `json:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Construct names the construct this relates to (if any).
	Construct string `json:"construct,omitempty"`
	// Path locates the element in the document tree (if any).
	Path string `json:"path,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// MarshalText writes the severity name.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, construct, path string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Construct:   construct,
		Path:        path,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, construct, path string, suggestions ...string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:    DiagnosticInfo,
		Code:        code,
		Message:     message,
		Construct:   construct,
		Path:        path,
		Suggestions: suggestions,
	})
}

// IsEmpty reports whether nothing was recorded.
func (d *Diagnostics) IsEmpty() bool {
	return len(d.Warnings) == 0 && len(d.Infos) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, warnings first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Warnings)+len(d.Infos))
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Codes lists the code of every diagnostic, warnings first.
func (d *Diagnostics) Codes() []string {
	all := d.All()

	codes := make([]string, len(all))
	for i, diag := range all {
		codes[i] = diag.Code
	}

	return codes
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Construct != "" {
		prefix = append(prefix, "["+d.Construct+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
