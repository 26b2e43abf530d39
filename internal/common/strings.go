package common

import "strings"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// FirstNonEmpty returns the first value that is not blank, or "" if all are.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
