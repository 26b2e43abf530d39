package naming

import "strconv"

// CombineNames joins a parent and a child name. The parent is camelCased and
// the child PascalCased only when both are present; a missing side yields the
// other side unchanged.
func CombineNames(parent, child string) string {
	switch {
	case parent == "" && child == "":
		return ""
	case parent == "":
		return child
	case child == "":
		return parent
	}

	return ToCamelCase(parent) + ToPascalCase(child)
}

// Indexed returns base followed by index, e.g. ("bar", 0) -> "bar0".
func Indexed(base string, index int) string {
	return base + strconv.Itoa(index)
}

// ChildName synthesizes the name of the index-th child of kind under parent,
// e.g. ("bar0", "Trendline", 1) -> "bar0Trendline1".
func ChildName(parent, kind string, index int) string {
	return CombineNames(parent, Indexed(kind, index))
}

// Resolve returns explicit when set, otherwise the synthesized fallback.
func Resolve(explicit *string, fallback string) string {
	if explicit != nil && *explicit != "" {
		return *explicit
	}

	return fallback
}
