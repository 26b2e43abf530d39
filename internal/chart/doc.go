// Package chart defines the declarative element tree that describes a chart.
//
// Elements are plain tagged values: each construct is a struct implementing
// Element, and parents carry their nested constructs in a Children list.
// Elements render nothing; they only carry configuration for the adapters.
//
// Optional props are pointers (or nil slices, or nil facets) so that "not
// provided" stays distinguishable from an explicit value equal to the default.
//
// A tree can be built in Go or loaded from a YAML document:
//
//	width: 600
//	data:
//	  - {datetime: 1667890800000, people: 5, adoptionRate: 0.5}
//	children:
//	  - combo:
//	      name: combo1
//	      dimension: datetime
//	      children:
//	        - bar: {metric: people}
//	        - line: {metric: adoptionRate}
//	  - axis: {position: bottom}
//	  - legend: {highlight: true}
//
// Each child is a single-key map whose key is the construct tag (see KindFromTag).
// Unknown tags decode to Unknown so that callers can ignore them.
package chart
