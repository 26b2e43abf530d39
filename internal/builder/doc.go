// Package builder adds resolved constructs to a Vega specification draft.
//
// Every Add function takes the draft by pointer and extends it in place.
// Shared resources (data sources, scales, signals) are looked up by name and
// merged rather than replaced, so constructs can be added in any order that
// respects document order for positional semantics. Builders never fail:
// options that do not match the data surface when the specification is
// evaluated.
package builder
