// Package vega defines the specification consumed by the Vega rendering
// engine: data sources, scales, signals, marks, axes, legends, title and config.
//
// Only the subset of the grammar produced by the builders is modeled. All
// lists are ordered; lookups are by name, and the first entry with a given
// name wins.
package vega
