// Package compile turns a chart tree into a Vega specification.
//
// A Compiler adapts every construct, resolves its defaults and hands it to
// the matching builder. Marks are added first, in document order, so that
// axes and legends can read the scales they created. Guides follow, then
// titles, and the draft is finalized once at the end.
//
// Compilation itself never fails. Notes about the document, such as children
// a construct ignores, are returned as diagnostics next to the specification.
package compile
