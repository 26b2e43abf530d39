// Package adapter converts chart elements into options.
//
// Adapters copy through only the props that were set, derive the interaction
// flags from callback props and partition children by kind in document order.
// They never apply defaults; see package options for that stage.
package adapter
