// Package options defines, for every construct, the public Options produced
// by the adapters and the resolved SpecOptions consumed by the builders.
//
// Options mirror the element props: a nil pointer means "not provided".
// Children are already partitioned into typed arrays, never nil.
//
// SpecOptions have no optional fields. The Apply*Defaults functions are the
// only way to obtain them; they never mutate their input, and resolving
// Options whose fields hold the default values yields the same SpecOptions as
// resolving empty Options.
package options
