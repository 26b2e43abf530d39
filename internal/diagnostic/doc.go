// Package diagnostic collects non-fatal notes produced while compiling a
// chart document.
//
// Compilation never fails on a well-formed document. Instead it records:
//   - children placed under a construct that does not accept them
//   - axes that found no scale and were bound to a new default one
//   - locale codes that are unsupported and fell back to en-US
package diagnostic
