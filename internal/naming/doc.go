// Package naming derives the identifiers used to key data sources, scales,
// signals and marks inside a generated specification.
//
// Rules:
//   - An explicit name is always used verbatim.
//   - A synthesized name is the parent name in camelCase followed by the child
//     construct and its index in PascalCase, e.g. "combo1" + "Line1" -> "combo1Line1".
//   - Case conversion never fails: input without letters or digits is returned unchanged.
package naming
