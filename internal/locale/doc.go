// Package locale resolves number and time formatting locales for the
// rendering engine's config.
//
// Number and time tables are looked up independently: a code may be supported
// for one and not the other, and each unsupported slot falls back to en-US on
// its own. Explicit definitions are passed through untouched.
//
// The tables are embedded JSON, parsed once and read-only afterwards.
package locale
