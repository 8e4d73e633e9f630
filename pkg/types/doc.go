// Package types defines the shared vocabulary of the regkit .reg parser:
// value kinds, the typed error taxonomy, parse options, limits, and the
// diagnostics collected during a parse.
//
// Design goals:
//   - Typed errors with stable categories (format/value-before-key/...).
//   - Every error carries enough context (line, key, value, raw text) for a
//     caller to decide between aborting and skipping.
//   - Never panic on malformed input.
//
// This package has no dependencies beyond the standard library.
package types
