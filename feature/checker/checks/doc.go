// Package checks contains the pure validation functions of the structural
// checker.
//
// The checks are deliberately superficial. They do not parse anything into a
// syntax tree; they count delimiters and search for substrings, which is
// enough to tell whether a scaffolded command has been filled in at all.
//
// # Checks Provided
//
//   - FileExists: boolean presence check, never errors.
//   - CheckSyntax: brace balance, parenthesis balance and a line-anchored
//     package declaration, evaluated in that order.
//   - CheckEntrypoint: substring membership in the entry-point file.
//   - Run: one linear pass over a Manifest producing a Report.
//
// All functions operate on an afero.Fs so tests can run against an in-memory
// filesystem.
package checks
