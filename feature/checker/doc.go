// Package checker implements the structural checker feature.
//
// It validates that an expected set of files exists and that source files
// pass three superficial textual checks (brace balance, parenthesis balance,
// package declaration), then verifies the entry-point wiring by substring
// membership. The pure check functions live in the checks subpackage.
//
// # Surfaces
//
//   - CLI: the 'check' command runs one pass (or a watch loop) and renders
//     the report through the console Printer.
//   - HTTP: GET /checks, GET /checks/files and GET /checks/syntax expose the
//     same service as JSON.
//
// The service operates on an afero filesystem, so everything short of the
// watch loop can be exercised against an in-memory filesystem in tests.
package checker
