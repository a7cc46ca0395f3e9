// Package errors provides structured, coded errors for Calyx.
//
// Each registered error carries a unique code (e.g. "C010") that maps to a
// category, a short message, a detailed explanation, and a documentation
// URL. Codes keep diagnostics stable across releases: tooling can match on
// the code while the wording evolves.
//
// # Error Categories
//
//   - runtime: mount and render failures
//   - hydration: server/client markup mismatches
//   - config: calyx.toml problems
//   - cli: command-line tooling failures
//   - deploy: static deployment failures
//
// # Usage
//
//	err := errors.New("C040").
//	    WithSuggestion("render the page with the same component tree the client mounts")
//	errors.PrintError(err)
package errors
