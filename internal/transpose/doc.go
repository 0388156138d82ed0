// Package transpose serves whole-sheet transposition requests.
//
// A Service wraps the pure sheet formatter with the policy the CLI and the
// catalog need: it derives the shift from a target key when one is given,
// folds the shift into the configured window, resolves the sharp/flat
// spelling once per request, and logs the spelling decision with a
// correlation ID.
package transpose
