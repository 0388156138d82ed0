// Package logging assembles structured slog loggers and formatting helpers used
// across akordish commands.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so transposition requests can
// tag log lines with their correlation IDs. The package also provides a no-op
// logger for tests and library callers that do not want output.
//
// Logs go to stderr by default so transposed sheets written to stdout stay
// clean when piped.
package logging
