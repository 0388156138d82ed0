// Package textutil provides small text helpers shared by the catalog and CLI:
// whitespace normalization for titles and filename sanitization for exported
// sheets.
package textutil
