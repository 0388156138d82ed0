// Package main hosts the akordish CLI entrypoint and command graph.
//
// The Cobra command tree reads chord sheets from files or stdin, transposes
// them through the transpose service, reports how lines were classified and
// which spelling would be chosen, and manages the SQLite song catalog. It
// centralizes configuration resolution and logger setup so subcommands only
// deal with input, output and flags.
//
// Keep this package lean: add behaviour to the internal packages first, then
// surface it through a command or flag here.
package main
