package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"akordish/internal/sheet"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
)

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func parseColorMode(value string) (colorMode, error) {
	switch mode := colorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "", colorAuto:
		return colorAuto, nil
	case colorAlways, colorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("--color: unsupported value %q (want auto, always, or never)", value)
	}
}

func (m colorMode) enabled(writer io.Writer) bool {
	switch m {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return shouldColorize(writer)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// highlightChords wraps every chord span in bold cyan.
func highlightChords(text string, classifier sheet.Classifier) string {
	doc := classifier.Parse(text)
	for i, line := range doc.Lines {
		spans := sheet.Spans(line)
		if len(spans) == 0 {
			continue
		}
		var b strings.Builder
		last := 0
		for _, span := range spans {
			b.WriteString(line.Raw[last:span.Start])
			b.WriteString(ansiBold + ansiCyan)
			b.WriteString(line.Raw[span.Start:span.End])
			b.WriteString(ansiReset)
			last = span.End
		}
		b.WriteString(line.Raw[last:])
		doc.Lines[i].Raw = b.String()
	}
	return doc.String()
}
