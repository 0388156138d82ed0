package sheet

import (
	"strings"

	"akordish/internal/chord"
	"akordish/internal/pitch"
)

// TransposeBlockLine shifts every chord token on line, leaving whitespace,
// bar separators and unrecognized tokens byte for byte. Tokens inside
// [...] are left for TransposeInlineLine.
func TransposeBlockLine(line string, semitones int, policy pitch.SpellingPolicy) string {
	return replaceSpans(line, BlockSpans(line), semitones, policy)
}

// TransposeInlineLine shifts the contents of every [...] span on line.
// Brackets and all text outside them are preserved; an unclosed bracket
// leaves the remainder untouched.
func TransposeInlineLine(line string, semitones int, policy pitch.SpellingPolicy) string {
	return replaceSpans(line, InlineSpans(line), semitones, policy)
}

func replaceSpans(line string, spans []chord.Span, semitones int, policy pitch.SpellingPolicy) string {
	if len(spans) == 0 || semitones%pitch.Count == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + len(spans))
	last := 0
	for _, span := range spans {
		b.WriteString(line[last:span.Start])
		b.WriteString(span.Symbol.Transpose(semitones, policy).String())
		last = span.End
	}
	b.WriteString(line[last:])
	return b.String()
}

// bracketRegions returns [open, close] byte offsets of each closed [...]
// pair on line. Brackets do not nest.
func bracketRegions(line string) [][2]int {
	var regions [][2]int
	for i := 0; i < len(line); {
		open := strings.IndexByte(line[i:], '[')
		if open < 0 {
			break
		}
		open += i
		closing := strings.IndexByte(line[open+1:], ']')
		if closing < 0 {
			break
		}
		closing += open + 1
		regions = append(regions, [2]int{open, closing})
		i = closing + 1
	}
	return regions
}

// InlineSpans returns the chords found inside square brackets on line. Span
// offsets cover the chord text only, excluding brackets and any padding
// spaces inside them.
func InlineSpans(line string) []chord.Span {
	var spans []chord.Span
	for _, region := range bracketRegions(line) {
		inner := line[region[0]+1 : region[1]]
		core := strings.TrimSpace(inner)
		sym, ok := chord.Decompose(core)
		if !ok {
			continue
		}
		start := region[0] + 1 + strings.Index(inner, core)
		spans = append(spans, chord.Span{Start: start, End: start + len(core), Symbol: sym})
	}
	return spans
}

// BlockSpans returns the chord tokens on line that sit outside brackets.
func BlockSpans(line string) []chord.Span {
	spans := chord.Find(line)
	regions := bracketRegions(line)
	if len(spans) == 0 || len(regions) == 0 {
		return spans
	}
	kept := spans[:0]
	for _, span := range spans {
		if !insideRegion(span, regions) {
			kept = append(kept, span)
		}
	}
	return kept
}

func insideRegion(span chord.Span, regions [][2]int) bool {
	for _, r := range regions {
		if span.Start > r[0] && span.End <= r[1] {
			return true
		}
	}
	return false
}

// Spans returns every chord on a classified line: block tokens when it is a
// chord line, plus any bracketed chords. Spans are ordered by offset.
func Spans(line Line) []chord.Span {
	inline := InlineSpans(line.Raw)
	if line.Kind != ChordLine {
		return inline
	}
	block := BlockSpans(line.Raw)
	if len(inline) == 0 {
		return block
	}
	merged := make([]chord.Span, 0, len(block)+len(inline))
	i, j := 0, 0
	for i < len(block) || j < len(inline) {
		if j >= len(inline) || (i < len(block) && block[i].Start < inline[j].Start) {
			merged = append(merged, block[i])
			i++
		} else {
			merged = append(merged, inline[j])
			j++
		}
	}
	return merged
}
