package chord

import (
	"unicode"
	"unicode/utf8"
)

// Span locates a chord token inside a line by byte offsets.
type Span struct {
	Start  int
	End    int
	Symbol Symbol
}

// Text returns the spanned portion of line.
func (s Span) Text(line string) string {
	return line[s.Start:s.End]
}

// IsSeparator reports whether r splits chord tokens on a chord line.
func IsSeparator(r rune) bool {
	return r == '|' || unicode.IsSpace(r)
}

// Tokens splits line on whitespace and '|' bar separators, dropping empty
// tokens. Offsets are preserved so callers can rebuild the line.
func Tokens(line string) []Span {
	var spans []Span
	start := -1
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if IsSeparator(r) {
			if start >= 0 {
				spans = append(spans, Span{Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		spans = append(spans, Span{Start: start, End: len(line)})
	}
	return spans
}

// Find returns every token on line that is a chord under either grammar.
func Find(line string) []Span {
	tokens := Tokens(line)
	spans := tokens[:0]
	for _, tok := range tokens {
		sym, ok := Decompose(tok.Text(line))
		if !ok {
			continue
		}
		tok.Symbol = sym
		spans = append(spans, tok)
	}
	return spans
}
