package sheet

import (
	"strings"

	"akordish/internal/chord"
	"akordish/internal/pitch"
)

// Document is a sheet split into classified lines. String reproduces the
// source exactly, including CRLF terminators and a missing final newline.
type Document struct {
	Lines []Line
}

// Parse splits text on '\n' and classifies every line with c.
func (c Classifier) Parse(text string) Document {
	parts := strings.Split(text, "\n")
	doc := Document{Lines: make([]Line, 0, len(parts))}
	for _, part := range parts {
		cr := strings.HasSuffix(part, "\r")
		if cr {
			part = part[:len(part)-1]
		}
		line := c.Classify(part)
		line.cr = cr
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

// Parse uses the default classifier.
func Parse(text string) Document {
	return DefaultClassifier().Parse(text)
}

// String joins the lines back with their original terminators.
func (d Document) String() string {
	var b strings.Builder
	for i, line := range d.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line.Raw)
		if line.cr {
			b.WriteByte('\r')
		}
	}
	return b.String()
}

// Chords lists every chord in reading order across both notation styles.
func (d Document) Chords() []chord.Symbol {
	var out []chord.Symbol
	for _, line := range d.Lines {
		for _, span := range Spans(line) {
			out = append(out, span.Symbol)
		}
	}
	return out
}

// Stats summarizes one format pass.
type Stats struct {
	ChordLines    int `json:"chord_lines"`
	LyricLines    int `json:"lyric_lines"`
	EmptyLines    int `json:"empty_lines"`
	BlockChords   int `json:"block_chords"`
	InlineChords  int `json:"inline_chords"`
	RelaxedChords int `json:"relaxed_chords"`
}

// Chords is the total number of chords seen.
func (s Stats) Chords() int {
	return s.BlockChords + s.InlineChords
}

// Formatter transposes whole documents.
type Formatter struct {
	Classifier Classifier
}

// NewFormatter returns a formatter that classifies with c.
func NewFormatter(c Classifier) Formatter {
	return Formatter{Classifier: c}
}

// Format transposes document by semitones using policy.
func (f Formatter) Format(document string, semitones int, policy pitch.SpellingPolicy) string {
	out, _ := f.FormatWithStats(document, semitones, policy)
	return out
}

// FormatWithStats is Format plus a summary of what was classified and
// transposed. A shift that is a whole number of octaves returns document
// unchanged.
func (f Formatter) FormatWithStats(document string, semitones int, policy pitch.SpellingPolicy) (string, Stats) {
	doc := f.Classifier.Parse(document)
	stats := doc.stats()
	if semitones%pitch.Count == 0 {
		return document, stats
	}
	for i, line := range doc.Lines {
		raw := line.Raw
		if line.Kind == ChordLine {
			raw = TransposeBlockLine(raw, semitones, policy)
		}
		doc.Lines[i].Raw = TransposeInlineLine(raw, semitones, policy)
	}
	return doc.String(), stats
}

func (d Document) stats() Stats {
	var s Stats
	for _, line := range d.Lines {
		switch line.Kind {
		case Empty:
			s.EmptyLines++
		case ChordLine:
			s.ChordLines++
			for _, span := range BlockSpans(line.Raw) {
				s.BlockChords++
				if _, ok := chord.Parse(span.Text(line.Raw)); !ok {
					s.RelaxedChords++
				}
			}
		case LyricLine:
			s.LyricLines++
		}
		for _, span := range InlineSpans(line.Raw) {
			s.InlineChords++
			if _, ok := chord.Parse(span.Text(line.Raw)); !ok {
				s.RelaxedChords++
			}
		}
	}
	return s
}

// Format transposes document with the default classifier.
func Format(document string, semitones int, policy pitch.SpellingPolicy) string {
	return NewFormatter(DefaultClassifier()).Format(document, semitones, policy)
}
