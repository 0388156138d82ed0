package sheet

import (
	"strings"
	"unicode"

	"akordish/internal/chord"
)

// Kind classifies a single line of a sheet.
type Kind int

const (
	Empty Kind = iota
	ChordLine
	LyricLine
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case ChordLine:
		return "chords"
	case LyricLine:
		return "lyrics"
	default:
		return "unknown"
	}
}

// Line is one classified line. Raw excludes the line terminator.
type Line struct {
	Kind Kind
	Raw  string

	cr bool
}

// DefaultThreshold is the share of chord tokens at which a line counts as a
// chord line.
const DefaultThreshold = 0.5

// Classifier decides between chord and lyric lines by majority vote over
// tokens.
type Classifier struct {
	// Threshold is the minimum chord-token share, inclusive.
	Threshold float64
	// Relaxed lets tokens that only match the relaxed grammar count as chords.
	Relaxed bool
}

// DefaultClassifier returns the classifier used by the package-level helpers.
func DefaultClassifier() Classifier {
	return Classifier{Threshold: DefaultThreshold, Relaxed: true}
}

// Classify uses the default classifier.
func Classify(raw string) Line {
	return DefaultClassifier().Classify(raw)
}

// Classify labels raw as empty, a chord line or a lyric line.
func (c Classifier) Classify(raw string) Line {
	line := Line{Raw: raw}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		line.Kind = Empty
		return line
	}
	if hasProse(trimmed) {
		line.Kind = LyricLine
		return line
	}
	chords, total := c.Ratio(trimmed)
	if total > 0 && float64(chords) >= c.threshold()*float64(total) {
		line.Kind = ChordLine
	} else {
		line.Kind = LyricLine
	}
	return line
}

// Ratio counts chord tokens and total tokens on raw.
func (c Classifier) Ratio(raw string) (chords, total int) {
	for _, tok := range chord.Tokens(raw) {
		total++
		if c.isChord(tok.Text(raw)) {
			chords++
		}
	}
	return chords, total
}

func (c Classifier) threshold() float64 {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return DefaultThreshold
	}
	return c.Threshold
}

func (c Classifier) isChord(token string) bool {
	if _, ok := chord.Parse(token); ok {
		return true
	}
	return c.Relaxed && chord.LooksLike(token)
}

// hasProse reports any letter outside the Latin script. Lyrics in Hebrew,
// Arabic, Cyrillic and so on never form a chord line.
func hasProse(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.Is(unicode.Latin, r) && !chordGlyph(r) {
			return true
		}
	}
	return false
}

// chordGlyph is the one non-Latin letter the relaxed grammar accepts.
func chordGlyph(r rune) bool {
	return r == 'Δ'
}
