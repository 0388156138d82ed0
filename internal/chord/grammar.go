package chord

import (
	"strings"

	"akordish/internal/pitch"
)

// Symbol is a parsed chord.
type Symbol struct {
	Root pitch.PitchClass
	// RootName is the root as spelled in the source token.
	RootName string
	// Suffix is the quality and extension text, carried through verbatim.
	Suffix string
	Bass   pitch.PitchClass
	// BassName is empty when the chord has no slash bass.
	BassName string
}

// HasBass reports whether the chord names an alternate bass note.
func (s Symbol) HasBass() bool {
	return s.BassName != ""
}

// String serializes the chord using the spelling it was parsed with.
func (s Symbol) String() string {
	root := s.RootName
	if root == "" {
		root = s.Root.Name(pitch.Sharp)
	}
	if !s.HasBass() {
		return root + s.Suffix
	}
	return root + s.Suffix + "/" + s.BassName
}

// Spell returns a copy whose root and bass names follow policy.
func (s Symbol) Spell(policy pitch.SpellingPolicy) Symbol {
	s.RootName = s.Root.Name(policy)
	if s.HasBass() {
		s.BassName = s.Bass.Name(policy)
	}
	return s
}

// Key is the canonical sharp spelling used to look up fingerings.
func (s Symbol) Key() string {
	return s.Spell(pitch.Sharp).String()
}

// DiagramSource looks up a fingering or voicing by canonical chord key.
// Implementations live with the caller; the engine only supplies the key.
type DiagramSource interface {
	Diagram(key string) (string, bool)
}

// Lookup resolves a diagram for s from src.
func Lookup(src DiagramSource, s Symbol) (string, bool) {
	if src == nil {
		return "", false
	}
	return src.Diagram(s.Key())
}

// Parse recognizes token against the strict grammar. The whole token must
// be consumed.
func Parse(token string) (Symbol, bool) {
	return parse(token, false)
}

// LooksLike reports whether token is chord-shaped under the relaxed grammar.
func LooksLike(token string) bool {
	_, ok := parse(token, true)
	return ok
}

// Decompose splits token into root, suffix and bass, trying the strict grammar
// first and falling back to the relaxed one.
func Decompose(token string) (Symbol, bool) {
	if sym, ok := parse(token, false); ok {
		return sym, true
	}
	return parse(token, true)
}

// IsChord reports whether token is a chord under either grammar.
func IsChord(token string) bool {
	_, ok := Decompose(token)
	return ok
}

func parse(token string, relaxed bool) (Symbol, bool) {
	n := pitch.RootPrefix(token)
	if n == 0 {
		return Symbol{}, false
	}
	root, ok := pitch.ClassOf(token[:n])
	if !ok {
		return Symbol{}, false
	}
	sym := Symbol{Root: root, RootName: token[:n]}

	rest := token[n:]
	suffix, tail := scanSuffix(rest, relaxed)
	sym.Suffix = suffix
	if tail == "" {
		return sym, true
	}
	if tail[0] != '/' {
		return Symbol{}, false
	}
	bassText := tail[1:]
	bn := pitch.RootPrefix(bassText)
	if bn == 0 || bn != len(bassText) {
		return Symbol{}, false
	}
	bass, ok := pitch.ClassOf(bassText)
	if !ok {
		return Symbol{}, false
	}
	sym.Bass = bass
	sym.BassName = bassText
	return sym, true
}

// strictWords are tried in order, so longer spellings precede their
// prefixes.
var strictWords = []string{"maj", "min", "dim", "aug", "sus2", "sus4", "sus", "m"}

var relaxedWords = []string{"omit", "alt", "no"}

// scanSuffix consumes suffix alternatives from s and returns the consumed
// prefix and whatever is left. Word alternatives match case-insensitively.
// An alteration may not open the suffix: after a root, "#5" or "b5" would
// read as part of the note name once the root is respelled.
func scanSuffix(s string, relaxed bool) (string, string) {
	i := 0
	for i < len(s) {
		n := suffixElement(s[i:], relaxed, i == 0)
		if n == 0 {
			break
		}
		i += n
	}
	return s[:i], s[i:]
}

func suffixElement(s string, relaxed, leading bool) int {
	if n := digitRun(s); n > 0 {
		return n
	}
	if hasFoldPrefix(s, "add") {
		if n := digitRun(s[3:]); n > 0 {
			return 3 + n
		}
		if !relaxed {
			return 0
		}
	}
	for _, w := range strictWords {
		if hasFoldPrefix(s, w) {
			return len(w)
		}
	}
	switch s[0] {
	case '+':
		return 1
	case '#', 'b':
		// Alterations such as b5, #9, b13.
		if leading {
			return 0
		}
		if n := digitRun(s[1:]); n > 0 {
			return 1 + n
		}
		return 0
	}
	if !relaxed {
		return 0
	}
	for _, w := range relaxedWords {
		if hasFoldPrefix(s, w) {
			return len(w)
		}
	}
	if hasFoldPrefix(s, "add") {
		return 3
	}
	switch {
	case strings.HasPrefix(s, "°"):
		return len("°")
	case strings.HasPrefix(s, "ø"):
		return len("ø")
	case strings.HasPrefix(s, "Δ"):
		return len("Δ")
	}
	switch s[0] {
	case '(', ')', ',', '-', '^', '*', '\'':
		return 1
	case '/':
		// 6/9 style stacked extensions; a slash followed by a note name is a bass.
		if n := digitRun(s[1:]); n > 0 {
			return 1 + n
		}
	}
	return 0
}

func digitRun(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
