package chord

import "akordish/internal/pitch"

// Transpose shifts the root and bass by semitones and spells both with policy.
func (s Symbol) Transpose(semitones int, policy pitch.SpellingPolicy) Symbol {
	s.Root = s.Root.Shift(semitones)
	if s.HasBass() {
		s.Bass = s.Bass.Shift(semitones)
	}
	return s.Spell(policy)
}

// TransposeToken shifts a single chord token. Shifts that are a whole number
// of octaves return the token untouched, as do tokens that are not chords.
func TransposeToken(token string, semitones int, policy pitch.SpellingPolicy) string {
	if semitones%pitch.Count == 0 {
		return token
	}
	sym, ok := Decompose(token)
	if !ok {
		return token
	}
	return sym.Transpose(semitones, policy).String()
}
