// Package spelling decides whether transposed chords are written with sharps
// or flats.
//
// A song's declared key wins when it parses. Otherwise the accidentals
// already present in the sheet vote, and sharps win ties.
package spelling

import (
	"akordish/internal/pitch"
)

// Source names the rule that produced a decision.
type Source string

const (
	SourceKey      Source = "key"
	SourceDocument Source = "document"
	SourceDefault  Source = "default"
)

// Decision is a resolved policy with the evidence behind it.
type Decision struct {
	Policy pitch.SpellingPolicy
	Source Source
	Flats  int
	Sharps int
}

// Counts tallies the two-character patterns [A-G]b and [A-G]# in document.
func Counts(document string) (flats, sharps int) {
	for i := 0; i+1 < len(document); i++ {
		c := document[i]
		if c < 'A' || c > 'G' {
			continue
		}
		switch document[i+1] {
		case 'b':
			flats++
		case '#':
			sharps++
		}
	}
	return flats, sharps
}

// Decide applies the rules in order: a parseable key name decides by its
// accidental; otherwise flats must outnumber sharps in the document.
func Decide(document, originalKey string) Decision {
	if key, err := pitch.ParseKey(originalKey); err == nil {
		policy := pitch.Sharp
		if key.Flat() {
			policy = pitch.Flat
		}
		return Decision{Policy: policy, Source: SourceKey}
	}

	flats, sharps := Counts(document)
	d := Decision{Policy: pitch.Sharp, Source: SourceDefault, Flats: flats, Sharps: sharps}
	if flats == 0 && sharps == 0 {
		return d
	}
	d.Source = SourceDocument
	if flats > sharps {
		d.Policy = pitch.Flat
	}
	return d
}

// PreferFlat reports whether transposed output should use flats.
func PreferFlat(document, originalKey string) bool {
	return Decide(document, originalKey).Policy == pitch.Flat
}

// Policy is Decide reduced to the policy alone.
func Policy(document, originalKey string) pitch.SpellingPolicy {
	return Decide(document, originalKey).Policy
}
