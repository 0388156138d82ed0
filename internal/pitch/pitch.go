package pitch

import "strings"

// PitchClass is a pitch in [0,11], C = 0.
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Count is the number of pitch classes in an octave.
const Count = 12

// SpellingPolicy selects the enharmonic name table.
type SpellingPolicy int

const (
	// Sharp spells accidentals with '#'.
	Sharp SpellingPolicy = iota
	// Flat spells accidentals with 'b'.
	Flat
)

var (
	sharpNames = [Count]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [Count]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// byName indexes every accepted spelling, including the enharmonic naturals
// B#, Cb, E# and Fb.
var byName = func() map[string]PitchClass {
	m := make(map[string]PitchClass, 2*Count+4)
	for i := 0; i < Count; i++ {
		m[sharpNames[i]] = PitchClass(i)
		m[flatNames[i]] = PitchClass(i)
	}
	m["B#"] = C
	m["Cb"] = B
	m["E#"] = F
	m["Fb"] = E
	return m
}()

// ClassOf resolves a note name to its pitch class. Unknown names report false.
func ClassOf(name string) (PitchClass, bool) {
	pc, ok := byName[name]
	return pc, ok
}

// Name returns the display name of pc under policy. Values outside [0,11]
// are reduced first so the function is total.
func (pc PitchClass) Name(policy SpellingPolicy) string {
	pc = pc.Shift(0)
	if policy == Flat {
		return flatNames[pc]
	}
	return sharpNames[pc]
}

// Shift moves pc by semitones, wrapping in both directions.
func (pc PitchClass) Shift(semitones int) PitchClass {
	return PitchClass(((int(pc)+semitones)%Count + Count) % Count)
}

// IsNatural reports whether pc has the same name in both tables.
func (pc PitchClass) IsNatural() bool {
	pc = pc.Shift(0)
	return sharpNames[pc] == flatNames[pc]
}

// String implements fmt.Stringer using sharp spelling.
func (pc PitchClass) String() string {
	return pc.Name(Sharp)
}

// String returns "sharp" or "flat".
func (p SpellingPolicy) String() string {
	if p == Flat {
		return "flat"
	}
	return "sharp"
}

// ParsePolicy accepts "sharp"/"sharps"/"#" and "flat"/"flats"/"b".
func ParsePolicy(value string) (SpellingPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sharp", "sharps", "#":
		return Sharp, true
	case "flat", "flats", "b":
		return Flat, true
	default:
		return Sharp, false
	}
}

// RootPrefix returns the length in bytes of the note name at the start of s:
// an uppercase letter A-G optionally followed by '#' or 'b'. Zero means s
// does not start with a note name.
func RootPrefix(s string) int {
	if s == "" || s[0] < 'A' || s[0] > 'G' {
		return 0
	}
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		return 2
	}
	return 1
}
