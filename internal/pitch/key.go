package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey indicates a key name that could not be parsed.
var ErrUnknownKey = errors.New("unknown key")

// Key is a tonic plus mode, as written on a song sheet.
type Key struct {
	Tonic PitchClass
	// TonicName is the tonic as written, e.g. "Bb" or "F#".
	TonicName string
	Minor     bool
}

// ParseKey parses key names such as "Am", "Bb", "F#m", "C# minor" or
// "Eb major".
func ParseKey(name string) (Key, error) {
	trimmed := strings.TrimSpace(name)
	n := RootPrefix(trimmed)
	if n == 0 {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	tonicName := trimmed[:n]
	tonic, ok := ClassOf(tonicName)
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	mode := strings.TrimSpace(trimmed[n:])
	key := Key{Tonic: tonic, TonicName: tonicName}
	switch {
	case mode == "", mode == "M", strings.EqualFold(mode, "maj"), strings.EqualFold(mode, "major"):
	case mode == "m", mode == "-", strings.EqualFold(mode, "min"), strings.EqualFold(mode, "minor"):
		key.Minor = true
	default:
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return key, nil
}

// String renders the key in short form ("Bbm", "F#").
func (k Key) String() string {
	name := k.TonicName
	if name == "" {
		name = k.Tonic.Name(Sharp)
	}
	if k.Minor {
		return name + "m"
	}
	return name
}

// Flat reports whether the tonic is written with a flat.
func (k Key) Flat() bool {
	return strings.Contains(k.TonicName, "b")
}

// Sharp reports whether the tonic is written with a sharp.
func (k Key) Sharp() bool {
	return strings.Contains(k.TonicName, "#")
}

// Interval returns the semitone shift that moves from to to, folded into
// [-5, +6] so the smaller movement wins.
func Interval(from, to Key) int {
	d := int(to.Tonic.Shift(-int(from.Tonic)))
	if d > Count/2 {
		d -= Count
	}
	return d
}

// IntervalBetween parses both key names and returns Interval.
func IntervalBetween(from, to string) (int, error) {
	fk, err := ParseKey(from)
	if err != nil {
		return 0, err
	}
	tk, err := ParseKey(to)
	if err != nil {
		return 0, err
	}
	return Interval(fk, tk), nil
}
