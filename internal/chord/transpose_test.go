package chord

import (
	"testing"

	"akordish/internal/pitch"
)

func TestTransposeToken(t *testing.T) {
	tests := []struct {
		token  string
		n      int
		policy pitch.SpellingPolicy
		want   string
	}{
		{"Am7", 2, pitch.Sharp, "Bm7"},
		{"G/B", -1, pitch.Flat, "Gb/Bb"},
		{"G/B", -1, pitch.Sharp, "F#/A#"},
		{"Am", 3, pitch.Sharp, "Cm"},
		{"G", 3, pitch.Sharp, "A#"},
		{"G", 3, pitch.Flat, "Bb"},
		{"Bbmaj7", 2, pitch.Sharp, "Cmaj7"},
		{"C#m", 1, pitch.Flat, "Dm"},
		{"Ebsus4", -3, pitch.Sharp, "Csus4"},
		{"C6/9", 5, pitch.Flat, "F6/9"},
		{"Am", 14, pitch.Sharp, "Bm"},
		{"Am", -10, pitch.Sharp, "Bm"},
	}
	for _, tt := range tests {
		if got := TransposeToken(tt.token, tt.n, tt.policy); got != tt.want {
			t.Errorf("TransposeToken(%q, %d, %s) = %q, want %q", tt.token, tt.n, tt.policy, got, tt.want)
		}
	}
}

func TestTransposeTokenIdentityOnZeroShift(t *testing.T) {
	for _, token := range []string{"Db", "C#", "Gb/Bb", "Am7"} {
		for _, n := range []int{0, 12, -24} {
			if got := TransposeToken(token, n, pitch.Sharp); got != token {
				t.Errorf("TransposeToken(%q, %d) = %q, want unchanged", token, n, got)
			}
		}
	}
}

func TestTransposeTokenPassesThroughNonChords(t *testing.T) {
	for _, token := range []string{"", "hello", "|", "x2", "שלום", "[Am]", "H7"} {
		if got := TransposeToken(token, 5, pitch.Flat); got != token {
			t.Errorf("TransposeToken(%q) = %q, want unchanged", token, got)
		}
	}
}
