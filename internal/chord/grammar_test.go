package chord

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"akordish/internal/pitch"
)

func TestParseDecomposesRootSuffixBass(t *testing.T) {
	tests := []struct {
		token string
		want  Symbol
	}{
		{"Am7", Symbol{Root: pitch.A, RootName: "A", Suffix: "m7"}},
		{"C", Symbol{Root: pitch.C, RootName: "C"}},
		{"F#m", Symbol{Root: pitch.FSharp, RootName: "F#", Suffix: "m"}},
		{"Bbmaj7", Symbol{Root: pitch.ASharp, RootName: "Bb", Suffix: "maj7"}},
		{"G/B", Symbol{Root: pitch.G, RootName: "G", Bass: pitch.B, BassName: "B"}},
		{"Dsus4", Symbol{Root: pitch.D, RootName: "D", Suffix: "sus4"}},
		{"Cadd9", Symbol{Root: pitch.C, RootName: "C", Suffix: "add9"}},
		{"Edim", Symbol{Root: pitch.E, RootName: "E", Suffix: "dim"}},
		{"Abaug", Symbol{Root: pitch.GSharp, RootName: "Ab", Suffix: "aug"}},
		{"CM7", Symbol{Root: pitch.C, RootName: "C", Suffix: "M7"}},
		{"Cm7b5", Symbol{Root: pitch.C, RootName: "C", Suffix: "m7b5"}},
		{"Ebm/Db", Symbol{Root: pitch.DSharp, RootName: "Eb", Suffix: "m", Bass: pitch.CSharp, BassName: "Db"}},
		{"B#", Symbol{Root: pitch.C, RootName: "B#"}},
		{"Fbmin", Symbol{Root: pitch.E, RootName: "Fb", Suffix: "min"}},
		{"AMAJ7", Symbol{Root: pitch.A, RootName: "A", Suffix: "MAJ7"}},
		{"C+", Symbol{Root: pitch.C, RootName: "C", Suffix: "+"}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := Parse(tt.token)
			if !ok {
				t.Fatalf("Parse(%q) rejected a chord", tt.token)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.token, diff)
			}
		})
	}
}

func TestParseRejectsPartialMatches(t *testing.T) {
	for _, token := range []string{
		"", "a", "am", "H", "Hello", "Amazing", "Dad", "Bbb", "C/", "C/H", "G/B/D",
		"C6/9", "C(add9)", "[Am]", "Am]", "Cadd", "E-", "Dim", "Ab#5", "Bbb5", "Db#9",
	} {
		if _, ok := Parse(token); ok {
			t.Errorf("Parse(%q) accepted a non-chord", token)
		}
	}
}

func TestLooksLikeAcceptsRelaxedShapes(t *testing.T) {
	for _, token := range []string{"C6/9", "C(add9)", "Cadd", "E-", "B°", "Cø7", "CΔ7", "G7(b9,#11)", "C7alt", "Am7^", "D*"} {
		if _, ok := Parse(token); ok {
			t.Errorf("expected %q to need the relaxed grammar", token)
		}
		if !LooksLike(token) {
			t.Errorf("LooksLike(%q) = false", token)
		}
	}
}

func TestLooksLikeKeepsRootAlphabet(t *testing.T) {
	for _, token := range []string{"(Am)", "am7", "Hmaj", "[C]", "Amazing", "Xm"} {
		if LooksLike(token) {
			t.Errorf("LooksLike(%q) = true", token)
		}
	}
}

func TestAlterationNeedsPrecedingElement(t *testing.T) {
	for _, token := range []string{"Ab#5", "Bbb5", "Db#9", "A#5", "Cb9", "E#11"} {
		sym, ok := Decompose(token)
		if !ok {
			continue
		}
		if strings.HasPrefix(sym.Suffix, "#") || strings.HasPrefix(sym.Suffix, "b") {
			t.Errorf("Decompose(%q) opened the suffix with an alteration: %+v", token, sym)
		}
	}
	for _, token := range []string{"Ab#5", "Bbb5", "Db#9"} {
		if LooksLike(token) {
			t.Errorf("LooksLike(%q) = true", token)
		}
	}
	for _, token := range []string{"C7#5", "Ebm7b5", "G7b9", "Ab+", "C(#5)"} {
		if !IsChord(token) {
			t.Errorf("IsChord(%q) = false", token)
		}
	}
}

func TestLooksLikeIsSupersetOfParse(t *testing.T) {
	for _, token := range []string{"Am7", "G/B", "Bbmaj7", "Dsus2", "E7#9", "F#m7b5/E"} {
		if _, ok := Parse(token); !ok {
			t.Fatalf("Parse(%q) rejected", token)
		}
		if !LooksLike(token) {
			t.Errorf("LooksLike(%q) rejected a strict chord", token)
		}
	}
}

func TestDecomposeFallsBackToRelaxed(t *testing.T) {
	sym, ok := Decompose("C6/9")
	if !ok {
		t.Fatal("Decompose rejected relaxed chord")
	}
	if sym.Root != pitch.C || sym.Suffix != "6/9" || sym.HasBass() {
		t.Fatalf("unexpected symbol: %+v", sym)
	}
	sym, ok = Decompose("G7(b9)/B")
	if !ok {
		t.Fatal("Decompose rejected relaxed slash chord")
	}
	if sym.Suffix != "7(b9)" || sym.Bass != pitch.B {
		t.Fatalf("unexpected symbol: %+v", sym)
	}
	if IsChord("hello") {
		t.Fatal("IsChord accepted prose")
	}
}

func TestStringRoundTrips(t *testing.T) {
	for _, token := range []string{"Am7", "G/B", "Ebm/Db", "C#sus4", "B#", "C6/9"} {
		sym, ok := Decompose(token)
		if !ok {
			t.Fatalf("Decompose(%q) rejected", token)
		}
		if sym.String() != token {
			t.Errorf("String() = %q, want %q", sym.String(), token)
		}
	}
}

func TestSpelledSymbolsStayRecognizable(t *testing.T) {
	for _, token := range []string{
		"Am7", "G/B", "Ebm/Db", "C#sus4", "Bb6", "F#m7b5/E",
		"Ab+", "Bb+7", "Db7#9", "Ebm7b5", "Gb7b13/Bb", "Ab7(#5)", "C#(b9)",
	} {
		sym, ok := Decompose(token)
		if !ok {
			t.Fatalf("Decompose(%q) rejected", token)
		}
		for _, policy := range []pitch.SpellingPolicy{pitch.Sharp, pitch.Flat} {
			for n := -12; n <= 12; n++ {
				out := sym.Transpose(n, policy).String()
				back, ok := Decompose(out)
				if !ok {
					t.Fatalf("%q shifted %d (%s) produced unrecognizable %q", token, n, policy, out)
				}
				if back.Root != sym.Root.Shift(n) {
					t.Fatalf("%q shifted %d: root %s, want %s", token, n, back.Root, sym.Root.Shift(n))
				}
				if back.Suffix != sym.Suffix {
					t.Fatalf("%q shifted %d: suffix %q, want %q", token, n, back.Suffix, sym.Suffix)
				}
				if sym.HasBass() && back.Bass != sym.Bass.Shift(n) {
					t.Fatalf("%q shifted %d: bass %s, want %s", token, n, back.Bass, sym.Bass.Shift(n))
				}
			}
		}
	}
}

func TestKeyUsesSharpSpelling(t *testing.T) {
	sym, _ := Parse("Bbm7/Ab")
	if got := sym.Key(); got != "A#m7/G#" {
		t.Fatalf("Key() = %q", got)
	}
}

type diagramTable map[string]string

func (d diagramTable) Diagram(key string) (string, bool) {
	v, ok := d[key]
	return v, ok
}

func TestLookupUsesCanonicalKey(t *testing.T) {
	table := diagramTable{"A#": "x13331"}
	sym, _ := Parse("Bb")
	got, ok := Lookup(table, sym)
	if !ok || got != "x13331" {
		t.Fatalf("Lookup = %q, %v", got, ok)
	}
	if _, ok := Lookup(nil, sym); ok {
		t.Fatal("Lookup with nil source should miss")
	}
}
