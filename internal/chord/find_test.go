package chord

import "testing"

func TestTokensSplitsOnBarsAndWhitespace(t *testing.T) {
	line := "Am  |D\tG|  x2"
	var got []string
	for _, tok := range Tokens(line) {
		got = append(got, tok.Text(line))
	}
	want := []string{"Am", "D", "G", "x2"}
	if len(got) != len(want) {
		t.Fatalf("Tokens = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokens = %q, want %q", got, want)
		}
	}
}

func TestFindReportsOffsets(t *testing.T) {
	line := "Am   D   G (x2)"
	spans := Find(line)
	if len(spans) != 3 {
		t.Fatalf("Find returned %d spans, want 3", len(spans))
	}
	wantStarts := []int{0, 5, 9}
	for i, span := range spans {
		if span.Start != wantStarts[i] {
			t.Errorf("span %d starts at %d, want %d", i, span.Start, wantStarts[i])
		}
	}
	if spans[2].Text(line) != "G" || spans[2].Symbol.RootName != "G" {
		t.Fatalf("unexpected last span: %+v", spans[2])
	}
}

func TestFindHandlesMultibyteText(t *testing.T) {
	line := "שלום Am"
	spans := Find(line)
	if len(spans) != 1 || spans[0].Text(line) != "Am" {
		t.Fatalf("Find(%q) = %+v", line, spans)
	}
}
