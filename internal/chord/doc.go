// Package chord recognizes chord symbols written in song sheets and
// transposes them.
//
// A symbol is a root note, an opaque quality suffix and an optional slash
// bass. The suffix is carried through verbatim; only the root and bass move
// when a chord is transposed. Two grammars share one scanner: Parse accepts
// the strict grammar (m, min, maj, dim, aug, M, digits, sus, add) and
// LooksLike accepts a relaxed superset that also tolerates parentheses,
// alterations and similar shorthand seen in hand-written sheets. Recognition
// never fails loudly; callers get a false flag and keep the text as written.
package chord
