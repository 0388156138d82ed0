// Package sheet classifies and transposes lyrics-with-chords documents.
//
// Two notation styles coexist line by line. Block lines carry only chord
// symbols and sit above the lyric they accompany; inline lines embed chords
// in brackets, e.g. "ה[Am]שיבה [D]לבי". Each line is classified on its own,
// block transposition is gated by that classification, and bracketed chords
// are transposed wherever they appear. Text that is not recognized as a
// chord is never altered.
package sheet
