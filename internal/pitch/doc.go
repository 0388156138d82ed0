// Package pitch models the twelve equal-tempered pitch classes and the two
// enharmonic spellings used when chords are written back out.
//
// Name tables are fixed at compile time. Callers resolve a spelling policy
// once per operation and pass it to Name so every chord in the output agrees.
// Key names ("Am", "Bb", "F# minor") are parsed here as well so the
// transpose service can compute the interval between an original key and an
// easier key to play in.
package pitch
