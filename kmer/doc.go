// SPDX-License-Identifier: MIT

// Package kmer packs fixed-length windows of nucleotide calls into uint64 keys.
//
// What:
//
//   - Codec fixes the window length K (odd, 1..31) and provides the key algebra:
//     reverse complement, canonical test, neighbor keys and decoding.
//   - Window is the rolling accumulator used while streaming a read: it absorbs
//     low-quality positions and unknown symbols by resetting itself.
//
// Encoding:
//
//	A=0, C=1, G=2, T=3, two bits per base, first base in the highest bits.
//	A key is canonical iff bit K (the high bit of the middle base) is clear.
//	Because K is odd no window equals its own reverse complement, so exactly one
//	of {x, rc(x)} is canonical.
//
// Complexity:
//
//   - ReverseComplement: O(1), eight table lookups.
//   - Window.Push:       O(1).
//
// Errors:
//
//   - ErrEvenK:        window length is even.
//   - ErrKOutOfRange:  window length is not in [1, MaxK].
//   - ErrInvalidBase:  Encode met a symbol outside ACGT.
//   - ErrWindowLength: Encode got a slice whose length is not K.
package kmer
