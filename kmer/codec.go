// SPDX-License-Identifier: MIT

package kmer

import "fmt"

// invalidCall marks bytes that are not nucleotide symbols in callFor.
const invalidCall = int8(-1)

// callBases maps a 2-bit call back to its symbol.
const callBases = "ACGT"

var (
	// callFor maps an ASCII symbol to its 2-bit call, or invalidCall.
	callFor [256]int8

	// byteRC reverse-complements the four calls packed in one byte:
	// the bit pairs are reversed and every bit inverted.
	byteRC [256]uint64
)

func init() {
	for i := range callFor {
		callFor[i] = invalidCall
	}
	for call, b := range []byte(callBases) {
		callFor[b] = int8(call)
		callFor[b|0x20] = int8(call) // lower case
	}

	for b := 0; b < 256; b++ {
		rev := (b&3)<<6 | ((b>>2)&3)<<4 | ((b>>4)&3)<<2 | (b>>6)&3
		byteRC[b] = uint64(^rev & 0xff)
	}
}

// Call returns the 2-bit code of symbol b and whether b is a nucleotide.
func Call(b byte) (int, bool) {
	c := callFor[b]
	return int(c), c != invalidCall
}

// Base returns the upper-case symbol for a 2-bit call.
func Base(call int) byte { return callBases[call&3] }

// Complement returns the complementary symbol of b, or 'N' for anything
// that is not a nucleotide.
func Complement(b byte) byte {
	c, ok := Call(b)
	if !ok {
		return 'N'
	}
	return Base(3 - c)
}

// ReverseComplement returns the key of the reverse-complemented window.
// It is its own inverse for every key below 1<<2K.
func (c Codec) ReverseComplement(key uint64) uint64 {
	result := byteRC[key&0xff]
	for i := 1; i < 8; i++ {
		key >>= 8
		result = result<<8 | byteRC[key&0xff]
	}
	return result >> c.rcShift
}

// IsCanonical reports whether key is the canonical member of its pair.
func (c Codec) IsCanonical(key uint64) bool { return key&c.canonical == 0 }

// Canonical returns the canonical member of key's pair and whether key had
// to be reverse-complemented to get it.
func (c Codec) Canonical(key uint64) (uint64, bool) {
	if c.IsCanonical(key) {
		return key, false
	}
	return c.ReverseComplement(key), true
}

// InitialCall returns the call of the first base of key.
func (c Codec) InitialCall(key uint64) int { return int(key>>c.topShift) & 3 }

// FinalCall returns the call of the last base of key.
func (c Codec) FinalCall(key uint64) int { return int(key & 3) }

// PredecessorKey returns the key formed by prepending call to key and
// dropping its last base.
func (c Codec) PredecessorKey(key uint64, call int) uint64 {
	return key>>2 | uint64(call&3)<<c.topShift
}

// SuccessorKey returns the key formed by appending call to key and dropping
// its first base.
func (c Codec) SuccessorKey(key uint64, call int) uint64 {
	return (key<<2)&c.mask | uint64(call&3)
}

// Encode packs exactly K symbols into a key.
func (c Codec) Encode(bases []byte) (uint64, error) {
	if len(bases) != c.k {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrWindowLength, len(bases), c.k)
	}
	var key uint64
	for i, b := range bases {
		call, ok := Call(b)
		if !ok {
			return 0, fmt.Errorf("%w: %q at %d", ErrInvalidBase, b, i)
		}
		key = key<<2 | uint64(call)
	}
	return key, nil
}

// String decodes key into its K symbols.
func (c Codec) String(key uint64) string {
	buf := make([]byte, c.k)
	for i := c.k - 1; i >= 0; i-- {
		buf[i] = Base(int(key & 3))
		key >>= 2
	}
	return string(buf)
}
