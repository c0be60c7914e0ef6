// SPDX-License-Identifier: MIT

package kmer

import (
	"errors"
	"fmt"
)

// Window length limits and defaults.
const (
	// DefaultK is the window length used when none is configured.
	DefaultK = 31

	// MaxK is the longest window whose key and canonical bit fit in 64 bits.
	MaxK = 31

	// DefaultMinQuality is the lowest phred score a base may carry and still
	// contribute to a window.
	DefaultMinQuality = 24
)

// Sentinel errors for codec construction and whole-window encoding.
var (
	// ErrEvenK indicates an even window length; such windows can be their own
	// reverse complement, which breaks the canonical rule.
	ErrEvenK = errors.New("kmer: window length must be odd")

	// ErrKOutOfRange indicates a window length outside [1, MaxK].
	ErrKOutOfRange = errors.New("kmer: window length out of range")

	// ErrInvalidBase indicates a symbol outside {A,C,G,T} (either case).
	ErrInvalidBase = errors.New("kmer: invalid base")

	// ErrWindowLength indicates Encode was handed a slice of the wrong length.
	ErrWindowLength = errors.New("kmer: sequence length differs from window length")
)

// Codec holds everything derived from the window length K.
// The zero value is not usable; construct with NewCodec.
type Codec struct {
	k         int
	mask      uint64 // low 2K bits
	canonical uint64 // 1 << K
	rcShift   uint   // 64 - 2K
	topShift  uint   // 2(K-1), position of the first base
}

// NewCodec validates k and returns a Codec for windows of that length.
func NewCodec(k int) (Codec, error) {
	if k < 1 || k > MaxK {
		return Codec{}, fmt.Errorf("%w: %d", ErrKOutOfRange, k)
	}
	if k%2 == 0 {
		return Codec{}, fmt.Errorf("%w: %d", ErrEvenK, k)
	}
	return Codec{
		k:         k,
		mask:      (uint64(1) << (2 * uint(k))) - 1,
		canonical: uint64(1) << uint(k),
		rcShift:   uint(64 - 2*k),
		topShift:  uint(2 * (k - 1)),
	}, nil
}

// K returns the window length.
func (c Codec) K() int { return c.k }

// Mask returns a mask covering the 2K bits of a key.
func (c Codec) Mask() uint64 { return c.mask }
