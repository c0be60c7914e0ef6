// SPDX-License-Identifier: MIT

package reads

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrQualityEncoding indicates a quality character below the phred offset.
	ErrQualityEncoding = errors.New("reads: quality below phred offset")

	// ErrClosed indicates a read from a closed source.
	ErrClosed = errors.New("reads: source closed")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("reads: invalid option supplied")
)

// DefaultPhredOffset is the Sanger/Illumina 1.8+ ASCII offset.
const DefaultPhredOffset = 33

// Read is one sequencing read. Quals holds phred values, one per base, or
// is nil when the input carried none.
type Read struct {
	Name  string
	Bases []byte
	Quals []byte
}

// Len reports the number of bases.
func (r Read) Len() int { return len(r.Bases) }

// Source yields reads in input order. Next returns io.EOF after the last read.
type Source interface {
	Next() (Read, error)
}

// Option configures a FastxSource.
type Option func(*options)

type options struct {
	phredOffset int
	err         error
}

// WithPhredOffset sets the ASCII offset subtracted from FASTQ qualities.
// Values outside [0, 126] are rejected by Open.
func WithPhredOffset(offset int) Option {
	return func(o *options) {
		if offset < 0 || offset > '~' {
			o.err = fmt.Errorf("%w: phred offset %d", ErrOptionViolation, offset)
			return
		}
		o.phredOffset = offset
	}
}
