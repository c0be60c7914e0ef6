// SPDX-License-Identifier: MIT

package simulate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlasm/kmer"
	"github.com/katalvlaran/lvlasm/reads"
)

// Sentinel errors.
var (
	// ErrLength indicates a non-positive genome or read length, or a read
	// longer than its genome.
	ErrLength = errors.New("simulate: invalid length")

	// ErrStep indicates a non-positive tiling step.
	ErrStep = errors.New("simulate: step must be positive")
)

const phredOffset = 33

// Genome returns n uniformly random bases.
func Genome(n int, opts ...Option) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: genome length %d", ErrLength, n)
	}
	cfg := newConfig(opts...)
	g := make([]byte, n)
	for i := range g {
		g[i] = kmer.Base(cfg.rng.Intn(4))
	}
	return g, nil
}

// Reads tiles genome with reads of readLen bases starting every step bases.
// The last read ends at or before the end of the genome.
func Reads(genome []byte, readLen, step int, opts ...Option) ([]reads.Read, error) {
	if readLen <= 0 || readLen > len(genome) {
		return nil, fmt.Errorf("%w: read length %d for genome of %d", ErrLength, readLen, len(genome))
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrStep, step)
	}
	cfg := newConfig(opts...)

	out := make([]reads.Read, 0, (len(genome)-readLen)/step+1)
	for at := 0; at+readLen <= len(genome); at += step {
		r := reads.Read{
			Name:  cfg.namePrefix + strconv.Itoa(len(out)+1),
			Bases: append([]byte(nil), genome[at:at+readLen]...),
			Quals: make([]byte, readLen),
		}
		if cfg.bothStrands && len(out)%2 == 1 {
			reverseComplement(r.Bases)
		}
		for i := range r.Bases {
			r.Quals[i] = cfg.quality
			if cfg.errorRate > 0 && cfg.rng.Float64() < cfg.errorRate {
				r.Bases[i] = substitute(r.Bases[i], cfg.rng.Intn(3))
			}
			if cfg.dropoutRate > 0 && cfg.rng.Float64() < cfg.dropoutRate {
				r.Quals[i] = cfg.lowQuality
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// WriteFASTQ writes rs as four-line FASTQ records. Reads without
// qualities get the default quality.
func WriteFASTQ(w io.Writer, rs []reads.Read) error {
	bw := bufio.NewWriter(w)
	for _, r := range rs {
		bw.WriteByte('@')
		bw.WriteString(r.Name)
		bw.WriteByte('\n')
		bw.Write(r.Bases)
		bw.WriteString("\n+\n")
		for i := range r.Bases {
			q := DefaultQuality
			if r.Quals != nil {
				q = r.Quals[i]
			}
			bw.WriteByte(q + phredOffset)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// substitute returns one of the three bases other than b.
func substitute(b byte, pick int) byte {
	call, ok := kmer.Call(b)
	if !ok {
		return b
	}
	return kmer.Base(call + 1 + pick)
}

func reverseComplement(s []byte) {
	for i, j := 0, len(s)-1; i <= j; i, j = i+1, j-1 {
		s[i], s[j] = kmer.Complement(s[j]), kmer.Complement(s[i])
	}
}
