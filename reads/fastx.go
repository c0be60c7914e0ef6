// SPDX-License-Identifier: MIT

package reads

import (
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// FastxSource reads FASTA or FASTQ records from a file. Compression is
// detected from the content (gzip, xz, zstd, bzip2); "-" reads stdin.
type FastxSource struct {
	file   string
	offset byte
	r      *fastx.Reader
	n      int
}

// Open prepares a FastxSource for file.
func Open(file string, opts ...Option) (*FastxSource, error) {
	o := options{phredOffset: DefaultPhredOffset}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r, err := fastx.NewReader(seq.Unlimit, file, "")
	if err != nil {
		return nil, fmt.Errorf("reads: open %s: %w", file, err)
	}
	return &FastxSource{file: file, offset: byte(o.phredOffset), r: r}, nil
}

// Next returns the next record. The returned slices are owned by the caller.
func (s *FastxSource) Next() (Read, error) {
	if s.r == nil {
		return Read{}, fmt.Errorf("%w: %s", ErrClosed, s.file)
	}
	rec, err := s.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Read{}, io.EOF
		}
		return Read{}, fmt.Errorf("reads: %s record %d: %w", s.file, s.n+1, err)
	}
	s.n++

	rd := Read{
		Name:  string(rec.ID),
		Bases: append([]byte(nil), rec.Seq.Seq...),
	}
	// the record buffer may keep qualities from an earlier FASTQ file
	if s.r.IsFastq {
		if rd.Quals, err = s.decode(rec.Seq.Qual); err != nil {
			return Read{}, fmt.Errorf("%w: %s read %q", err, s.file, rd.Name)
		}
	}
	return rd, nil
}

// Records reports how many records have been returned so far.
func (s *FastxSource) Records() int { return s.n }

// Close releases the underlying file. Next fails with ErrClosed afterwards;
// closing twice is a no-op.
func (s *FastxSource) Close() error {
	if s.r == nil {
		return nil
	}
	s.r.Close()
	s.r = nil
	return nil
}

func (s *FastxSource) decode(ascii []byte) ([]byte, error) {
	out := make([]byte, len(ascii))
	for i, c := range ascii {
		if c < s.offset {
			return nil, fmt.Errorf("%w: %q at %d", ErrQualityEncoding, c, i)
		}
		out[i] = c - s.offset
	}
	return out, nil
}
