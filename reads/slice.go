// SPDX-License-Identifier: MIT

package reads

import (
	"errors"
	"io"
	"strconv"
)

// SliceSource serves reads from memory in order.
type SliceSource struct {
	reads []Read
	next  int
}

// NewSliceSource wraps reads without copying them.
func NewSliceSource(reads ...Read) *SliceSource {
	return &SliceSource{reads: reads}
}

// FromStrings builds quality-less reads named by their position.
func FromStrings(seqs ...string) *SliceSource {
	rs := make([]Read, len(seqs))
	for i, s := range seqs {
		rs[i] = Read{Name: "read" + strconv.Itoa(i+1), Bases: []byte(s)}
	}
	return NewSliceSource(rs...)
}

// Next implements Source.
func (s *SliceSource) Next() (Read, error) {
	if s.next >= len(s.reads) {
		return Read{}, io.EOF
	}
	r := s.reads[s.next]
	s.next++
	return r, nil
}

// ForEach calls fn for every read of src until the source is exhausted or
// either side fails. io.EOF is not reported as an error.
func ForEach(src Source, fn func(Read) error) error {
	for {
		r, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = fn(r); err != nil {
			return err
		}
	}
}
