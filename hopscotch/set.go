// SPDX-License-Identifier: MIT

package hopscotch

import (
	"errors"
	"fmt"
	"iter"
)

// New returns an empty Set sized so that capacity entries fit under the load
// factor. A non-positive capacity yields the smallest legal size.
func New[T Entry](capacity int) *Set[T] {
	c := capacityFor(capacity)
	return &Set[T]{
		capacity: c,
		buckets:  make([]T, c),
		status:   make([]uint8, c),
	}
}

// Len reports the number of stored entries.
func (s *Set[T]) Len() int { return s.size }

// Cap reports the current number of buckets.
func (s *Set[T]) Cap() int { return s.capacity }

// Resizes reports how many times the table has grown.
func (s *Set[T]) Resizes() int { return s.resizes }

// Find returns the entry stored under key, or the zero value of T.
func (s *Set[T]) Find(key uint64) T {
	e, _ := s.lookup(key)
	return e
}

// FindOrAdd returns the entry stored under key. When there is none it calls
// factory(key) exactly once; a non-zero result is stored and returned, a zero
// result is returned without touching the set.
//
// The returned error is always fatal for the set: ErrResizeFailed,
// ErrEntriesLost or ErrCapacityExhausted, wrapped with context.
func (s *Set[T]) FindOrAdd(key uint64, factory func(uint64) T) (T, error) {
	var zero T
	e, at := s.lookup(key)
	if e != zero {
		return e, nil
	}
	e = factory(key)
	if e == zero {
		return zero, nil
	}
	if float64(s.size+1) > loadFactor*float64(s.capacity) {
		if err := s.grow(); err != nil {
			return zero, err
		}
		at = s.probe(key)
	}

	err := s.place(e, at)
	if errors.Is(err, errNoRoom) {
		if err = s.grow(); err != nil {
			return zero, err
		}
		if err = s.add(e); err != nil {
			return zero, fmt.Errorf("%w: key %#x at %d buckets: %v", ErrResizeFailed, key, s.capacity, err)
		}
		return e, nil
	}
	if err != nil {
		return zero, err
	}
	return e, nil
}

// All yields every entry in bucket order. Mutating the set during iteration
// has undefined results.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		for _, e := range s.buckets {
			if e == zero {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Clear removes every entry, keeping the current capacity.
func (s *Set[T]) Clear() {
	clear(s.buckets)
	clear(s.status)
	s.size = 0
}

// position remembers where a failed lookup ended, so the insertion that
// follows does not walk the chain a second time.
type position struct {
	home    int  // bucket the key hashes to
	end     int  // last entry of home's chain, valid when hasHead
	hasHead bool // home holds a chain head
}

func (s *Set[T]) lookup(key uint64) (T, position) {
	var zero T
	at := position{home: s.bucketFor(key)}
	if !s.isHead(at.home) {
		return zero, at
	}
	at.hasHead = true
	idx := at.home
	for {
		if e := s.buckets[idx]; e.Key() == key {
			return e, at
		}
		off := s.offset(idx)
		if off == 0 {
			break
		}
		idx = s.index(idx, off)
	}
	at.end = idx
	return zero, at
}

func (s *Set[T]) probe(key uint64) position {
	_, at := s.lookup(key)
	return at
}

// place stores a new entry using the position its lookup ended at.
func (s *Set[T]) place(e T, at position) error {
	if !at.hasHead {
		return s.insert(e, at.home)
	}
	return s.append(e, at.home, at.end)
}

// grow moves every entry into a table of the next legal size. On failure the
// old table is kept as it was.
func (s *Set[T]) grow() error {
	next, ok := legalSizeAbove(s.capacity)
	if !ok {
		return fmt.Errorf("%w: at %d buckets", ErrCapacityExhausted, s.capacity)
	}

	var zero T
	old := *s
	s.capacity = next
	s.size = 0
	s.buckets = make([]T, next)
	s.status = make([]uint8, next)

	idx := 0
	for {
		if e := old.buckets[idx]; e != zero {
			if err := s.add(e); err != nil {
				*s = old
				return fmt.Errorf("%w: rehash into %d buckets at load %.3f: %v",
					ErrResizeFailed, next, float64(old.size)/float64(old.capacity), err)
			}
		}
		idx = (idx + rehashStep) % old.capacity
		if idx == 0 {
			break
		}
	}

	if got := s.size; got != old.size {
		*s = old
		return fmt.Errorf("%w: %d before, %d after", ErrEntriesLost, old.size, got)
	}
	s.resizes = old.resizes + 1
	return nil
}
