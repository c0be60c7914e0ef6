// SPDX-License-Identifier: MIT

package hopscotch

// Chain maintenance. Every function here keeps the table consistent at each
// step, so an errNoRoom halfway through leaves all entries reachable.

func (s *Set[T]) bucketFor(key uint64) int {
	return int((key * spreader) % uint64(s.capacity))
}

func (s *Set[T]) isHead(i int) bool { return s.status[i]&headBit != 0 }

func (s *Set[T]) offset(i int) int { return int(s.status[i] & offsetMask) }

// index steps off buckets from i, wrapping at most once in either direction.
func (s *Set[T]) index(i, off int) int {
	r := i + off
	if r >= s.capacity {
		r -= s.capacity
	} else if r < 0 {
		r += s.capacity
	}
	return r
}

// diff is the forward distance from i to j, with j treated as downstream.
func (s *Set[T]) diff(i, j int) int {
	d := j - i
	if d < 0 {
		d += s.capacity
	}
	return d
}

func (s *Set[T]) findEmpty(from int) (int, error) {
	var zero T
	idx := from
	for n := 1; n < s.capacity; n++ {
		idx = s.index(idx, 1)
		if s.buckets[idx] == zero {
			return idx, nil
		}
	}
	return 0, errNoRoom
}

// insert makes e the head of the chain rooted at home, relocating a squatter
// that happens to sit there.
func (s *Set[T]) insert(e T, home int) error {
	var zero T
	if s.buckets[home] != zero {
		if err := s.evict(home); err != nil {
			return err
		}
	}
	s.buckets[home] = e
	s.status[home] = headBit
	s.size++
	return nil
}

// append adds e to the chain rooted at home whose last entry is at end.
func (s *Set[T]) append(e T, home, end int) error {
	toEnd := s.diff(home, end)
	empty, err := s.findEmpty(home)
	if err != nil {
		return err
	}

	limit := toEnd + maxHop
	toEmpty := s.diff(home, empty)
	for toEmpty > limit {
		if empty, err = s.hopscotch(home, empty); err != nil {
			return err
		}
		toEmpty = s.diff(home, empty)
	}

	if toEmpty > toEnd {
		s.status[end] += uint8(toEmpty - toEnd)
	} else {
		s.linkIntoChain(home, empty)
	}
	s.buckets[empty] = e
	s.size++
	return nil
}

// evict empties bucket victim, which holds a squatter, by shuffling the
// squatter's own chain forward into a free bucket.
func (s *Set[T]) evict(victim int) error {
	var zero T
	home := s.bucketFor(s.buckets[victim].Key())
	toVictim := s.diff(home, victim)
	empty, err := s.findEmpty(home)
	if err != nil {
		return err
	}

	from := home
	for {
		for s.diff(home, empty) > toVictim {
			if empty, err = s.hopscotch(from, empty); err != nil {
				return err
			}
		}
		if empty == victim {
			return nil
		}

		// link the free bucket in, then move the chain's tail into it
		from = empty
		s.linkIntoChain(home, empty)
		prev := home
		next := s.index(prev, s.offset(prev))
		for off := s.offset(next); off != 0; off = s.offset(next) {
			prev = next
			next = s.index(next, off)
		}
		s.buckets[empty] = s.buckets[next]
		s.buckets[next] = zero
		s.status[next] = 0
		s.status[prev] &= headBit
		empty = next
	}
}

// linkIntoChain splices the free bucket empty, which lies before the end of
// home's chain, between the two chain entries that surround it.
func (s *Set[T]) linkIntoChain(home, empty int) {
	toEmpty := s.diff(home, empty)
	at := home
	off := s.offset(at)
	for off < toEmpty {
		at = s.index(at, off)
		toEmpty -= off
		off = s.offset(at)
	}
	off -= toEmpty
	s.status[at] -= uint8(off)
	s.status[empty] = uint8(off)
}

// hopscotch brings a free bucket closer to from: it looks for a chain that
// jumps over empty within maxHop buckets and moves the jumped-to entry into
// empty. It returns the bucket that became free.
func (s *Set[T]) hopscotch(from, empty int) (int, error) {
	span := s.diff(from, empty)
	for toEmpty := maxHop; toEmpty > 1; toEmpty-- {
		b := s.index(empty, -toEmpty)
		off := s.offset(b)
		if off != 0 && off < toEmpty && toEmpty-off < span {
			moved := s.index(b, off)
			s.move(b, moved, empty)
			return moved, nil
		}
	}
	return 0, errNoRoom
}

// move relocates the chain entry at src, reached from pred, into the free
// bucket dst further along, relinking the chain around it.
func (s *Set[T]) move(pred, src, dst int) {
	var zero T
	toDst := s.diff(src, dst)
	next := s.offset(src)
	if next == 0 || next > toDst {
		s.status[pred] += uint8(toDst)
	} else {
		s.status[pred] += uint8(next)
		toDst -= next
		pred = s.index(src, next)
		for next = s.offset(pred); next != 0 && next < toDst; next = s.offset(pred) {
			toDst -= next
			pred = s.index(pred, next)
		}
		s.status[pred] = uint8(toDst)
	}
	if next != 0 {
		s.status[dst] = uint8(next - toDst)
	}
	s.buckets[dst] = s.buckets[src]
	s.buckets[src] = zero
	s.status[src] = 0
}

// add places an entry known to be absent. Used while rehashing.
func (s *Set[T]) add(e T) error {
	var zero T
	home := s.bucketFor(e.Key())

	if s.buckets[home] != zero && !s.isHead(home) {
		if err := s.evict(home); err != nil {
			return err
		}
	}
	if s.buckets[home] == zero {
		s.buckets[home] = e
		s.status[home] = headBit
		s.size++
		return nil
	}

	end := home
	for off := s.offset(end); off != 0; off = s.offset(end) {
		end = s.index(end, off)
	}
	return s.append(e, home, end)
}
