// SPDX-License-Identifier: MIT

package assembly

import (
	"fmt"
	"slices"
)

// weld joins contigs across every edge that is the only way out of one
// contig and the only way into the other. After a merge the joined contig
// is examined again in place; passes repeat until nothing merges.
func (a *Assembler) weld() error {
	for {
		merged := false
		for i := 0; i < len(a.contigs); {
			c := a.contigs[i]
			pred, succ, ok := weldPartner(c)
			if !ok {
				i++
				continue
			}
			joined, err := a.join(pred, succ)
			if err != nil {
				return err
			}
			other := pred
			if pred.Canonical() == c {
				other = succ
			}
			j := slices.Index(a.contigs, other.Canonical())
			if j < 0 {
				return fmt.Errorf("%w: weld partner %s is not in the contig list", ErrBrokenInvariant, other)
			}
			a.contigs[i] = joined
			a.contigs = slices.Delete(a.contigs, j, j+1)
			if j < i {
				i--
			}
			merged = true
		}
		if !merged {
			return nil
		}
	}
}

// weldPartner reports the oriented pair to join for c, if any. Links from a
// contig to itself, on either strand, are never welded.
func weldPartner(c Contig) (pred, succ Contig, ok bool) {
	if preds := c.Predecessors(); preds.Len() == 1 {
		p := preds.At(0)
		if p.Canonical() != c.Canonical() && p.Successors().Len() == 1 {
			return p, c, true
		}
	}
	if succs := c.Successors(); succs.Len() == 1 {
		s := succs.At(0)
		if s.Canonical() != c.Canonical() && s.Predecessors().Len() == 1 {
			return c, s, true
		}
	}
	return Contig{}, Contig{}, false
}

// join builds the contig pred+succ (overlapping by K-1 bases), points every
// link to either half at it, and moves node ownership over.
func (a *Assembler) join(pred, succ Contig) (Contig, error) {
	k := a.g.K()
	ps, ss := pred.Sequence(), succ.Sequence()
	c := &contig{
		seq:    make([]byte, 0, len(ps)+len(ss)-(k-1)),
		k:      k,
		maxObs: max(pred.MaxObservations(), succ.MaxObservations()),
		first:  pred.FirstNode(),
		last:   succ.LastNode(),
	}
	c.seq = append(c.seq, ps...)
	c.seq = append(c.seq, ss[k-1:]...)
	joined := Contig{c: c}

	remap := func(x Contig) Contig {
		switch x {
		case pred, succ:
			return joined
		case pred.RC(), succ.RC():
			return joined.RC()
		}
		return x
	}

	for x := range pred.Predecessors().All() {
		c.preds = append(c.preds, remap(x))
	}
	for x := range succ.Successors().All() {
		c.succs = append(c.succs, remap(x))
	}

	// collect the distinct outside neighbors, then rewrite their lists
	visited := map[*contig]bool{c: true, pred.c: true, succ.c: true}
	var outside []*contig
	for _, x := range slices.Concat(c.preds, c.succs) {
		if !visited[x.c] {
			visited[x.c] = true
			outside = append(outside, x.c)
		}
	}
	for _, o := range outside {
		for i, y := range o.preds {
			o.preds[i] = remap(y)
		}
		for i, y := range o.succs {
			o.succs[i] = remap(y)
		}
	}

	offset, err := a.reown(pred, joined, 0)
	if err != nil {
		return Contig{}, err
	}
	if _, err = a.reown(succ, joined, offset); err != nil {
		return Contig{}, err
	}
	return joined, nil
}
