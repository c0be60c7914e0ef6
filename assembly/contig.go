// SPDX-License-Identifier: MIT

package assembly

import (
	"iter"

	"github.com/katalvlaran/lvlasm/dbg"
	"github.com/katalvlaran/lvlasm/kmer"
)

// contig is the storage behind a Contig and its reverse complement. Lists
// are kept from the forward strand's point of view.
type contig struct {
	seq       []byte
	k         int
	maxObs    int
	first     *dbg.Node
	last      *dbg.Node
	preds     []Contig
	succs     []Contig
	component int
	name      string
}

// Contig is an oriented view of an assembled contig. The reverse complement
// is the same storage seen from the other strand, so c.RC().RC() == c and
// both views observe every mutation. The zero Contig is "none".
type Contig struct {
	c  *contig
	rc bool
}

// IsZero reports whether c refers to no contig.
func (c Contig) IsZero() bool { return c.c == nil }

// RC returns the reverse-complement view.
func (c Contig) RC() Contig { return Contig{c: c.c, rc: !c.rc} }

// Canonical returns the forward-strand view.
func (c Contig) Canonical() Contig { return Contig{c: c.c} }

// IsCanonical reports whether c is the forward-strand view.
func (c Contig) IsCanonical() bool { return !c.rc }

// Flip implements dbg.Owner.
func (c Contig) Flip() dbg.Owner { return c.RC() }

// Len is the sequence length in bases.
func (c Contig) Len() int { return len(c.c.seq) }

// KmerCount is the number of k-mers the contig spans. Implements dbg.Owner.
func (c Contig) KmerCount() int { return len(c.c.seq) - c.c.k + 1 }

// MaxObservations is the largest observation count over member k-mers.
func (c Contig) MaxObservations() int { return c.c.maxObs }

// ComponentID is the connected component the contig was labeled with, 0
// before labeling.
func (c Contig) ComponentID() int { return c.c.component }

// Name returns the display name; reverse-complement views carry an "RC"
// suffix. Empty until naming.
func (c Contig) Name() string {
	if c.rc && c.c.name != "" {
		return c.c.name + "RC"
	}
	return c.c.name
}

// String implements fmt.Stringer.
func (c Contig) String() string {
	if c.c == nil {
		return "<none>"
	}
	if c.c.name == "" {
		return "<unnamed>"
	}
	return c.Name()
}

// Sequence returns the assembled bases of this orientation.
func (c Contig) Sequence() string {
	if !c.rc {
		return string(c.c.seq)
	}
	n := len(c.c.seq)
	out := make([]byte, n)
	for i, b := range c.c.seq {
		out[n-1-i] = kmer.Complement(b)
	}
	return string(out)
}

// FirstNode is the k-mer at the 5' end of this orientation.
func (c Contig) FirstNode() *dbg.Node {
	if c.rc {
		return c.c.last.RC()
	}
	return c.c.first
}

// LastNode is the k-mer at the 3' end of this orientation.
func (c Contig) LastNode() *dbg.Node {
	if c.rc {
		return c.c.first.RC()
	}
	return c.c.last
}

// Predecessors lists the contigs whose last k-mer precedes c's first one.
func (c Contig) Predecessors() Links {
	if c.rc {
		return Links{list: &c.c.succs, flip: true}
	}
	return Links{list: &c.c.preds}
}

// Successors lists the contigs whose first k-mer follows c's last one.
func (c Contig) Successors() Links {
	if c.rc {
		return Links{list: &c.c.preds, flip: true}
	}
	return Links{list: &c.c.succs}
}

// Links is an adjacency list seen through one orientation. For a
// reverse-complement view it reads and writes the opposite list of the
// forward contig with every element flipped, so
// c.RC().Predecessors().At(i) == c.Successors().At(i).RC().
type Links struct {
	list *[]Contig
	flip bool
}

func (l Links) orient(x Contig) Contig {
	if l.flip {
		return x.RC()
	}
	return x
}

// Len returns the number of links.
func (l Links) Len() int {
	if l.list == nil {
		return 0
	}
	return len(*l.list)
}

// At returns link i.
func (l Links) At(i int) Contig { return l.orient((*l.list)[i]) }

// Set replaces link i.
func (l Links) Set(i int, x Contig) { (*l.list)[i] = l.orient(x) }

// Append adds x at the end.
func (l Links) Append(x Contig) { *l.list = append(*l.list, l.orient(x)) }

// Index returns the position of the first link equal to x, or -1.
func (l Links) Index(x Contig) int {
	if l.list == nil {
		return -1
	}
	want := l.orient(x)
	for i, y := range *l.list {
		if y == want {
			return i
		}
	}
	return -1
}

// Remove deletes the first link equal to x, keeping order. It reports
// whether a link was found.
func (l Links) Remove(x Contig) bool {
	i := l.Index(x)
	if i < 0 {
		return false
	}
	*l.list = append((*l.list)[:i], (*l.list)[i+1:]...)
	return true
}

// All yields the links in order.
func (l Links) All() iter.Seq[Contig] {
	return func(yield func(Contig) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}

// Slice returns an oriented copy of the links.
func (l Links) Slice() []Contig {
	out := make([]Contig, l.Len())
	for i := range out {
		out[i] = l.At(i)
	}
	return out
}
