// SPDX-License-Identifier: MIT

package assembly

import (
	"github.com/katalvlaran/lvlasm/dbg"
	"github.com/katalvlaran/lvlasm/kmer"
)

// seed starts a contig at every node where unambiguous flow begins: a node
// without a reciprocal sole predecessor starts one, a node without a
// reciprocal sole successor starts one on the opposite strand. A second
// sweep picks up perfect cycles, which have no such node.
func (a *Assembler) seed() error {
	for n := range a.g.Nodes() {
		if owned(n) {
			continue
		}
		if p := n.SolePredecessor(); p == nil || p.SuccessorCount() > 1 {
			a.contigs = append(a.contigs, a.newContig(n))
			continue
		}
		if s := n.SoleSuccessor(); s == nil || s.PredecessorCount() > 1 {
			a.contigs = append(a.contigs, a.newContig(n.RC()))
		}
	}
	for n := range a.g.Nodes() {
		if !owned(n) {
			a.contigs = append(a.contigs, a.newContig(n))
		}
	}
	return nil
}

func owned(n *dbg.Node) bool {
	o, _ := n.Owner()
	return o != nil
}

// newContig walks sole successors from start while the next node has a
// single predecessor, claiming each node. The walk runs on through the
// twins of nodes it already holds, so a hairpin stays one contig; it stops
// on coming back to start or on reaching a node another contig holds.
func (a *Assembler) newContig(start *dbg.Node) Contig {
	codec := a.g.Codec()
	c := &contig{
		k:      codec.K(),
		maxObs: start.ObservationCount(),
		first:  start,
		last:   start,
	}
	self := Contig{c: c}

	seq := []byte(codec.String(start.Key()))
	members := []*dbg.Node{start}
	// claim as we go so the walk sees its own nodes, twins included
	start.SetOwner(self, 0)
	for n := start.SoleSuccessor(); n != nil; n = n.SoleSuccessor() {
		if n == start || n.PredecessorCount() != 1 || heldByOther(n, c) {
			break
		}
		seq = append(seq, kmer.Base(codec.FinalCall(n.Key())))
		c.maxObs = max(c.maxObs, n.ObservationCount())
		c.last = n
		n.SetOwner(self, len(members))
		members = append(members, n)
	}
	c.seq = seq

	// twin offsets depend on the final length
	for i, n := range members {
		n.SetOwner(self, i)
	}
	return self
}

// heldByOther reports whether n belongs to a contig other than c, on
// either strand.
func heldByOther(n *dbg.Node, c *contig) bool {
	o, _ := n.Owner()
	return o != nil && o.(Contig).c != c
}
