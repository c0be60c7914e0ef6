// SPDX-License-Identifier: MIT

package assembly

import (
	"fmt"

	"github.com/katalvlaran/lvlasm/dbg"
)

// prune drops every contig whose max observation count is below the support
// threshold, detaching it from its neighbors first.
func (a *Assembler) prune() error {
	kept := a.contigs[:0]
	for _, c := range a.contigs {
		if c.MaxObservations() >= a.opts.minSupport {
			kept = append(kept, c)
			continue
		}
		if err := a.detach(c); err != nil {
			return err
		}
	}
	clear(a.contigs[len(kept):])
	a.contigs = kept
	return nil
}

// detach clears c's boundary masks, removes the reciprocal link from every
// neighbor together with the neighbor's mask bit, and releases c's nodes.
// Neighbor lists are snapshotted before any of them is edited.
func (a *Assembler) detach(c Contig) error {
	codec := a.g.Codec()

	first := c.FirstNode()
	first.ClearPredecessors()
	call := codec.FinalCall(first.Key())
	for _, p := range c.Predecessors().Slice() {
		if err := a.g.RemoveSuccessor(p.LastNode(), call); err != nil {
			return fmt.Errorf("%w: %w", ErrBrokenInvariant, err)
		}
		if !p.Successors().Remove(c) {
			return fmt.Errorf("%w: predecessor %s does not list %s as successor", ErrBrokenInvariant, p, c)
		}
	}

	last := c.LastNode()
	last.ClearSuccessors()
	call = codec.InitialCall(last.Key())
	for _, s := range c.Successors().Slice() {
		if err := a.g.RemovePredecessor(s.FirstNode(), call); err != nil {
			return fmt.Errorf("%w: %w", ErrBrokenInvariant, err)
		}
		if !s.Predecessors().Remove(c) {
			return fmt.Errorf("%w: successor %s does not list %s as predecessor", ErrBrokenInvariant, s, c)
		}
	}

	_, err := a.reown(c, Contig{}, 0)
	return err
}

// reown walks old's k-mers from its first node along sole successors and
// hands each one to next, numbering from offset; a zero next releases them.
// The whole run is collected before any node changes hands, since a hairpin
// holds twins whose ownership flips together. It returns the offset after
// the last node.
func (a *Assembler) reown(old, next Contig, offset int) (int, error) {
	want := old.KmerCount()
	nodes := make([]*dbg.Node, 0, want)
	for n := old.FirstNode(); n != nil && len(nodes) < want && ownedBy(n, old); n = n.SoleSuccessor() {
		nodes = append(nodes, n)
	}
	if len(nodes) != want {
		return offset, fmt.Errorf("%w: contig %s spans %d k-mers, reached %d", ErrBrokenInvariant, old, want, len(nodes))
	}
	for _, n := range nodes {
		if next.IsZero() {
			n.SetOwner(nil, 0)
			continue
		}
		n.SetOwner(next, offset)
		offset++
	}
	return offset, nil
}

// ownedBy reports whether n belongs to c on either strand.
func ownedBy(n *dbg.Node, c Contig) bool {
	o, _ := n.Owner()
	return o != nil && o.(Contig).c == c.c
}
