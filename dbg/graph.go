// SPDX-License-Identifier: MIT

package dbg

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/katalvlaran/lvlasm/hopscotch"
	"github.com/katalvlaran/lvlasm/kmer"
)

// NewGraph returns an empty graph configured by opts.
func NewGraph(opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	codec, err := kmer.NewCodec(o.k)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}
	return &Graph{
		codec:      codec,
		minQuality: o.minQuality,
		nodes:      hopscotch.New[*Node](o.capacity),
		lastRead:   -1,
	}, nil
}

// Codec returns the k-mer codec the graph was built with.
func (g *Graph) Codec() kmer.Codec { return g.codec }

// K is shorthand for g.Codec().K().
func (g *Graph) K() int { return g.codec.K() }

// MinQuality returns the quality floor used during ingestion.
func (g *Graph) MinQuality() byte { return g.minQuality }

// Len returns the number of canonical k-mers.
func (g *Graph) Len() int { return g.nodes.Len() }

// Reads returns how many reads AddRead has assigned ids to.
func (g *Graph) Reads() int { return g.nextRead }

// Resizes reports how often the node set had to grow.
func (g *Graph) Resizes() int { return g.nodes.Resizes() }

// Nodes yields every canonical node in storage order.
func (g *Graph) Nodes() iter.Seq[*Node] { return g.nodes.All() }

// Find returns the node for key in the orientation given, or nil.
func (g *Graph) Find(key uint64) *Node {
	if g.codec.IsCanonical(key) {
		return g.nodes.Find(key)
	}
	n := g.nodes.Find(g.codec.ReverseComplement(key))
	if n == nil {
		return nil
	}
	return n.RC()
}

// String renders n's k-mer.
func (g *Graph) String(n *Node) string { return g.codec.String(n.key) }

// findOrAdd returns the node for key in the orientation given, creating the
// pair on first sight.
func (g *Graph) findOrAdd(key uint64) (*Node, error) {
	canon, flipped := g.codec.Canonical(key)
	n, err := g.nodes.FindOrAdd(canon, g.newCanonical)
	if err != nil {
		return nil, err
	}
	if flipped {
		return n.RC(), nil
	}
	return n, nil
}

func (g *Graph) newCanonical(key uint64) *Node {
	return &newPair(key, g.codec.ReverseComplement(key)).fwd
}

// Observe records one sighting of n in read readID between pred and succ,
// either of which may be nil. Neighbor bits are mirrored onto the twin and
// the sole-neighbor caches follow the first-seen/second-seen rule.
func (g *Graph) Observe(n, pred, succ *Node, readID int) {
	tw := n.RC()
	if pred != nil {
		call := g.codec.InitialCall(pred.key)
		bit := uint8(1) << call
		if n.predMask&bit == 0 {
			mirror := uint8(1) << (3 - call)
			if n.predMask != 0 {
				n.solePred = nil
				n.predMask |= bit
				tw.soleSucc = nil
				tw.succMask |= mirror
			} else {
				n.solePred = pred
				n.predMask = bit
				tw.soleSucc = pred.RC()
				tw.succMask = mirror
			}
		}
	}
	if succ != nil {
		call := g.codec.FinalCall(succ.key)
		bit := uint8(1) << call
		if n.succMask&bit == 0 {
			mirror := uint8(1) << (3 - call)
			if n.succMask != 0 {
				n.soleSucc = nil
				n.succMask |= bit
				tw.solePred = nil
				tw.predMask |= mirror
			} else {
				n.soleSucc = succ
				n.succMask = bit
				tw.solePred = succ.RC()
				tw.predMask = mirror
			}
		}
	}
	n.p.observations = append(n.p.observations, readID)
}

// Predecessor returns the node reached by prepending base call to n, or nil.
func (g *Graph) Predecessor(n *Node, call int) *Node {
	return g.Find(g.codec.PredecessorKey(n.key, call))
}

// Successor returns the node reached by appending base call to n, or nil.
func (g *Graph) Successor(n *Node, call int) *Node {
	return g.Find(g.codec.SuccessorKey(n.key, call))
}

// RemovePredecessor clears predecessor base call from n and the mirrored
// successor bit from its twin. When one predecessor remains it becomes the
// cached sole predecessor.
func (g *Graph) RemovePredecessor(n *Node, call int) error {
	tw := n.RC()
	n.predMask &^= 1 << call
	tw.succMask &^= 1 << (3 - call)
	n.solePred, tw.soleSucc = nil, nil
	if n.PredecessorCount() != 1 {
		return nil
	}
	left := bits.TrailingZeros8(n.predMask)
	p := g.Predecessor(n, left)
	if p == nil {
		return fmt.Errorf("%w: predecessor %c of %s", ErrMissingNeighbor, kmer.Base(left), g.String(n))
	}
	n.solePred, tw.soleSucc = p, p.RC()
	return nil
}

// RemoveSuccessor is the mirror image of RemovePredecessor.
func (g *Graph) RemoveSuccessor(n *Node, call int) error {
	tw := n.RC()
	n.succMask &^= 1 << call
	tw.predMask &^= 1 << (3 - call)
	n.soleSucc, tw.solePred = nil, nil
	if n.SuccessorCount() != 1 {
		return nil
	}
	left := bits.TrailingZeros8(n.succMask)
	s := g.Successor(n, left)
	if s == nil {
		return fmt.Errorf("%w: successor %c of %s", ErrMissingNeighbor, kmer.Base(left), g.String(n))
	}
	n.soleSucc, tw.solePred = s, s.RC()
	return nil
}
