// SPDX-License-Identifier: MIT

package dbg

import "math/bits"

func newPair(key, rcKey uint64) *pair {
	p := &pair{}
	p.fwd = Node{key: key, p: p}
	p.rev = Node{key: rcKey, p: p}
	return p
}

// Key returns the packed k-mer of this orientation.
func (n *Node) Key() uint64 { return n.key }

// RC returns the twin.
func (n *Node) RC() *Node {
	if n == &n.p.fwd {
		return &n.p.rev
	}
	return &n.p.fwd
}

// Canonical returns the orientation stored in the graph's set.
func (n *Node) Canonical() *Node { return &n.p.fwd }

// IsCanonical reports whether n is the stored orientation.
func (n *Node) IsCanonical() bool { return n == &n.p.fwd }

// PredecessorMask has bit c set when base c was seen right before this k-mer.
func (n *Node) PredecessorMask() uint8 { return n.predMask }

// SuccessorMask has bit c set when base c was seen right after this k-mer.
func (n *Node) SuccessorMask() uint8 { return n.succMask }

// PredecessorCount is the number of distinct preceding bases.
func (n *Node) PredecessorCount() int { return bits.OnesCount8(n.predMask) }

// SuccessorCount is the number of distinct following bases.
func (n *Node) SuccessorCount() int { return bits.OnesCount8(n.succMask) }

// SolePredecessor returns the only predecessor, or nil unless there is
// exactly one.
func (n *Node) SolePredecessor() *Node { return n.solePred }

// SoleSuccessor returns the only successor, or nil unless there is exactly
// one.
func (n *Node) SoleSuccessor() *Node { return n.soleSucc }

// Observations lists the ids of the reads that contained this k-mer, in
// either orientation, in non-decreasing order. The slice is shared with the
// twin and must not be modified.
func (n *Node) Observations() []int { return n.p.observations }

// ObservationCount is len(Observations()).
func (n *Node) ObservationCount() int { return len(n.p.observations) }

// Owner returns the contig holding n and n's k-mer offset within it, or
// (nil, 0) when n is unowned.
func (n *Node) Owner() (Owner, int) { return n.owner, n.offset }

// SetOwner assigns n to o at offset and the twin to o.Flip() at the mirrored
// offset. A nil o clears both.
func (n *Node) SetOwner(o Owner, offset int) {
	tw := n.RC()
	if o == nil {
		n.owner, n.offset = nil, 0
		tw.owner, tw.offset = nil, 0
		return
	}
	n.owner, n.offset = o, offset
	tw.owner, tw.offset = o.Flip(), o.KmerCount()-1-offset
}

// ClearPredecessors drops every predecessor of n, and the matching
// successors of its twin.
func (n *Node) ClearPredecessors() {
	tw := n.RC()
	n.predMask, n.solePred = 0, nil
	tw.succMask, tw.soleSucc = 0, nil
}

// ClearSuccessors drops every successor of n, and the matching predecessors
// of its twin.
func (n *Node) ClearSuccessors() {
	tw := n.RC()
	n.succMask, n.soleSucc = 0, nil
	tw.predMask, tw.solePred = 0, nil
}
