// SPDX-License-Identifier: MIT

package dbg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlasm/hopscotch"
	"github.com/katalvlaran/lvlasm/kmer"
)

// Sentinel errors.
var (
	// ErrOptionViolation is returned by NewGraph for meaningless options.
	ErrOptionViolation = errors.New("dbg: invalid option supplied")

	// ErrReadOrder is returned when a read id is lower than one already seen.
	ErrReadOrder = errors.New("dbg: read ids must not decrease")

	// ErrQualityLength is returned when qualities and bases differ in length.
	ErrQualityLength = errors.New("dbg: quality length differs from base length")

	// ErrMissingNeighbor means a mask names a neighbor the graph does not hold.
	// The graph is corrupt once this is seen.
	ErrMissingNeighbor = errors.New("dbg: neighbor implied by mask not found")
)

// DefaultCapacity is the number of k-mers a new graph is sized for.
const DefaultCapacity = 1_000_000

// noQuality stands in for the quality of every base of a read without
// qualities, so such reads are never split.
const noQuality = 0xff

// Owner is the contig side of node ownership. Flip returns the owner seen
// from the opposite strand; KmerCount is the number of k-mers it spans.
type Owner interface {
	Flip() Owner
	KmerCount() int
}

// Node is one orientation of a k-mer in the graph.
type Node struct {
	key      uint64
	predMask uint8
	succMask uint8
	solePred *Node
	soleSucc *Node
	owner    Owner
	offset   int
	p        *pair
}

// pair is the single allocation behind a canonical k-mer and its twin.
type pair struct {
	fwd, rev     Node
	observations []int
}

// Option configures a Graph.
type Option func(*options)

type options struct {
	k          int
	minQuality byte
	capacity   int
	err        error
}

func defaultOptions() options {
	return options{
		k:          kmer.DefaultK,
		minQuality: kmer.DefaultMinQuality,
		capacity:   DefaultCapacity,
	}
}

// WithK sets the window length. Validation happens in NewGraph.
func WithK(k int) Option {
	return func(o *options) { o.k = k }
}

// WithMinQuality sets the lowest phred score a base may have and still be
// part of a k-mer.
func WithMinQuality(q byte) Option {
	return func(o *options) { o.minQuality = q }
}

// WithCapacity presizes the node set. Zero means the smallest size.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.capacity = n
	}
}

// Graph holds every observed k-mer pair and the per-run read counter.
type Graph struct {
	codec      kmer.Codec
	minQuality byte
	nodes      *hopscotch.Set[*Node]
	nextRead   int
	lastRead   int
}
