// SPDX-License-Identifier: MIT

// Package dbg builds the k-mer adjacency graph that the assembler walks.
//
// What:
//
//   - One node pair per canonical k-mer seen in the reads. The pair is a single
//     allocation holding the forward node and its reverse complement (twin);
//     the two share one observation list and keep mirrored neighbor masks:
//     bit i of a predecessor mask corresponds to bit 3-i of the twin's
//     successor mask.
//   - Each node caches its sole predecessor/successor while the respective
//     mask has exactly one bit set. The cache is set when the first neighbor
//     is seen, cleared when a second one appears, and re-derived by lookup
//     only when a removal leaves exactly one bit.
//   - Nodes record which contig (Owner) holds them and at which offset; the
//     twin is kept pointing at the flipped owner.
//
// Ingestion:
//
//	g, _ := dbg.NewGraph(dbg.WithK(31), dbg.WithMinQuality(24))
//	for _, r := range reads {
//	    if _, err := g.AddRead(r.Bases, r.Quals); err != nil { ... }
//	}
//
// A base below the quality floor or outside {A,C,G,T} ends the current run of
// k-mers: the last node is finalized without a successor and the window
// restarts, so no adjacency is ever recorded across such a gap.
//
// Complexity:
//
//   - AddRead: O(len(read)) set operations.
//   - RemovePredecessor / RemoveSuccessor: O(1) plus one lookup.
//
// Errors:
//
//   - ErrOptionViolation: invalid option passed to NewGraph.
//   - ErrReadOrder:       read ids must never decrease.
//   - ErrQualityLength:   qualities present but not one per base.
//   - ErrMissingNeighbor: a neighbor implied by a mask is not in the graph.
//
// The graph is not safe for concurrent use.
package dbg
