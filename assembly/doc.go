// SPDX-License-Identifier: MIT

// Package assembly turns a finished k-mer graph into contigs.
//
// What:
//
//	Seed    one contig per maximal unbranched run of k-mers (sole-successor
//	        walks), plus one per perfect cycle.
//	Connect link contig ends into a contig-level graph, oriented by strand.
//	Prune   drop contigs whose best k-mer was seen in fewer than MinSupport
//	        reads, detaching them from their neighbors.
//	Weld    join contigs across edges that are the only exit of one and the
//	        only entry of the other, until no such edge remains.
//	Label   number connected components 1..n in list order.
//	Name    call the contigs tig1..tigN in list order.
//
// Orientation:
//
// A Contig is a value {storage, strand}. RC flips the strand in O(1); the
// reverse complement's predecessor list is the forward successor list with
// every element flipped, and edits through either view land in the same
// storage.
//
// Errors:
//
//   - ErrGraphNil, ErrOptionViolation: bad arguments to New.
//   - ErrPhaseOrder:      a phase ran before its prerequisites.
//   - ErrBrokenInvariant: a link without its reciprocal, a boundary k-mer
//     without a contig end, or a node walk that disagrees with a contig's
//     length. The graph is corrupt; no partial result is usable.
//
// Complexity: every phase is linear in the number of k-mers plus links,
// except Weld, which searches the contig list for each merged partner.
package assembly
