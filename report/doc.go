// SPDX-License-Identifier: MIT

// Package report renders a finished assembly.
//
// What:
//
//   - WriteTable: one tab-separated line per contig (name, predecessors,
//     successors, max observations, length, sequence).
//   - WriteDOT: a Graphviz digraph with both orientations of every contig,
//     built with github.com/awalterschulze/gographviz.
//   - Summarize: contig count, total bases, longest contig, N50 and
//     component count; Summary.String formats numbers with go-humanize.
//   - TracePath / WritePaths: a second pass over the reads that explains
//     where each read lands in the contig graph. Purely diagnostic; the
//     graph is not modified.
//
// Contigs must be named (assembly.PhaseName) before they are rendered;
// WriteTable and WriteDOT return ErrUnnamed otherwise.
//
// Complexity:
//
//   - WriteTable, WriteDOT: O(total links + total bases).
//   - Summarize: O(C log C) for C contigs.
//   - TracePath: O(L) expected for a read of L bases.
package report
