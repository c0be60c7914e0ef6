// SPDX-License-Identifier: MIT

// Package lvlasm is a k-mer de Bruijn graph assembler for short sequencing
// reads: it turns a pile of overlapping reads into contigs, the longest
// stretches of sequence the reads support without ambiguity.
//
// What is inside?
//
//	kmer/       - 2-bit k-mer keys, reverse complements, canonical form,
//	              rolling quality-aware windows
//	hopscotch/  - open-addressing hash set with bounded chains, the k-mer table
//	dbg/        - the adjacency graph: one node pair per canonical k-mer with
//	              predecessor/successor masks and read observations
//	assembly/   - seed, connect, prune, weld, label and name contigs
//	reads/      - FASTA/FASTQ input (plain or compressed) and in-memory sources
//	report/     - contig table, Graphviz export, summary (N50) and read paths
//	simulate/   - synthetic genomes and reads for tests and benchmarks
//	cmd/lvlasm  - the command line: assemble, simulate, version
//
// Quick start:
//
//	g, _ := dbg.NewGraph(dbg.WithK(31))
//	for _, r := range myReads {
//		_, _ = g.AddRead(r.Bases, r.Quals)
//	}
//	contigs, err := assembly.Assemble(g)
//	...
//	_ = report.WriteTable(os.Stdout, contigs)
//
// Library packages never log and never touch global state; the command
// line adds structured logging, configuration, progress, metrics and
// tracing on top (internal/app, internal/cli, internal/config).
//
//	go install github.com/katalvlaran/lvlasm/cmd/lvlasm@latest
package lvlasm
