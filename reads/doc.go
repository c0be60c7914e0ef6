// SPDX-License-Identifier: MIT

// Package reads supplies sequencing reads to the graph builder.
//
// What:
//
//   - Read is one record: a name, its base calls and, optionally, phred
//     quality values (already decoded, not ASCII).
//   - Source yields reads one at a time and reports io.EOF when done.
//   - FastxSource parses FASTA/FASTQ files (plain or compressed) through
//     github.com/shenwei356/bio; FASTA records carry nil qualities.
//   - FileChain reads several files in sequence, opening them lazily.
//   - SliceSource serves reads held in memory.
//   - ForEach drains a Source into a callback.
//
// Errors:
//
//   - ErrQualityEncoding: an ASCII quality below the configured phred offset.
//   - ErrOptionViolation: a meaningless option (e.g. a negative offset).
//   - Parser and I/O errors are wrapped with the file name.
package reads
