// SPDX-License-Identifier: MIT

// Package simulate produces synthetic genomes and sequencing reads for
// tests, benchmarks and the "simulate" command.
//
// What:
//
//   - Genome draws a uniformly random ACGT sequence.
//   - Reads tiles a genome with fixed-length reads at a fixed step, with
//     optional substitution errors, low-quality dropouts and alternating
//     strands.
//   - WriteFASTQ serializes reads with Sanger (+33) qualities.
//
// Determinism: every random draw comes from the *rand.Rand supplied via
// WithSeed or WithRand; without one a fixed default seed is used, so equal
// inputs always give equal outputs.
//
// Options follow the package's strict contract: constructors panic on
// meaningless arguments (negative rates, nil RNG). Generators never panic.
package simulate
