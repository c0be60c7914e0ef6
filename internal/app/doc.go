// SPDX-License-Identifier: MIT

// Package app wires the library packages into the lvlasm commands: it reads
// input files, builds the graph, runs the assembly phases and writes the
// requested outputs, with structured logs, a progress bar, one trace span
// per phase and a Prometheus textfile of run metrics.
package app
