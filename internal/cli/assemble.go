// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlasm/assembly"
	"github.com/katalvlaran/lvlasm/dbg"
	"github.com/katalvlaran/lvlasm/internal/app"
	"github.com/katalvlaran/lvlasm/internal/config"
	"github.com/katalvlaran/lvlasm/kmer"
	"github.com/katalvlaran/lvlasm/reads"
)

func newAssembleCommand(v *viper.Viper, streams app.Streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assemble [flags] reads.fq [reads2.fq ...]",
		Short: "Assemble FASTA/FASTQ reads into contigs",
		Long: `Assemble reads the given files (plain, gzip, xz or zstd), builds the k-mer graph
and writes one line per contig:

  name  predecessors  successors  maxObservations  length  sequence`,
		Args:                       cobra.MinimumNArgs(1),
		SuggestionsMinimumDistance: 2,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd, v)
			if err != nil {
				return err
			}
			cfg.Inputs = args
			log := logger(streams.Stderr, cfg.Verbose)
			res, err := app.Assemble(cmd.Context(), cfg, log, streams)
			if err != nil {
				return err
			}
			log.Info("summary", "run", res.RunID, "result", res.Summary.String())
			return nil
		},
	}

	f := cmd.Flags()
	f.IntP("kmer-size", "k", kmer.DefaultK, "k-mer length (odd, at most 31)")
	f.IntP("min-quality", "q", kmer.DefaultMinQuality, "lowest phred score a base may have")
	f.IntP("min-support", "s", assembly.DefaultMinSupport, "lowest max observation count a contig needs")
	f.Int("capacity", dbg.DefaultCapacity, "expected number of distinct k-mers")
	f.Int("phred-offset", reads.DefaultPhredOffset, "ASCII offset of FASTQ qualities")
	f.String("dot", "", "write the contig graph in Graphviz DOT format to this file")
	f.String("paths", "", "write per-read contig paths to this file")
	f.String("metrics", "", "write Prometheus metrics in textfile format to this file")
	f.Bool("progress", false, "show a progress bar while reading")

	bind(v, f.Lookup("kmer-size"), config.KeyK)
	bind(v, f.Lookup("min-quality"), config.KeyMinQuality)
	bind(v, f.Lookup("min-support"), config.KeyMinSupport)
	bind(v, f.Lookup("capacity"), config.KeyCapacity)
	bind(v, f.Lookup("phred-offset"), config.KeyPhredOffset)
	bind(v, f.Lookup("dot"), config.KeyDOT)
	bind(v, f.Lookup("paths"), config.KeyPaths)
	bind(v, f.Lookup("metrics"), config.KeyMetrics)
	bind(v, f.Lookup("progress"), config.KeyProgress)
	return cmd
}
