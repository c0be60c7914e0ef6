// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlasm/internal/app"
	"github.com/katalvlaran/lvlasm/internal/config"
	"github.com/katalvlaran/lvlasm/simulate"
)

func newSimulateCommand(v *viper.Viper, streams app.Streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "simulate",
		Aliases: []string{"sim"},
		Short:   "Write synthetic FASTQ reads tiled over a random genome",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd, v)
			if err != nil {
				return err
			}
			return app.Simulate(cmd.Context(), cfg, logger(streams.Stderr, cfg.Verbose), streams)
		},
	}

	f := cmd.Flags()
	f.Int("genome-length", 10_000, "length of the random genome")
	f.Int("read-length", 150, "length of every read")
	f.Int("step", 10, "distance between consecutive read starts")
	f.Float64("error-rate", 0, "per-base substitution probability")
	f.Float64("dropout-rate", 0, "per-base probability of a low quality score")
	f.Int64("seed", simulate.DefaultSeed, "random seed")
	f.Bool("both-strands", true, "emit every second read reverse-complemented")
	f.String("genome-out", "", "also write the genome as FASTA to this file")

	bind(v, f.Lookup("genome-length"), config.KeyGenomeLength)
	bind(v, f.Lookup("read-length"), config.KeyReadLength)
	bind(v, f.Lookup("step"), config.KeyStep)
	bind(v, f.Lookup("error-rate"), config.KeyErrorRate)
	bind(v, f.Lookup("dropout-rate"), config.KeyDropoutRate)
	bind(v, f.Lookup("seed"), config.KeySeed)
	bind(v, f.Lookup("both-strands"), config.KeyBothStrands)
	bind(v, f.Lookup("genome-out"), config.KeyGenomeOut)
	return cmd
}
