// SPDX-License-Identifier: MIT

// Package cli defines the lvlasm command tree.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlasm/internal/app"
	"github.com/katalvlaran/lvlasm/internal/config"
)

// Version is stamped at build time with -ldflags "-X".
var Version = "dev"

const flagConfig = "config"

// NewRootCommand builds the command tree around a fresh viper instance.
func NewRootCommand(streams app.Streams) *cobra.Command {
	v := config.New()
	root := &cobra.Command{
		Use:   "lvlasm",
		Short: "Assemble short reads into contigs with a k-mer de Bruijn graph",
		Long: `lvlasm builds a de Bruijn graph of the k-mers in a set of FASTA/FASTQ reads,
walks it into contigs, removes weakly supported branches, welds unambiguous
joins and reports the result as a table, a Graphviz file and per-read paths.

Settings come from flags, LVLASM_* environment variables and an optional
config file (--config), in that order of precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(streams.Stdout)
	root.SetErr(streams.Stderr)

	root.PersistentFlags().String(flagConfig, "", "config file (yaml, toml or json)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every phase")
	root.PersistentFlags().StringP("out", "o", "-", `output file, "-" for stdout`)
	bind(v, root.PersistentFlags().Lookup("verbose"), config.KeyVerbose)
	bind(v, root.PersistentFlags().Lookup("out"), config.KeyOut)

	root.AddCommand(
		newAssembleCommand(v, streams),
		newSimulateCommand(v, streams),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string, streams app.Streams) int {
	root := NewRootCommand(streams)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		logger(streams.Stderr, false).Error("lvlasm failed", "err", err)
		return 1
	}
	return 0
}

// load merges the config file named on the command line into v.
func load(cmd *cobra.Command, v *viper.Viper) (config.Config, error) {
	file, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(v, file)
}

func logger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
