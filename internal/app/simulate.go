// SPDX-License-Identifier: MIT

package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvlasm/internal/config"
	"github.com/katalvlaran/lvlasm/simulate"
)

const fastaWidth = 60

// Simulate writes synthetic reads as FASTQ to cfg.Out and, when
// cfg.Simulate.GenomeOut is set, the genome itself as FASTA.
func Simulate(ctx context.Context, cfg config.Config, logger *slog.Logger, streams Streams) error {
	if err := cfg.ValidateSimulate(); err != nil {
		return err
	}
	s := cfg.Simulate
	rng := rand.New(rand.NewSource(s.Seed))

	genome, err := simulate.Genome(s.GenomeLength, simulate.WithRand(rng))
	if err != nil {
		return err
	}
	opts := []simulate.Option{
		simulate.WithRand(rng),
		simulate.WithErrorRate(s.ErrorRate),
		simulate.WithDropoutRate(s.DropoutRate, simulate.DefaultLowQuality),
	}
	if s.BothStrands {
		opts = append(opts, simulate.WithBothStrands())
	}
	rs, err := simulate.Reads(genome, s.ReadLength, s.Step, opts...)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	out := cfg.Out
	if out == "" {
		out = "-"
	}
	if err = writeTo(out, streams.Stdout, func(w io.Writer) error { return simulate.WriteFASTQ(w, rs) }); err != nil {
		return fmt.Errorf("app: write %s: %w", out, err)
	}
	if err = writeTo(s.GenomeOut, streams.Stdout, func(w io.Writer) error { return writeFASTA(w, "genome", genome) }); err != nil {
		return fmt.Errorf("app: write %s: %w", s.GenomeOut, err)
	}

	logger.Info("simulated reads",
		"genome", humanize.Comma(int64(len(genome))),
		"reads", humanize.Comma(int64(len(rs))),
		"coverage", fmt.Sprintf("%.1fx", float64(len(rs)*s.ReadLength)/float64(len(genome))),
		"seed", s.Seed)
	return nil
}

func writeFASTA(w io.Writer, name string, seq []byte) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(">" + name + "\n")
	for len(seq) > 0 {
		n := min(fastaWidth, len(seq))
		bw.Write(seq[:n])
		bw.WriteByte('\n')
		seq = seq[n:]
	}
	return bw.Flush()
}
