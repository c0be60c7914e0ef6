// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvlasm/assembly"
	"github.com/katalvlaran/lvlasm/dbg"
	"github.com/katalvlaran/lvlasm/internal/config"
	"github.com/katalvlaran/lvlasm/reads"
	"github.com/katalvlaran/lvlasm/report"
)

const tracerName = "github.com/katalvlaran/lvlasm"

// Streams are the process's standard streams. Output paths of "-" go to
// Stdout; the progress bar goes to Stderr.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes a finished assembly run.
type Result struct {
	RunID   string
	Reads   int
	Kmers   int
	Contigs []assembly.Contig
	Summary report.Summary
}

type run struct {
	cfg     config.Config
	log     *slog.Logger
	streams Streams
	tracer  trace.Tracer
	metrics *metrics
	graph   *dbg.Graph
}

// Assemble runs the assemble command end to end.
func Assemble(ctx context.Context, cfg config.Config, logger *slog.Logger, streams Streams) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	id := uuid.NewString()
	r := &run{
		cfg:     cfg,
		log:     logger.With("run", id),
		streams: streams,
		tracer:  otel.Tracer(tracerName),
		metrics: newMetrics(id),
	}

	ctx, span := r.tracer.Start(ctx, "lvlasm.Assemble", trace.WithAttributes(
		attribute.String("run_id", id),
		attribute.Int("k", cfg.K),
		attribute.Int("inputs", len(cfg.Inputs)),
	))
	defer span.End()

	res, err := r.assemble(ctx)
	res.RunID = id
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "assembly failed")
		return res, err
	}

	if cfg.Metrics != "" {
		if err := r.metrics.write(cfg.Metrics); err != nil {
			return res, fmt.Errorf("app: metrics: %w", err)
		}
	}
	span.SetAttributes(
		attribute.Int("contigs", res.Summary.Contigs),
		attribute.Int("n50", res.Summary.N50),
	)
	return res, nil
}

func (r *run) assemble(ctx context.Context) (Result, error) {
	var res Result
	g, err := dbg.NewGraph(
		dbg.WithK(r.cfg.K),
		dbg.WithMinQuality(byte(r.cfg.MinQuality)),
		dbg.WithCapacity(r.cfg.Capacity),
	)
	if err != nil {
		return res, err
	}
	r.graph = g

	if err = r.ingest(ctx); err != nil {
		return res, err
	}
	res.Reads, res.Kmers = g.Reads(), g.Len()

	contigs, err := r.runPhases(ctx)
	if err != nil {
		return res, err
	}
	res.Contigs = contigs
	res.Summary = report.Summarize(contigs)
	r.metrics.n50.Set(float64(res.Summary.N50))
	r.log.Info("assembly finished",
		"contigs", humanize.Comma(int64(res.Summary.Contigs)),
		"bases", humanize.Comma(int64(res.Summary.Bases)),
		"n50", res.Summary.N50,
		"components", res.Summary.Components)

	if err = r.writeOutputs(ctx, contigs); err != nil {
		return res, err
	}
	return res, nil
}

// ingest streams every input read into the graph.
func (r *run) ingest(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "lvlasm.ingest")
	defer span.End()

	start := time.Now()
	src := reads.OpenChain(r.cfg.Inputs, reads.WithPhredOffset(r.cfg.PhredOffset))
	defer src.Close()
	bar := newProgress(r.cfg.Progress, r.streams.Stderr)
	defer bar.finish()

	file := ""
	err := reads.ForEach(src, func(rd reads.Read) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f := src.File(); f != file {
			file = f
			bar.file(f)
			r.log.Debug("reading", "file", f)
		}
		if _, err := r.graph.AddRead(rd.Bases, rd.Quals); err != nil {
			return fmt.Errorf("app: %s read %q: %w", file, rd.Name, err)
		}
		r.metrics.reads.Inc()
		r.metrics.bases.Add(float64(rd.Len()))
		bar.increment()
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ingest failed")
		return err
	}

	g := r.graph
	r.metrics.kmers.Set(float64(g.Len()))
	r.metrics.resizes.Set(float64(g.Resizes()))
	span.SetAttributes(attribute.Int("reads", g.Reads()), attribute.Int("kmers", g.Len()))
	r.log.Info("graph built",
		"reads", humanize.Comma(int64(g.Reads())),
		"kmers", humanize.Comma(int64(g.Len())),
		"resizes", g.Resizes(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// runPhases runs the assembly phases in order, checking ctx between them.
// Each phase gets a span, a debug line and a gauge sample.
func (r *run) runPhases(ctx context.Context) ([]assembly.Contig, error) {
	var (
		span    trace.Span
		started time.Time
	)
	onStart := func(p assembly.Phase) {
		_, span = r.tracer.Start(ctx, "lvlasm.phase."+p.String())
		started = time.Now()
	}
	onDone := func(p assembly.Phase, n int) {
		elapsed := time.Since(started)
		r.metrics.contigs.WithLabelValues(p.String()).Set(float64(n))
		r.metrics.phaseDuration.WithLabelValues(p.String()).Set(elapsed.Seconds())
		span.SetAttributes(attribute.Int("contigs", n))
		span.End()
		span = nil
		r.log.Debug("phase done", "phase", p.String(), "contigs", n, "elapsed", elapsed.Round(time.Microsecond))
	}

	a, err := assembly.New(r.graph,
		assembly.WithMinSupport(r.cfg.MinSupport),
		assembly.WithOnPhaseStart(onStart),
		assembly.WithOnPhaseDone(onDone))
	if err != nil {
		return nil, err
	}
	steps := []func() error{
		a.Seed, a.Connect, a.Prune, a.Weld,
		func() error { _, err := a.Label(); return err },
		a.Name,
	}
	for _, step := range steps {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if err = step(); err != nil {
			if span != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "phase failed")
				span.End()
			}
			return nil, err
		}
	}
	return a.Contigs(), nil
}

func (r *run) writeOutputs(ctx context.Context, contigs []assembly.Contig) error {
	outputs := []struct {
		path  string
		write func(io.Writer) error
	}{
		{r.cfg.Out, func(w io.Writer) error { return report.WriteTable(w, contigs) }},
		{r.cfg.DOT, func(w io.Writer) error { return report.WriteDOT(w, contigs) }},
		{r.cfg.Paths, func(w io.Writer) error {
			src := reads.OpenChain(r.cfg.Inputs, reads.WithPhredOffset(r.cfg.PhredOffset))
			defer src.Close()
			return report.WritePaths(w, r.graph, &cancelable{ctx: ctx, src: src})
		}},
	}
	for _, o := range outputs {
		if err := writeTo(o.path, r.streams.Stdout, o.write); err != nil {
			return fmt.Errorf("app: write %s: %w", o.path, err)
		}
	}
	return nil
}

// writeTo sends fn's output to path: "" skips, "-" is stdout.
func writeTo(path string, stdout io.Writer, fn func(io.Writer) error) (err error) {
	switch path {
	case "":
		return nil
	case "-":
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return fn(f)
}

// cancelable stops a Source once ctx is done.
type cancelable struct {
	ctx context.Context
	src reads.Source
}

func (c *cancelable) Next() (reads.Read, error) {
	if err := c.ctx.Err(); err != nil {
		return reads.Read{}, err
	}
	return c.src.Next()
}
