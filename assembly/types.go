// SPDX-License-Identifier: MIT

package assembly

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlasm/dbg"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned by New for a nil graph.
	ErrGraphNil = errors.New("assembly: graph is nil")

	// ErrOptionViolation is returned by New for meaningless options.
	ErrOptionViolation = errors.New("assembly: invalid option supplied")

	// ErrPhaseOrder is returned when a phase runs before its prerequisites
	// or a one-shot phase runs twice.
	ErrPhaseOrder = errors.New("assembly: phase out of order")

	// ErrBrokenInvariant means the contig graph is inconsistent: a link has
	// no reciprocal, or a boundary k-mer has no contig end. The run must be
	// abandoned.
	ErrBrokenInvariant = errors.New("assembly: broken graph invariant")
)

// DefaultMinSupport is the lowest max-observation count a contig needs to
// survive pruning. Contigs seen in a single read fall below it.
const DefaultMinSupport = 2

// Phase names a pipeline step.
type Phase int

// Pipeline steps in execution order.
const (
	PhaseSeed Phase = iota
	PhaseConnect
	PhasePrune
	PhaseWeld
	PhaseLabel
	PhaseName
)

// Phases lists every phase in execution order.
var Phases = [...]Phase{PhaseSeed, PhaseConnect, PhasePrune, PhaseWeld, PhaseLabel, PhaseName}

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseSeed:
		return "seed"
	case PhaseConnect:
		return "connect"
	case PhasePrune:
		return "prune"
	case PhaseWeld:
		return "weld"
	case PhaseLabel:
		return "label"
	case PhaseName:
		return "name"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Option configures an Assembler.
type Option func(*options)

type options struct {
	minSupport int
	onStart    func(Phase)
	onDone     func(Phase, int)
	err        error
}

func defaultOptions() options {
	return options{
		minSupport: DefaultMinSupport,
		onStart:    func(Phase) {},
		onDone:     func(Phase, int) {},
	}
}

// WithMinSupport sets the pruning threshold: contigs whose max observation
// count is below n are removed. n must be at least 1; 1 disables pruning.
func WithMinSupport(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: min support must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.minSupport = n
	}
}

// WithOnPhaseStart registers a callback run before each phase.
func WithOnPhaseStart(fn func(Phase)) Option {
	return func(o *options) {
		if fn != nil {
			o.onStart = fn
		}
	}
}

// WithOnPhaseDone registers a callback run after each successful phase with
// the number of contigs it left.
func WithOnPhaseDone(fn func(p Phase, contigs int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onDone = fn
		}
	}
}

// Assembler runs the pipeline over one finished graph. It mutates node
// ownership in the graph and is not safe for concurrent use.
type Assembler struct {
	g          *dbg.Graph
	opts       options
	contigs    []Contig // canonical views, in list order
	done       [len(Phases)]bool
	components int
}
