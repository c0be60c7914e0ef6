// SPDX-License-Identifier: MIT

package assembly

import (
	"fmt"

	"github.com/katalvlaran/lvlasm/dbg"
)

// New prepares an Assembler for g, which must be fully ingested.
func New(g *dbg.Graph, opts ...Option) (*Assembler, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Assembler{g: g, opts: o}, nil
}

// Assemble runs every phase over g and returns the named contigs.
func Assemble(g *dbg.Graph, opts ...Option) ([]Contig, error) {
	a, err := New(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = a.Run(); err != nil {
		return nil, err
	}
	return a.Contigs(), nil
}

// Run executes Seed, Connect, Prune, Weld, Label and Name in order.
func (a *Assembler) Run() error {
	steps := [...]func() error{a.Seed, a.Connect, a.Prune, a.Weld, a.label, a.Name}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Contigs returns the surviving contigs, forward views, in list order.
func (a *Assembler) Contigs() []Contig {
	out := make([]Contig, len(a.contigs))
	copy(out, a.contigs)
	return out
}

// Components returns the number of components found by the last Label.
func (a *Assembler) Components() int { return a.components }

// Seed builds one contig per maximal unbranched run of k-mers.
func (a *Assembler) Seed() error {
	return a.phase(PhaseSeed, nil, a.seed)
}

// Connect links contig ends into the contig-level graph.
func (a *Assembler) Connect() error {
	return a.phase(PhaseConnect, []Phase{PhaseSeed}, a.connect)
}

// Prune removes contigs below the support threshold. It runs once.
func (a *Assembler) Prune() error {
	return a.phase(PhasePrune, []Phase{PhaseConnect}, a.prune)
}

// Weld merges mutually unique neighbors until none are left. Running it
// again is a no-op.
func (a *Assembler) Weld() error {
	return a.phase(PhaseWeld, []Phase{PhasePrune}, a.weld)
}

// Label assigns component ids and returns how many components there are.
func (a *Assembler) Label() (int, error) {
	err := a.label()
	return a.components, err
}

func (a *Assembler) label() error {
	return a.phase(PhaseLabel, []Phase{PhaseWeld}, func() error {
		a.components = a.markComponents()
		return nil
	})
}

// Name assigns display names tig1..tigN in list order.
func (a *Assembler) Name() error {
	return a.phase(PhaseName, []Phase{PhaseLabel}, func() error {
		a.nameContigs()
		return nil
	})
}

// phase checks prerequisites, runs fn between the hooks and records p as
// done. Seed, Connect and Prune may only run once.
func (a *Assembler) phase(p Phase, needs []Phase, fn func() error) error {
	for _, need := range needs {
		if !a.done[need] {
			return fmt.Errorf("%w: %s before %s", ErrPhaseOrder, p, need)
		}
	}
	if a.done[p] && p <= PhasePrune {
		return fmt.Errorf("%w: %s already ran", ErrPhaseOrder, p)
	}
	a.opts.onStart(p)
	if err := fn(); err != nil {
		return fmt.Errorf("assembly: %s: %w", p, err)
	}
	a.done[p] = true
	a.opts.onDone(p, len(a.contigs))
	return nil
}
