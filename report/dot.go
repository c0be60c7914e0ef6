// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/lvlasm/assembly"
)

const graphName = "assembly"

// BuildDOT returns the contig graph as a gographviz graph. Every contig
// appears twice, once per strand, with width proportional to its length.
// Edges run from a contig to each successor, and from a contig's reverse
// complement to each predecessor's reverse complement.
func BuildDOT(contigs []assembly.Contig) (*gographviz.Graph, error) {
	if err := checkNamed(contigs); err != nil {
		return nil, err
	}
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}

	for _, c := range contigs {
		attrs := map[string]string{
			"width": strconv.FormatFloat(float64(c.Len())/100, 'f', -1, 64),
		}
		for _, v := range []assembly.Contig{c, c.RC()} {
			if err := g.AddNode(graphName, v.Name(), attrs); err != nil {
				return nil, fmt.Errorf("report: node %s: %w", v.Name(), err)
			}
		}
	}
	for _, c := range contigs {
		for p := range c.Predecessors().All() {
			if err := g.AddEdge(c.RC().Name(), p.RC().Name(), true, nil); err != nil {
				return nil, fmt.Errorf("report: edge %s: %w", c.RC().Name(), err)
			}
		}
		for s := range c.Successors().All() {
			if err := g.AddEdge(c.Name(), s.Name(), true, nil); err != nil {
				return nil, fmt.Errorf("report: edge %s: %w", c.Name(), err)
			}
		}
	}
	return g, nil
}

// WriteDOT writes BuildDOT's graph in DOT syntax.
func WriteDOT(w io.Writer, contigs []assembly.Contig) error {
	g, err := BuildDOT(contigs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())
	return err
}
