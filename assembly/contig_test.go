// SPDX-License-Identifier: MIT

package assembly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContig_ReverseComplementView(t *testing.T) {
	const stem = "GGATCACAGTCTACACTGCTCACTCCAACCCCGGC"
	g := buildGraph(t, 31, stem+"CCCTGAGTCC", stem+"GAGGAGAGGG", stem+"CCCTGAGTCC")
	a, err := New(g, WithMinSupport(1))
	require.NoError(t, err)
	require.NoError(t, a.Run())

	for _, c := range a.Contigs() {
		rc := c.RC()
		require.Equal(t, c, rc.RC())
		require.Equal(t, c, rc.Canonical())
		require.False(t, rc.IsCanonical())
		require.Equal(t, reverseComplement(c.Sequence()), rc.Sequence())
		require.Equal(t, c.Len(), rc.Len())
		require.Equal(t, c.KmerCount(), rc.KmerCount())
		require.Same(t, c.LastNode().RC(), rc.FirstNode())
		require.Same(t, c.FirstNode().RC(), rc.LastNode())
		require.Equal(t, c.Name()+"RC", rc.Name())
		require.Equal(t, c.ComponentID(), rc.ComponentID())

		require.Equal(t, c.Successors().Len(), rc.Predecessors().Len())
		for i := 0; i < c.Successors().Len(); i++ {
			require.Equal(t, c.Successors().At(i).RC(), rc.Predecessors().At(i))
		}
		for i := 0; i < c.Predecessors().Len(); i++ {
			require.Equal(t, c.Predecessors().At(i).RC(), rc.Successors().At(i))
		}
	}
}

func TestLinks_EditsThroughEitherView(t *testing.T) {
	x := Contig{c: &contig{name: "x"}}
	y := Contig{c: &contig{name: "y"}}
	z := Contig{c: &contig{name: "z"}}

	// writes through the reverse-complement view land flipped in storage
	x.RC().Predecessors().Append(y)
	require.Equal(t, []Contig{y.RC()}, x.c.succs)
	require.Equal(t, y.RC(), x.Successors().At(0))
	require.Equal(t, y, x.RC().Predecessors().At(0))

	x.RC().Predecessors().Append(z.RC())
	require.Equal(t, 1, x.RC().Predecessors().Index(z.RC()))
	require.Equal(t, 1, x.Successors().Index(z))

	x.RC().Predecessors().Set(0, z)
	require.Equal(t, z.RC(), x.c.succs[0])

	require.True(t, x.Successors().Remove(z.RC()))
	require.False(t, x.Successors().Remove(y))
	require.Equal(t, []Contig{z}, x.c.succs)
	require.Equal(t, []Contig{z}, x.Successors().Slice())
	require.Equal(t, []Contig{z.RC()}, x.RC().Predecessors().Slice())

	var none Links
	require.Zero(t, none.Len())
	require.Equal(t, -1, none.Index(x))
	require.False(t, none.Remove(x))
}

func TestContig_String(t *testing.T) {
	require.Equal(t, "<none>", Contig{}.String())
	c := Contig{c: &contig{}}
	require.Equal(t, "<unnamed>", c.String())
	c.c.name = "tig7"
	require.Equal(t, "tig7", c.String())
	require.Equal(t, "tig7RC", c.RC().String())
	require.True(t, Contig{}.IsZero())
	require.False(t, c.IsZero())
}
