// SPDX-License-Identifier: MIT

package dbg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlasm/kmer"
)

// fakeOwner stands in for a contig: a name plus an orientation flag.
type fakeOwner struct {
	name  string
	rc    bool
	kmers int
}

func (f fakeOwner) Flip() Owner    { return fakeOwner{name: f.name, rc: !f.rc, kmers: f.kmers} }
func (f fakeOwner) KmerCount() int { return f.kmers }

type GraphSuite struct {
	suite.Suite
	g *Graph
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) SetupTest() {
	g, err := NewGraph(WithK(5), WithMinQuality(20), WithCapacity(0))
	require.NoError(s.T(), err)
	s.g = g
}

func (s *GraphSuite) node(seq string) *Node {
	key, err := s.g.Codec().Encode([]byte(seq))
	require.NoError(s.T(), err)
	return s.g.Find(key)
}

func (s *GraphSuite) add(seq string) int {
	id, err := s.g.AddRead([]byte(seq), nil)
	require.NoError(s.T(), err)
	return id
}

// TestLinearRead checks masks, sole links and the twin mirror on one read.
func (s *GraphSuite) TestLinearRead() {
	s.add("ACGTTGCA")
	require.Equal(s.T(), 4, s.g.Len())

	first := s.node("ACGTT")
	second := s.node("CGTTG")
	require.NotNil(s.T(), first)
	require.NotNil(s.T(), second)

	require.Zero(s.T(), first.PredecessorCount())
	require.Equal(s.T(), uint8(1<<2), first.SuccessorMask()) // G
	require.Same(s.T(), second, first.SoleSuccessor())
	require.Same(s.T(), first, second.SolePredecessor())

	twin := s.node("AACGT")
	require.Same(s.T(), first.RC(), twin)
	require.Equal(s.T(), uint8(1<<1), twin.PredecessorMask()) // complement of G
	require.Same(s.T(), s.node("CAACG"), twin.SolePredecessor())
	require.Zero(s.T(), twin.SuccessorCount())

	require.Equal(s.T(), []int{0}, first.Observations())
	require.Equal(s.T(), []int{0}, twin.Observations())
	require.Nil(s.T(), s.node("TTTTT"))
}

// TestTwinStructure checks the pair is closed under RC and Canonical.
func (s *GraphSuite) TestTwinStructure() {
	s.add("ACGTTGCA")
	for n := range s.g.Nodes() {
		require.True(s.T(), n.IsCanonical())
		require.True(s.T(), s.g.Codec().IsCanonical(n.Key()))
		require.Same(s.T(), n, n.RC().RC())
		require.Same(s.T(), n, n.RC().Canonical())
		require.False(s.T(), n.RC().IsCanonical())
		require.Equal(s.T(), s.g.Codec().ReverseComplement(n.Key()), n.RC().Key())
	}
}

// TestRepeatedReadAppendsObservations verifies ids accumulate in order.
func (s *GraphSuite) TestRepeatedReadAppendsObservations() {
	require.Equal(s.T(), 0, s.add("ACGTTGCA"))
	require.Equal(s.T(), 1, s.add("ACGTTGCA"))
	// the reverse complement strand hits the same pairs
	require.Equal(s.T(), 2, s.add("TGCAACGT"))

	require.Equal(s.T(), 4, s.g.Len())
	require.Equal(s.T(), 3, s.g.Reads())
	require.Equal(s.T(), []int{0, 1, 2}, s.node("GTTGC").Observations())
	require.Equal(s.T(), 1, s.node("GTTGC").SuccessorCount())
}

// TestLowQualityBreaksRun verifies no adjacency is recorded across a gap.
func (s *GraphSuite) TestLowQualityBreaksRun() {
	quals := bytes.Repeat([]byte{30}, 8)
	quals[5] = 2
	_, err := s.g.AddRead([]byte("ACGTTGCA"), quals)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1, s.g.Len())
	n := s.node("ACGTT")
	require.Zero(s.T(), n.SuccessorCount())
	require.Zero(s.T(), n.PredecessorCount())
	require.Equal(s.T(), []int{0}, n.Observations())
}

// TestUnknownSymbolBreaksRun mirrors the low-quality case for an N.
func (s *GraphSuite) TestUnknownSymbolBreaksRun() {
	s.add("ACGTTNCCCAGT")
	require.Equal(s.T(), 3, s.g.Len())
	require.Zero(s.T(), s.node("ACGTT").SuccessorCount())
	require.Zero(s.T(), s.node("CCCAG").PredecessorCount())
	require.Same(s.T(), s.node("CCAGT"), s.node("CCCAG").SoleSuccessor())
}

// TestBranchAndRemove builds a fork, then removes one arm.
func (s *GraphSuite) TestBranchAndRemove() {
	s.add("ACGTTGCA")
	s.add("ACGTTGCC")
	fork := s.node("GTTGC")
	require.Equal(s.T(), 2, fork.SuccessorCount())
	require.Nil(s.T(), fork.SoleSuccessor())
	require.Nil(s.T(), fork.RC().SolePredecessor())

	call, _ := kmer.Call('C')
	require.NoError(s.T(), s.g.RemoveSuccessor(fork, call))
	require.Equal(s.T(), 1, fork.SuccessorCount())
	require.Same(s.T(), s.node("TTGCA"), fork.SoleSuccessor())
	require.Same(s.T(), s.node("TGCAA"), fork.RC().SolePredecessor())
	require.Equal(s.T(), uint8(1<<3), fork.RC().PredecessorMask())
}

// TestRemovePredecessor clears a predecessor and re-derives the cache.
func (s *GraphSuite) TestRemovePredecessor() {
	s.add("ACGTTGCA")
	s.add("TCGTTGCA")
	join := s.node("CGTTG")
	require.Equal(s.T(), 2, join.PredecessorCount())

	call, _ := kmer.Call('T')
	require.NoError(s.T(), s.g.RemovePredecessor(join, call))
	require.Same(s.T(), s.node("ACGTT"), join.SolePredecessor())
	require.Same(s.T(), s.node("AACGT"), join.RC().SoleSuccessor())

	call, _ = kmer.Call('A')
	require.NoError(s.T(), s.g.RemovePredecessor(join, call))
	require.Zero(s.T(), join.PredecessorCount())
	require.Nil(s.T(), join.SolePredecessor())
	require.Zero(s.T(), join.RC().SuccessorCount())
}

// TestRemoveDetectsMissingNeighbor corrupts a mask on purpose.
func (s *GraphSuite) TestRemoveDetectsMissingNeighbor() {
	s.add("ACGTTGCA")
	n := s.node("CGTTG")
	n.succMask |= 1 << 0 // claims CGTTG→GTTGA, never observed
	call, _ := kmer.Call('C')
	err := s.g.RemoveSuccessor(n, call) // drops the real GTTGC arm
	require.ErrorIs(s.T(), err, ErrMissingNeighbor)
}

// TestOwnershipMirrors checks SetOwner flips owner and offset on the twin.
func (s *GraphSuite) TestOwnershipMirrors() {
	s.add("ACGTTGCA")
	n := s.node("CGTTG")
	owner := fakeOwner{name: "c", kmers: 4}

	n.SetOwner(owner, 1)
	got, off := n.Owner()
	require.Equal(s.T(), Owner(owner), got)
	require.Equal(s.T(), 1, off)

	got, off = n.RC().Owner()
	require.Equal(s.T(), Owner(fakeOwner{name: "c", rc: true, kmers: 4}), got)
	require.Equal(s.T(), 2, off)

	n.RC().SetOwner(nil, 0)
	got, off = n.Owner()
	require.Nil(s.T(), got)
	require.Zero(s.T(), off)
}

// TestClearMasks verifies both clears are mirrored.
func (s *GraphSuite) TestClearMasks() {
	s.add("ACGTTGCA")
	n := s.node("CGTTG")
	n.ClearPredecessors()
	require.Zero(s.T(), n.PredecessorCount())
	require.Zero(s.T(), n.RC().SuccessorCount())
	require.Nil(s.T(), n.RC().SoleSuccessor())

	n.ClearSuccessors()
	require.Zero(s.T(), n.SuccessorCount())
	require.Zero(s.T(), n.RC().PredecessorCount())
	require.Nil(s.T(), n.RC().SolePredecessor())
}

// TestReadOrderAndQualityLength covers input validation.
func (s *GraphSuite) TestReadOrderAndQualityLength() {
	require.NoError(s.T(), s.g.Kmerize([]byte("ACGTTG"), nil, 5))
	require.NoError(s.T(), s.g.Kmerize([]byte("ACGTTG"), nil, 5))
	err := s.g.Kmerize([]byte("ACGTTG"), nil, 3)
	require.ErrorIs(s.T(), err, ErrReadOrder)

	err = s.g.Kmerize([]byte("ACGTTG"), []byte{30, 30}, 6)
	require.ErrorIs(s.T(), err, ErrQualityLength)
}

func TestNewGraph_Options(t *testing.T) {
	g, err := NewGraph()
	require.NoError(t, err)
	require.Equal(t, kmer.DefaultK, g.K())
	require.Equal(t, byte(kmer.DefaultMinQuality), g.MinQuality())
	require.Zero(t, g.Len())

	_, err = NewGraph(WithK(4))
	require.ErrorIs(t, err, ErrOptionViolation)
	require.True(t, errors.Is(err, kmer.ErrEvenK))

	_, err = NewGraph(WithK(33))
	require.ErrorIs(t, err, kmer.ErrKOutOfRange)

	_, err = NewGraph(WithCapacity(-1))
	require.ErrorIs(t, err, ErrOptionViolation)
}
