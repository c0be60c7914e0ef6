// SPDX-License-Identifier: MIT

package hopscotch

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type item struct {
	key uint64
}

func (it *item) Key() uint64 { return it.key }

func newItem(key uint64) *item { return &item{key: key} }

func decline(uint64) *item { return nil }

// checkChains walks every chain from its head and verifies the table layout:
// heads sit at their home bucket, squatters do not, empty buckets carry no
// status, and every stored entry is reachable from its own head.
func checkChains(t *testing.T, s *Set[*item]) {
	t.Helper()
	stored := 0
	for i, e := range s.buckets {
		if e == nil {
			require.Zerof(t, s.status[i], "empty bucket %d has status %#x", i, s.status[i])
			continue
		}
		stored++
		home := s.bucketFor(e.Key())
		if s.isHead(i) {
			require.Equalf(t, i, home, "head at %d belongs to %d", i, home)
		} else {
			require.NotEqualf(t, i, home, "squatter at its own home %d", i)
		}
	}

	reached := 0
	for i, e := range s.buckets {
		if e == nil || !s.isHead(i) {
			continue
		}
		j := i
		for {
			require.NotNilf(t, s.buckets[j], "chain from %d runs into empty bucket %d", i, j)
			require.Equal(t, i, s.bucketFor(s.buckets[j].Key()))
			reached++
			off := s.offset(j)
			if off == 0 {
				break
			}
			j = s.index(j, off)
		}
	}
	require.Equal(t, stored, reached)
	require.Equal(t, stored, s.Len())
}

type SetSuite struct {
	suite.Suite
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetSuite))
}

// TestNewPicksLegalSize checks the capacity covers the requested load.
func (s *SetSuite) TestNewPicksLegalSize() {
	require.Equal(s.T(), 257, New[*item](0).Cap())
	require.Equal(s.T(), 257, New[*item](-5).Cap())
	require.Equal(s.T(), 367, New[*item](300).Cap())
	require.GreaterOrEqual(s.T(), float64(New[*item](1_000_000).Cap())*loadFactor, 1_000_000.0)
}

// TestFindOrAddReturnsSameEntry verifies identity is preserved across lookups.
func (s *SetSuite) TestFindOrAddReturnsSameEntry() {
	set := New[*item](0)
	first, err := set.FindOrAdd(42, newItem)
	require.NoError(s.T(), err)

	calls := 0
	again, err := set.FindOrAdd(42, func(k uint64) *item { calls++; return newItem(k) })
	require.NoError(s.T(), err)
	require.Same(s.T(), first, again)
	require.Zero(s.T(), calls, "factory must not run for a present key")
	require.Same(s.T(), first, set.Find(42))
	require.Equal(s.T(), 1, set.Len())
}

// TestDecliningFactoryLeavesSetUntouched verifies Find semantics.
func (s *SetSuite) TestDecliningFactoryLeavesSetUntouched() {
	set := New[*item](0)
	got, err := set.FindOrAdd(7, decline)
	require.NoError(s.T(), err)
	require.Nil(s.T(), got)
	require.Nil(s.T(), set.Find(7))
	require.Zero(s.T(), set.Len())
	checkChains(s.T(), set)
}

// TestSharedHomeBucket forces one long collision chain.
func (s *SetSuite) TestSharedHomeBucket() {
	set := New[*item](0)
	// 241*257 ≡ 0 (mod 257): every key of this form hashes to bucket 5.
	for i := uint64(0); i < 200; i++ {
		_, err := set.FindOrAdd(5+257*i, newItem)
		require.NoError(s.T(), err)
	}
	checkChains(s.T(), set)
	require.Equal(s.T(), 200, set.Len())
	require.Equal(s.T(), 257, set.Cap())
	for i := uint64(0); i < 200; i++ {
		require.NotNil(s.T(), set.Find(5+257*i))
	}
	require.Nil(s.T(), set.Find(5+257*200))
}

// TestSquattersAreEvicted fills buckets with chain members, then inserts keys
// whose home is one of the occupied buckets.
func (s *SetSuite) TestSquattersAreEvicted() {
	set := New[*item](0)
	for i := uint64(0); i < 40; i++ {
		_, err := set.FindOrAdd(10+257*i, newItem)
		require.NoError(s.T(), err)
	}
	// keys homed at 11..60 collide with squatters of bucket 10's chain
	for home := 11; home <= 60; home++ {
		key := keyForBucket(home, 257)
		_, err := set.FindOrAdd(key, newItem)
		require.NoError(s.T(), err)
		require.True(s.T(), set.isHead(home))
	}
	checkChains(s.T(), set)
	require.Equal(s.T(), 90, set.Len())
}

// TestGrowthPreservesMembership inserts far past the initial capacity.
func (s *SetSuite) TestGrowthPreservesMembership() {
	set := New[*item](0)
	rnd := rand.New(rand.NewSource(1))
	want := make(map[uint64]*item)
	for len(want) < 20_000 {
		key := rnd.Uint64() >> 2
		got, err := set.FindOrAdd(key, newItem)
		require.NoError(s.T(), err)
		if prev, ok := want[key]; ok {
			require.Same(s.T(), prev, got)
			continue
		}
		want[key] = got
	}

	require.Positive(s.T(), set.Resizes())
	require.Equal(s.T(), len(want), set.Len())
	require.LessOrEqual(s.T(), float64(set.Len()), loadFactor*float64(set.Cap()))
	checkChains(s.T(), set)

	for key, it := range want {
		require.Same(s.T(), it, set.Find(key))
	}
	seen := make(map[uint64]bool, len(want))
	for it := range set.All() {
		require.False(s.T(), seen[it.key], "duplicate in iteration")
		seen[it.key] = true
	}
	require.Len(s.T(), seen, len(want))
}

// TestClusteredKeys uses keys that share residues across several sizes.
func (s *SetSuite) TestClusteredKeys() {
	set := New[*item](0)
	rnd := rand.New(rand.NewSource(7))
	n := 0
	for i := 0; i < 6000; i++ {
		key := uint64(rnd.Intn(50))*257*367*521 + uint64(rnd.Intn(3000))
		before := set.Len()
		_, err := set.FindOrAdd(key, newItem)
		require.NoError(s.T(), err)
		if set.Len() > before {
			n++
		}
	}
	require.Equal(s.T(), n, set.Len())
	checkChains(s.T(), set)
}

// TestAllStopsEarly verifies the iterator honors a false yield.
func (s *SetSuite) TestAllStopsEarly() {
	set := New[*item](0)
	for k := uint64(1); k <= 10; k++ {
		_, err := set.FindOrAdd(k, newItem)
		require.NoError(s.T(), err)
	}
	n := 0
	for range set.All() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(s.T(), 3, n)
}

// TestClear empties the table and keeps the capacity.
func (s *SetSuite) TestClear() {
	set := New[*item](1000)
	for k := uint64(0); k < 500; k++ {
		_, err := set.FindOrAdd(k, newItem)
		require.NoError(s.T(), err)
	}
	c := set.Cap()
	set.Clear()
	require.Zero(s.T(), set.Len())
	require.Equal(s.T(), c, set.Cap())
	require.Nil(s.T(), set.Find(3))
	checkChains(s.T(), set)

	_, err := set.FindOrAdd(3, newItem)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), set.Find(3))
}

func TestLegalSizes(t *testing.T) {
	for i, size := range legalSizes {
		require.Greater(t, size, 2*maxHop)
		require.NotZero(t, size%rehashStep)
		if i > 0 {
			require.Greater(t, size, legalSizes[i-1])
		}
	}
	next, ok := legalSizeAbove(257)
	require.True(t, ok)
	require.Equal(t, 367, next)
	_, ok = legalSizeAbove(legalSizes[len(legalSizes)-1])
	require.False(t, ok)
	require.Equal(t, legalSizes[len(legalSizes)-1], capacityFor(1<<62))
}

// keyForBucket finds the smallest key whose home is bucket b in a table of
// the given capacity.
func keyForBucket(b, capacity int) uint64 {
	for k := uint64(0); ; k++ {
		if int((k*spreader)%uint64(capacity)) == b {
			return k
		}
	}
}
