// SPDX-License-Identifier: MIT

package dbg_test

import (
	"fmt"

	"github.com/katalvlaran/lvlasm/dbg"
)

// ExampleGraph_AddRead ingests one read and follows the sole-successor links
// from its first k-mer.
func ExampleGraph_AddRead() {
	g, _ := dbg.NewGraph(dbg.WithK(5))
	_, _ = g.AddRead([]byte("ACGTTGCA"), nil)

	key, _ := g.Codec().Encode([]byte("ACGTT"))
	for n := g.Find(key); n != nil; n = n.SoleSuccessor() {
		fmt.Println(g.String(n), n.PredecessorCount(), n.SuccessorCount())
	}

	// Output:
	// ACGTT 0 1
	// CGTTG 1 1
	// GTTGC 1 1
	// TTGCA 1 0
}
