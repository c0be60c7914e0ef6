// SPDX-License-Identifier: MIT

package assembly_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlasm/assembly"
	"github.com/katalvlaran/lvlasm/dbg"
)

// BenchmarkAssemble measures the whole pipeline over reads tiled across a
// random 50 kb sequence with a 1% substitution rate.
func BenchmarkAssemble(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	genome := make([]byte, 50_000)
	for i := range genome {
		genome[i] = "ACGT"[rnd.Intn(4)]
	}
	var reads [][]byte
	for at := 0; at+150 <= len(genome); at += 10 {
		r := append([]byte(nil), genome[at:at+150]...)
		for i := range r {
			if rnd.Intn(100) == 0 {
				r[i] = "ACGT"[rnd.Intn(4)]
			}
		}
		reads = append(reads, r)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, _ := dbg.NewGraph(dbg.WithCapacity(len(genome) * 2))
		for _, r := range reads {
			_, _ = g.AddRead(r, nil)
		}
		b.StartTimer()
		if _, err := assembly.Assemble(g); err != nil {
			b.Fatal(err)
		}
	}
}
