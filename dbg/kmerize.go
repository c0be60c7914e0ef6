// SPDX-License-Identifier: MIT

package dbg

import (
	"fmt"

	"github.com/katalvlaran/lvlasm/kmer"
)

// AddRead ingests a read under the next read id and returns that id.
// quals may be nil, in which case every base passes the quality floor.
func (g *Graph) AddRead(calls, quals []byte) (int, error) {
	id := g.nextRead
	if err := g.Kmerize(calls, quals, id); err != nil {
		return id, err
	}
	g.nextRead++
	return id, nil
}

// Kmerize streams one read through a rolling window and observes every
// complete k-mer together with its neighbors inside the same unbroken run.
func (g *Graph) Kmerize(calls, quals []byte, readID int) error {
	if readID < g.lastRead {
		return fmt.Errorf("%w: read %d after read %d", ErrReadOrder, readID, g.lastRead)
	}
	if quals != nil && len(quals) != len(calls) {
		return fmt.Errorf("%w: %d bases, %d qualities", ErrQualityLength, len(calls), len(quals))
	}
	g.lastRead = readID

	w := g.codec.NewWindow(g.minQuality)
	var prev, cur *Node
	for i, b := range calls {
		q := byte(noQuality)
		if quals != nil {
			q = quals[i]
		}
		key, st := w.Push(b, q)
		switch st {
		case kmer.Reset:
			if cur != nil {
				g.Observe(cur, prev, nil, readID)
			}
			prev, cur = nil, nil
		case kmer.Full:
			next, err := g.findOrAdd(key)
			if err != nil {
				return fmt.Errorf("dbg: read %d: %w", readID, err)
			}
			if cur != nil {
				g.Observe(cur, prev, next, readID)
			}
			prev, cur = cur, next
		}
	}
	if cur != nil {
		g.Observe(cur, prev, nil, readID)
	}
	return nil
}
