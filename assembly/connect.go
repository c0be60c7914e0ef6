// SPDX-License-Identifier: MIT

package assembly

import (
	"fmt"

	"github.com/katalvlaran/lvlasm/hopscotch"
)

// endSide tells which strand of a contig starts with a boundary k-mer.
type endSide uint8

const (
	endFwd  endSide = iota // first k-mer of the contig
	endRev                 // first k-mer of the reverse complement
	endBoth                // both: the contig's ends are each other's twins
)

// contigEnd is a boundary index entry.
type contigEnd struct {
	key    uint64
	contig Contig
	side   endSide
}

func (e *contigEnd) Key() uint64 { return e.key }

// connect indexes every contig's 5' k-mer on both strands, then resolves each
// boundary mask bit to the neighboring contig in the right orientation.
func (a *Assembler) connect() error {
	codec := a.g.Codec()
	ends := hopscotch.New[*contigEnd](2 * len(a.contigs))
	mark := func(key uint64, c Contig, side endSide) error {
		_, err := ends.FindOrAdd(key, func(k uint64) *contigEnd {
			return &contigEnd{key: k, contig: c, side: side}
		})
		return err
	}
	for _, c := range a.contigs {
		fwd, rev := c.FirstNode(), c.LastNode().RC()
		if fwd == rev {
			if err := mark(fwd.Key(), c, endBoth); err != nil {
				return err
			}
			continue
		}
		if err := mark(fwd.Key(), c, endFwd); err != nil {
			return err
		}
		if err := mark(rev.Key(), c, endRev); err != nil {
			return err
		}
	}

	for _, c := range a.contigs {
		first := c.FirstNode()
		preds := c.Predecessors()
		for call := 0; call < 4; call++ {
			if first.PredecessorMask()&(1<<call) == 0 {
				continue
			}
			key := codec.PredecessorKey(first.Key(), call)
			e := ends.Find(codec.ReverseComplement(key))
			if e == nil {
				return fmt.Errorf("%w: predecessor %s of contig start %s ends no contig",
					ErrBrokenInvariant, codec.String(key), codec.String(first.Key()))
			}
			switch e.side {
			case endFwd:
				preds.Append(e.contig.RC())
			case endRev:
				preds.Append(e.contig)
			case endBoth:
				preds.Append(e.contig)
				preds.Append(e.contig.RC())
			}
		}

		last := c.LastNode()
		succs := c.Successors()
		for call := 0; call < 4; call++ {
			if last.SuccessorMask()&(1<<call) == 0 {
				continue
			}
			key := codec.SuccessorKey(last.Key(), call)
			e := ends.Find(key)
			if e == nil {
				return fmt.Errorf("%w: successor %s of contig end %s starts no contig",
					ErrBrokenInvariant, codec.String(key), codec.String(last.Key()))
			}
			switch e.side {
			case endFwd:
				succs.Append(e.contig)
			case endRev:
				succs.Append(e.contig.RC())
			case endBoth:
				succs.Append(e.contig)
				succs.Append(e.contig.RC())
			}
		}
	}
	return nil
}
