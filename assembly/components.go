// SPDX-License-Identifier: MIT

package assembly

import "fmt"

// markComponents labels contigs with component ids 1..n by breadth-first
// search over links in both directions, starting a new component at each
// unlabeled contig in list order. Links through a reverse-complement view
// reach the same storage, so strand does not split a component.
func (a *Assembler) markComponents() int {
	for _, c := range a.contigs {
		c.c.component = 0
	}
	id := 0
	var queue []*contig
	for _, c := range a.contigs {
		if c.c.component != 0 {
			continue
		}
		id++
		c.c.component = id
		queue = append(queue[:0], c.c)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, list := range [2][]Contig{u.preds, u.succs} {
				for _, v := range list {
					if v.c.component == 0 {
						v.c.component = id
						queue = append(queue, v.c)
					}
				}
			}
		}
	}
	return id
}

// nameContigs names contigs tig1..tigN in list order.
func (a *Assembler) nameContigs() {
	for i, c := range a.contigs {
		c.c.name = fmt.Sprintf("tig%d", i+1)
	}
}
