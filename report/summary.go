// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvlasm/assembly"
)

// Summary describes an assembly in a handful of numbers.
type Summary struct {
	Contigs    int
	Bases      int
	Longest    int
	N50        int
	Components int
}

// Summarize computes a Summary. N50 is the length L such that contigs of
// length >= L hold at least half of all assembled bases.
func Summarize(contigs []assembly.Contig) Summary {
	s := Summary{Contigs: len(contigs)}
	lens := make([]int, len(contigs))
	for i, c := range contigs {
		lens[i] = c.Len()
		s.Bases += lens[i]
		s.Components = max(s.Components, c.ComponentID())
	}
	if len(lens) == 0 {
		return s
	}
	slices.Sort(lens)
	s.Longest = lens[len(lens)-1]

	acc := 0
	for i := len(lens) - 1; i >= 0; i-- {
		acc += lens[i]
		if 2*acc >= s.Bases {
			s.N50 = lens[i]
			break
		}
	}
	return s
}

// String implements fmt.Stringer.
func (s Summary) String() string {
	return fmt.Sprintf("%s contigs, %s bp total, longest %s bp, N50 %s bp, %s components",
		humanize.Comma(int64(s.Contigs)),
		humanize.Comma(int64(s.Bases)),
		humanize.Comma(int64(s.Longest)),
		humanize.Comma(int64(s.N50)),
		humanize.Comma(int64(s.Components)))
}
