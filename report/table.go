// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlasm/assembly"
)

// WriteTable writes one line per contig:
//
//	name  preds  succs  maxObservations  length  sequence
//
// Link columns are comma-separated names, or "none".
func WriteTable(w io.Writer, contigs []assembly.Contig) error {
	if err := checkNamed(contigs); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, c := range contigs {
		bw.WriteString(c.Name())
		bw.WriteByte('\t')
		writeLinks(bw, c.Predecessors())
		bw.WriteByte('\t')
		writeLinks(bw, c.Successors())
		bw.WriteByte('\t')
		bw.WriteString(strconv.Itoa(c.MaxObservations()))
		bw.WriteByte('\t')
		bw.WriteString(strconv.Itoa(c.Len()))
		bw.WriteByte('\t')
		bw.WriteString(c.Sequence())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeLinks(bw *bufio.Writer, links assembly.Links) {
	if links.Len() == 0 {
		bw.WriteString("none")
		return
	}
	for i := 0; i < links.Len(); i++ {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(links.At(i).Name())
	}
}
