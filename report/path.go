// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlasm/assembly"
	"github.com/katalvlaran/lvlasm/dbg"
	"github.com/katalvlaran/lvlasm/kmer"
	"github.com/katalvlaran/lvlasm/reads"
)

// anyQuality lets every base through the path window; paths explain the
// whole read, not only what survived the quality filter.
const anyQuality = 0xff

// TracePath walks bases against a finished graph and groups consecutive
// k-mers by where they land. Unknown symbols restart the window but do not
// end the current part.
func TracePath(g *dbg.Graph, bases []byte) Path {
	var (
		path Path
		cur  *PathPart
	)
	w := g.Codec().NewWindow(0)
	for _, b := range bases {
		key, st := w.Push(b, anyQuality)
		if st != kmer.Full {
			continue
		}

		name, start, maxOffset := NoKmer, 0, 0
		if n := g.Find(key); n != nil {
			owner, off := n.Owner()
			if c, ok := owner.(assembly.Contig); ok && !c.IsZero() {
				name, start, maxOffset = c.String(), off, c.KmerCount()
			} else {
				name = XContig
			}
		}

		if cur != nil && cur.Name == name {
			cur.Stop++
			continue
		}
		path = append(path, PathPart{Name: name, Start: start, Stop: start + 1, MaxOffset: maxOffset})
		cur = &path[len(path)-1]
	}
	return path
}

// WritePaths traces every read of src and writes "index: path" lines,
// numbering reads from zero.
func WritePaths(w io.Writer, g *dbg.Graph, src reads.Source) error {
	bw := bufio.NewWriter(w)
	i := 0
	err := reads.ForEach(src, func(r reads.Read) error {
		_, err := fmt.Fprintf(bw, "%d: %s\n", i, TracePath(g, r.Bases))
		i++
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
