// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlasm/assembly"
)

// ErrUnnamed indicates a contig reached a renderer before naming.
var ErrUnnamed = errors.New("report: contig has no name")

// Names of the path parts that are not contigs.
const (
	NoKmer  = "NoKmer"  // k-mers absent from the graph
	XContig = "XContig" // k-mers whose node belongs to no contig
)

// PathPart is one run of consecutive k-mers of a read that land in the
// same place. For contig parts Start is the offset of the first k-mer
// within the contig, Stop is one past the last, and MaxOffset is the
// contig's k-mer count. For NoKmer and XContig parts only Stop is used,
// and it counts the k-mers of the run.
type PathPart struct {
	Name      string
	Start     int
	Stop      int
	MaxOffset int
}

// IsContig reports whether p refers to a contig.
func (p PathPart) IsContig() bool { return p.Name != NoKmer && p.Name != XContig }

// String implements fmt.Stringer.
func (p PathPart) String() string {
	if !p.IsContig() {
		return fmt.Sprintf("%s(%d)", p.Name, p.Stop)
	}
	return fmt.Sprintf("%s(%d,%d/%d)", p.Name, p.Start, p.Stop, p.MaxOffset)
}

// Path is the sequence of parts a read decomposes into.
type Path []PathPart

// String renders the path as "[p1, p2, ...]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, pp := range p {
		parts[i] = pp.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func checkNamed(contigs []assembly.Contig) error {
	for i, c := range contigs {
		if c.Name() == "" {
			return fmt.Errorf("%w: contig %d of %d", ErrUnnamed, i, len(contigs))
		}
	}
	return nil
}
