// SPDX-License-Identifier: MIT

package kmer

// Status reports what a Window did with the last pushed base.
type Status int

const (
	// Filling means the base was accepted but fewer than K bases have been
	// accepted since the last reset.
	Filling Status = iota

	// Full means the window holds K bases and the returned key is valid.
	Full

	// Reset means the base was rejected (low quality or unknown symbol) and
	// the window was emptied.
	Reset
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Filling:
		return "filling"
	case Full:
		return "full"
	case Reset:
		return "reset"
	}
	return "unknown"
}

// Window is a rolling K-base accumulator. It is not safe for concurrent use.
type Window struct {
	codec      Codec
	minQuality byte
	key        uint64
	count      int
}

// NewWindow returns an empty Window that rejects bases whose quality is
// below minQuality.
func (c Codec) NewWindow(minQuality byte) *Window {
	return &Window{codec: c, minQuality: minQuality}
}

// Push shifts one base into the window. The key is meaningful only when the
// returned status is Full.
func (w *Window) Push(base, quality byte) (uint64, Status) {
	if quality < w.minQuality {
		w.Reset()
		return 0, Reset
	}
	call, ok := Call(base)
	if !ok {
		w.Reset()
		return 0, Reset
	}
	w.key = (w.key<<2 | uint64(call)) & w.codec.mask
	if w.count < w.codec.k {
		w.count++
	}
	if w.count < w.codec.k {
		return w.key, Filling
	}
	return w.key, Full
}

// Reset empties the window.
func (w *Window) Reset() {
	w.key = 0
	w.count = 0
}
