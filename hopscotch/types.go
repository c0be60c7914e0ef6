// SPDX-License-Identifier: MIT

package hopscotch

import "errors"

// Sentinel errors. All of them mean the set can no longer be trusted and the
// caller should abandon the run.
var (
	// ErrResizeFailed indicates an insertion still found no usable bucket
	// immediately after the table grew.
	ErrResizeFailed = errors.New("hopscotch: insertion failed after resize")

	// ErrEntriesLost indicates a rehash produced a different number of entries.
	ErrEntriesLost = errors.New("hopscotch: entries lost during resize")

	// ErrCapacityExhausted indicates there is no legal size to grow into.
	ErrCapacityExhausted = errors.New("hopscotch: no larger capacity available")
)

// errNoRoom is raised inside a single attempt when no empty bucket can be
// brought into range. FindOrAdd recovers from it by growing the table.
var errNoRoom = errors.New("hopscotch: no empty bucket within reach")

// Entry is what a Set stores. Key must be stable for the lifetime of the
// entry, and the zero value of the type is reserved for "empty".
type Entry interface {
	comparable
	Key() uint64
}

// Status byte layout.
const (
	headBit    = uint8(0x80) // entry hashes to this bucket
	offsetMask = uint8(0x7f) // distance to the next chain entry
	maxHop     = 127         // longest single hop expressible in offsetMask
)

// Hashing and sizing constants.
const (
	loadFactor = 0.85
	spreader   = 241 // odd multiplier for bucketFor
	rehashStep = 127 // stride used to visit old buckets during resize
)

// Set is a hopscotch hash set of T keyed by T.Key().
type Set[T Entry] struct {
	capacity int
	size     int
	resizes  int
	buckets  []T
	status   []uint8
}
