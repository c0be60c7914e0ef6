// SPDX-License-Identifier: MIT

// Package hopscotch provides Set, an open-addressing set of entries keyed by
// uint64, built for very large numbers of fixed-width keys (packed k-mers).
//
// Layout:
//
//	buckets[i] holds an entry or the zero value of T (empty).
//	status[i]  bit 7    = the entry in bucket i is a chain head, i.e. it hashes to i.
//	           bits 0-6 = forward distance to the next entry of the same collision
//	                      chain; 0 ends the chain.
//
// Every chain starts at its home bucket and only moves forward, each hop at most
// 127 buckets. When the nearest empty bucket is too far away it is "hopscotched"
// backwards by moving nearby entries forward along their own chains. If that
// fails the set grows to the next legal size, rehashes everything and retries
// once; a second failure is reported as ErrResizeFailed.
//
// Contract:
//
//   - No deletion. Clear empties the whole set.
//   - The zero value of T can never be stored; factories return it to decline.
//   - Not safe for concurrent use: callers serialize access.
//   - Iteration order is bucket order, stable only for an unchanged table.
//
// Complexity:
//
//   - Find / FindOrAdd: O(chain length), typically O(1).
//   - Resize:           O(capacity).
//
// Errors:
//
//   - ErrResizeFailed:      placement failed again right after growing.
//   - ErrEntriesLost:       a rehash ended with a different entry count.
//   - ErrCapacityExhausted: no legal size above the current capacity.
package hopscotch
