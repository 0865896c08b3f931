// Package alloc sizes the storage of a decomposition tree under a predicate
// and walks the allocated index tuples in depth-first order.
//
// SizeTree visits every index of every level, keeps the ones the predicate
// accepts, and prunes blocks that end up empty, so the result never holds a
// zero-size node. Each node records the label (the index chosen at its
// parent) and the full prefix leading to it. StartTree turns sizes into the
// offsets of the canonical dense layout; Offset, First, Iterate and All walk
// that layout.
//
// Predicates must be prefix-monotonic: rejecting a prefix rejects all its
// extensions. Labels are kept explicitly, so holes left by the predicate are
// skipped rather than renumbered.
//
// Errors:
//
//	ErrExhausted    - Iterate was given the last allocated tuple.
//	ErrNotAllocated - the tuple does not address an allocated site.
package alloc
