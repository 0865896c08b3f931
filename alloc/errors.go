package alloc

import "errors"

// Sentinel errors for allocation walks.
var (
	// ErrExhausted indicates there is no tuple after the given one.
	ErrExhausted = errors.New("alloc: iteration exhausted")

	// ErrNotAllocated indicates a tuple outside the size tree.
	ErrNotAllocated = errors.New("alloc: index tuple not allocated")
)
