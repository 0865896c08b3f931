package tree

import "errors"

// Sentinel errors for reordering operations.
var (
	// ErrNonUniformLevel indicates that nodes at the requested level do not
	// share one value or one child count.
	ErrNonUniformLevel = errors.New("tree: level is not uniform")

	// ErrChildOutOfRange indicates a child index outside a node's children.
	ErrChildOutOfRange = errors.New("tree: child index out of range")

	// ErrLeafLevel indicates a reordering that selects a level of leaves.
	ErrLeafLevel = errors.New("tree: level has no children")

	// ErrBadOrdering indicates a level ordering with negative or repeated levels.
	ErrBadOrdering = errors.New("tree: bad level ordering")
)
