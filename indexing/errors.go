package indexing

import "errors"

// Sentinel errors for index engine operations.
var (
	// ErrOutOfDomain indicates a coordinate without a canonical address.
	ErrOutOfDomain = errors.New("indexing: coordinate outside domain")

	// ErrBadIndex indicates an index tuple that does not address a node.
	ErrBadIndex = errors.New("indexing: bad index tuple")

	// ErrInvariant indicates an inconsistency between a class and the tree.
	ErrInvariant = errors.New("indexing: inconsistent child kind")
)
