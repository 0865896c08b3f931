// Package indexing maps lattice coordinates to hierarchical index tuples and
// back, over a decomposition tree produced by package builder.
//
// IndexPath follows the canonical (non-ghost) candidate at every level.
// GhostTree explores every candidate instead, so that a site stored in the
// halo of a neighbouring block shows up once per copy; RelevantPaths keeps
// the complete addresses and counts the ghost steps on each.
//
// Coordinate is the inverse of IndexPath and also accepts prefixes, which
// address the first site of a block. Sizes and Limits describe the block a
// prefix selects; Check and Validate reject tuples that do not route through
// the tree.
//
// Errors:
//
//	ErrOutOfDomain - the coordinate has no canonical address at some level.
//	ErrBadIndex    - an index tuple is empty, too long, or out of range.
//	ErrInvariant   - a class returned a child kind the tree does not have.
package indexing
