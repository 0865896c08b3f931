// Package hypercubes computes multi-level decompositions of regular
// D-dimensional lattices, the way lattice field theory codes lay out their
// data: ranks, vector lanes, halos, checkerboards and flattened local
// indices, one level of a tree per rule.
//
// The module is organised as a set of small packages:
//
//	geometry/   - axis sizes and parities, floor arithmetic, lexicographic and even/odd site indices
//	partition/  - rules and the classes implementing them (quotient, halo/border/bulk, even/odd, leaf)
//	tree/       - immutable generic trees and level reordering
//	builder/    - memoized construction of decomposition trees from a rule chain
//	indexing/   - coordinate to index tuple, ghost-aware addresses, block extents
//	alloc/      - storage sizes, offsets and allocation order under a predicate
//	predicate/  - three-valued predicates (halo depth, rank selection)
//	levels/     - level dependency analysis and safe reordering
//	config/     - YAML layout files
//
// The hypercubes command in cmd/hypercubes exposes the same operations from
// the shell, and examples/lattice4d walks through the 42⁴ layout.
//
// Quick start:
//
//	root, err := builder.Build(geometry.FromSizes(42), []partition.Rule{
//		partition.QPeriodic("MPI X", 0, 4),
//		partition.QOpen("VECTOR X", 0, 2),
//		partition.HBB("halos X", 0, 1),
//		partition.EvenOddRule("EO", true),
//		partition.LeafRule("EO-flattened", 1),
//	})
//	idx, err := indexing.IndexPath(root, []int{20})
//	// idx == [1 1 2 0 1]
package hypercubes
