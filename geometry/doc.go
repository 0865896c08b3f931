// Package geometry describes the shape of a lattice region as seen by one
// decomposition level: an ordered list of axes, each with a size and the
// parity of its first site.
//
// What:
//
//   - Parity is the checkerboard colour of the first site of a range
//     (Even, Odd or Unknown once a level has flattened the axis).
//   - SizeParity is a single axis descriptor; Geometry is the ND vector.
//   - Geometry.Key gives a value-based identity used for memoization.
//   - Lexicographic helpers (CumSizes, LexCoordToIdx, LexIdxToCoord) and the
//     even/odd half-index encoding (LexCoordToEOIdx, LexEOIdxToCoord).
//
// Why:
//
//   - Every partition strategy maps one Geometry to a list of child
//     geometries; equal geometries must compare equal by value so that
//     identical subtrees are built once.
//
// Complexity:
//
//   - Key, Clone, With: O(D) for D axes.
//   - LexEOIdxToCoord: O(F) for F flagged axes.
package geometry
