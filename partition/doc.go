// SPDX-License-Identifier: MIT

// Package partition implements the catalogue of lattice decomposition
// strategies and the uniform Class contract every strategy exposes.
//
// What:
//
//   - Quotient splits one axis into n nearly equal blocks, with OPEN or
//     PERIODIC boundary conditions. Sites near a block border are also
//     reported as ghosts of the neighbouring block.
//   - HaloBorderBulk splits one axis into five zones:
//     [-h,0) [0,h) [h,size-h) [size-h,size) [size,size+h).
//   - Leaf enumerates the sites of one axis.
//   - EvenOdd replaces a set of checkerboard-flagged axes by a parity bit and
//     a half-index pseudo-axis.
//   - End terminates a rule chain (no class at all).
//
// One-dimensional strategies (Strategy1D) act on one axis of an
// N-dimensional geometry through the Axis adapter. New turns a Rule into a
// Class for a given geometry and is the only place where configuration
// errors surface.
//
// Contract (every Class):
//
//	ChildGeometries()      distinct child geometries, in a fixed order
//	CoordToIndices(xs)     canonical entry plus ghosts; empty if xs is
//	                       outside the domain of this level
//	IndexToCoordinate      inverse of CoordToIndices for canonical entries
//	IndexToChildKind(idx)  position in ChildGeometries() of child idx
//	IndexToSizes(idx)      per-axis sizes of child idx
//	MaxIndexValue()        indices range over [0, MaxIndexValue())
//
// Complexity:
//
//   - New: O(D + n) for D axes and n children.
//   - CoordToIndices: O(D) (EvenOdd) or O(D + ghosts) (axis strategies).
//
// Errors:
//
//	ErrConfiguration    - any invalid rule or geometry (root sentinel).
//	ErrUnknownKind      - strategy kind not in the catalogue.
//	ErrBadAxis          - axis selector out of range or malformed.
//	ErrQuotientDomain   - quotient split not representable.
//	ErrHaloDomain       - halo depth is zero or too large for the axis.
package partition
