// SPDX-License-Identifier: MIT

package partition

import "github.com/mmesiti/hypercubes/geometry"

// IndexResult is one candidate address of a coordinate at one level.
// Cached marks a ghost (duplicate) candidate; at most one entry of a
// CoordToIndices result has Cached == false.
type IndexResult struct {
	Idx    int
	Rest   []int // coordinates relative to the selected child
	Cached bool
}

// Class is an instantiated decomposition level. The set of implementations
// is closed: *Axis and *EvenOdd.
type Class interface {
	// Name returns the rule name the class was built from.
	Name() string
	// Kind returns the strategy kind.
	Kind() Kind
	// Key identifies the class by value (geometry plus parameters).
	Key() string
	// Geometry returns the geometry the class partitions.
	Geometry() geometry.Geometry
	// Dimensionality is the number of axes of Geometry().
	Dimensionality() int

	ChildGeometries() []geometry.Geometry
	CoordToIndices(xs []int) []IndexResult
	IndexToCoordinate(idx int, offsets []int) []int
	IndexToChildKind(idx int) int
	IndexToSizes(idx int) []int
	MaxIndexValue() int

	// Describe returns a one-line human readable summary.
	Describe() string

	sealed()
}

// Result1D is an IndexResult restricted to one axis.
type Result1D struct {
	Idx    int
	Rest   int
	Cached bool
}

// Strategy1D is a decomposition of a single axis. Implementations are
// *Quotient, *HaloBorderBulk and *Leaf.
type Strategy1D interface {
	Kind() Kind
	// Axis returns the (size, parity) pair being split.
	Axis() geometry.SizeParity
	// Limits returns the block boundaries: block i is [Limits[i], Limits[i+1]).
	Limits() []int
	CoordToIndices(x int) []Result1D
	IndexToCoordinate(idx, offset int) int
	MaxIndexValue() int
	Describe() string

	key() string
}

// segments precomputes the distinct (size, parity) child kinds of a 1D
// strategy from its limits. Kinds keep first-occurrence order.
type segments struct {
	starts []int
	sizes  []int
	kinds  []geometry.SizeParity
	kindOf []int
}

func newSegments(sp geometry.SizeParity, limits []int) segments {
	n := len(limits) - 1
	seg := segments{
		starts: make([]int, n),
		sizes:  make([]int, n),
		kindOf: make([]int, n),
	}
	seen := make(map[geometry.SizeParity]int, 2)
	for i := 0; i < n; i++ {
		seg.starts[i] = limits[i]
		seg.sizes[i] = limits[i+1] - limits[i]
		k := geometry.SizeParity{Size: seg.sizes[i], Parity: sp.Parity.Shift(limits[i])}
		pos, ok := seen[k]
		if !ok {
			pos = len(seg.kinds)
			seen[k] = pos
			seg.kinds = append(seg.kinds, k)
		}
		seg.kindOf[i] = pos
	}

	return seg
}
