// Package presets holds ready-made rule chains for the usual lattice QCD
// layout: rank split, vector-lane split, halos, checkerboard, flattening.
package presets

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/geometry"
	"github.com/mmesiti/hypercubes/partition"
)

// AxisName returns X, Y, Z, T for the first four axes and D<n> afterwards.
func AxisName(d int) string {
	if d < 4 {
		return string("XYZT"[d])
	}

	return fmt.Sprintf("D%d", d)
}

// Standard returns the layout used throughout the lattice codes: per axis a
// periodic rank split (ranks[d] parts), an open vector split (lanes[d] parts),
// a halo of depth halo, then one checkerboard level over all axes and a leaf
// over the resulting half-index axis. Factors equal to 1 and halo 0 skip the
// corresponding rules.
func Standard(sizes, ranks, lanes []int, halo int) builder.Layout {
	dims := len(sizes)
	var rules []partition.Rule
	for d := 0; d < dims; d++ {
		if ranks[d] > 1 {
			rules = append(rules, partition.QPeriodic("MPI "+AxisName(d), d, ranks[d]))
		}
	}
	for d := 0; d < dims; d++ {
		if lanes[d] > 1 {
			rules = append(rules, partition.QOpen("VECTOR "+AxisName(d), d, lanes[d]))
		}
	}
	if halo > 0 {
		for d := 0; d < dims; d++ {
			rules = append(rules, partition.HBB("halos "+AxisName(d), d, halo))
		}
	}
	rules = append(rules,
		partition.EvenOddRule("EO", lo.Times(dims, func(int) bool { return true })...),
		partition.LeafRule("EO-flattened", dims),
	)

	return builder.Layout{Geometry: geometry.FromSizes(sizes...), Rules: rules}
}

// Lattice4D is the 42⁴ layout with 4 ranks and 2 lanes per axis and halo 1.
func Lattice4D() builder.Layout {
	four := func(v int) []int { return lo.Times(4, func(int) int { return v }) }

	return Standard(four(42), four(4), four(2), 1)
}

// Line42 is the one-dimensional restriction of Lattice4D.
func Line42() builder.Layout {
	return Standard([]int{42}, []int{4}, []int{2}, 1)
}
