// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/mmesiti/hypercubes/geometry"
)

// EvenOdd splits the flagged axes by checkerboard colour.
//
// The flagged coordinates are replaced by a parity index and a half-index
// h = ⌊L/2⌋, where L is their lexicographic index (first flagged axis
// fastest). Children keep the unflagged axes, freeze the flagged ones to
// (1, unknown) and append a pseudo-axis of h values. Child 0 holds the sites
// of even global parity; when both colours have the same count there is a
// single child.
//
// Every flagged axis should already have been reduced to the range that is
// actually stored, since the origin parity is taken from the geometry.
type EvenOdd struct {
	name    string
	geom    geometry.Geometry
	flags   []bool
	cbAxes  []int
	cbSizes []int
	cum     []int
	origin  int
	kids    []geometry.Geometry
}

// NewEvenOdd builds the checkerboard split of geom. flags must have one
// entry per axis and at least one true entry.
func NewEvenOdd(name string, geom geometry.Geometry, flags []bool) (*EvenOdd, error) {
	if len(flags) != len(geom) {
		return nil, configErrorf(name, ErrBadAxis, "%d flags for %d axes", len(flags), len(geom))
	}
	cbAxes := lo.Filter(lo.Range(len(geom)), func(d, _ int) bool { return flags[d] })
	if len(cbAxes) == 0 {
		return nil, configErrorf(name, ErrBadAxis, "no axis flagged")
	}
	e := &EvenOdd{
		name:    name,
		geom:    geom.Clone(),
		flags:   append([]bool(nil), flags...),
		cbAxes:  cbAxes,
		cbSizes: lo.Map(cbAxes, func(d, _ int) int { return geom[d].Size }),
	}
	e.cum = geometry.CumSizes(e.cbSizes)
	e.origin = geometry.Mod(lo.SumBy(cbAxes, func(d int) int {
		if p := geom[d].Parity; p.Known() {
			return int(p)
		}
		return 0
	}), 2)

	same, opposite := geometry.ParityCounts(e.cbSizes)
	counts := [2]int{same, opposite}
	nEven, nOdd := counts[e.origin], counts[1-e.origin]
	frozen := e.geom.Clone()
	for _, d := range cbAxes {
		frozen[d] = geometry.SizeParity{Size: 1, Parity: geometry.Unknown}
	}
	child := func(n int) geometry.Geometry {
		return append(frozen.Clone(), geometry.SizeParity{Size: n, Parity: geometry.Unknown})
	}
	e.kids = []geometry.Geometry{child(nEven)}
	if nOdd != nEven {
		e.kids = append(e.kids, child(nOdd))
	}

	return e, nil
}

func (e *EvenOdd) sealed() {}

// Name implements Class.
func (e *EvenOdd) Name() string { return e.name }

// Kind implements Class.
func (e *EvenOdd) Kind() Kind { return KindEvenOdd }

// Key implements Class.
func (e *EvenOdd) Key() string { return "eo" + flagString(e.flags) + e.geom.Key() }

// Geometry implements Class.
func (e *EvenOdd) Geometry() geometry.Geometry { return e.geom.Clone() }

// Dimensionality implements Class.
func (e *EvenOdd) Dimensionality() int { return len(e.geom) }

// Flags returns a copy of the checkerboard flags.
func (e *EvenOdd) Flags() []bool { return append([]bool(nil), e.flags...) }

// OriginParity is the global parity of the first site of the region.
func (e *EvenOdd) OriginParity() int { return e.origin }

// Sites returns the number of sites over the flagged axes.
func (e *EvenOdd) Sites() int { return e.cum[len(e.cbSizes)] }

// ChildGeometries implements Class.
func (e *EvenOdd) ChildGeometries() []geometry.Geometry {
	return lo.Map(e.kids, func(g geometry.Geometry, _ int) geometry.Geometry { return g.Clone() })
}

// CoordToIndices returns the global parity of xs and the coordinates relative
// to that child: unflagged axes unchanged, flagged ones zeroed, half-index
// appended. Flagged coordinates outside their axis yield no result.
func (e *EvenOdd) CoordToIndices(xs []int) []IndexResult {
	if len(xs) != len(e.geom) {
		return nil
	}
	cb := make([]int, len(e.cbAxes))
	for i, d := range e.cbAxes {
		if xs[d] < 0 || xs[d] >= e.cbSizes[i] {
			return nil
		}
		cb[i] = xs[d]
	}
	p, h := geometry.LexCoordToEOIdx(cb, e.cum)
	rest := make([]int, len(xs)+1)
	for d, x := range xs {
		if !e.flags[d] {
			rest[d] = x
		}
	}
	rest[len(xs)] = h

	return []IndexResult{{Idx: (p + e.origin) % 2, Rest: rest}}
}

// IndexToCoordinate reads the half-index from the pseudo-axis of offsets and
// restores the flagged coordinates.
func (e *EvenOdd) IndexToCoordinate(idx int, offsets []int) []int {
	d := len(e.geom)
	out := append([]int(nil), offsets[:d]...)
	cb := geometry.LexEOIdxToCoord(geometry.Mod(idx-e.origin, 2), offsets[d], e.cbSizes)
	for i, axis := range e.cbAxes {
		out[axis] = cb[i]
	}

	return out
}

// IndexToChildKind implements Class.
func (e *EvenOdd) IndexToChildKind(idx int) int {
	switch {
	case idx < 0 || idx > 1:
		return -1
	case len(e.kids) == 1:
		return 0
	default:
		return idx
	}
}

// IndexToSizes implements Class.
func (e *EvenOdd) IndexToSizes(idx int) []int {
	k := e.IndexToChildKind(idx)
	if k < 0 {
		return nil
	}

	return e.kids[k].Sizes()
}

// MaxIndexValue implements Class.
func (e *EvenOdd) MaxIndexValue() int { return 2 }

// Describe implements Class.
func (e *EvenOdd) Describe() string {
	parities := lo.Map(e.geom, func(sp geometry.SizeParity, _ int) string { return sp.Parity.String() })
	return fmt.Sprintf("EO sizes:%v parities:%v nsites:%d dirs:%s",
		e.geom.Sizes(), parities, e.Sites(), flagString(e.flags))
}
