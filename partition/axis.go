// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/mmesiti/hypercubes/geometry"
)

// Axis lifts a Strategy1D onto one axis of an N-dimensional geometry.
// Every other axis passes through unchanged.
type Axis struct {
	name string
	geom geometry.Geometry
	axis int
	s    Strategy1D
	seg  segments
	kids []geometry.Geometry
}

// Lift wraps s so that it acts on axis of geom.
// The strategy must have been built for geom[axis].
func Lift(name string, geom geometry.Geometry, axis int, s Strategy1D) (*Axis, error) {
	if axis < 0 || axis >= len(geom) {
		return nil, configErrorf(name, ErrBadAxis, "axis %d of %d", axis, len(geom))
	}
	if s.Axis() != geom[axis] {
		return nil, configErrorf(name, ErrBadAxis, "strategy built for %s, axis is %s", s.Axis(), geom[axis])
	}
	a := &Axis{
		name: name,
		geom: geom.Clone(),
		axis: axis,
		s:    s,
		seg:  newSegments(geom[axis], s.Limits()),
	}
	a.kids = make([]geometry.Geometry, len(a.seg.kinds))
	for i, k := range a.seg.kinds {
		a.kids[i] = a.geom.With(axis, k)
	}

	return a, nil
}

func (a *Axis) sealed() {}

// Strategy returns the wrapped one-dimensional strategy.
func (a *Axis) Strategy() Strategy1D { return a.s }

// AxisIndex returns the axis the strategy acts on.
func (a *Axis) AxisIndex() int { return a.axis }

// Name implements Class.
func (a *Axis) Name() string { return a.name }

// Kind implements Class.
func (a *Axis) Kind() Kind { return a.s.Kind() }

// Key implements Class.
func (a *Axis) Key() string {
	return fmt.Sprintf("%s@%d%s", a.s.key(), a.axis, a.geom.Key())
}

// Geometry implements Class.
func (a *Axis) Geometry() geometry.Geometry { return a.geom.Clone() }

// Dimensionality implements Class.
func (a *Axis) Dimensionality() int { return len(a.geom) }

// ChildGeometries implements Class.
func (a *Axis) ChildGeometries() []geometry.Geometry {
	out := make([]geometry.Geometry, len(a.kids))
	for i, g := range a.kids {
		out[i] = g.Clone()
	}

	return out
}

// CoordToIndices implements Class. The returned rests equal xs except on
// the wrapped axis.
func (a *Axis) CoordToIndices(xs []int) []IndexResult {
	if len(xs) != len(a.geom) {
		return nil
	}
	rs := a.s.CoordToIndices(xs[a.axis])
	if len(rs) == 0 {
		return nil
	}
	out := make([]IndexResult, len(rs))
	for i, r := range rs {
		rest := append([]int(nil), xs...)
		rest[a.axis] = r.Rest
		out[i] = IndexResult{Idx: r.Idx, Rest: rest, Cached: r.Cached}
	}

	return out
}

// IndexToCoordinate implements Class.
func (a *Axis) IndexToCoordinate(idx int, offsets []int) []int {
	out := append([]int(nil), offsets...)
	out[a.axis] = a.s.IndexToCoordinate(idx, offsets[a.axis])

	return out
}

// IndexToChildKind implements Class. It returns -1 for idx out of range.
func (a *Axis) IndexToChildKind(idx int) int {
	if idx < 0 || idx >= len(a.seg.kindOf) {
		return -1
	}

	return a.seg.kindOf[idx]
}

// IndexToSizes implements Class.
func (a *Axis) IndexToSizes(idx int) []int {
	k := a.IndexToChildKind(idx)
	if k < 0 {
		return nil
	}

	return a.kids[k].Sizes()
}

// MaxIndexValue implements Class.
func (a *Axis) MaxIndexValue() int { return a.s.MaxIndexValue() }

// Describe implements Class.
func (a *Axis) Describe() string {
	return fmt.Sprintf("%s dimension:%d", a.s.Describe(), a.axis)
}
