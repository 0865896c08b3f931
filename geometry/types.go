package geometry

import (
	"fmt"
	"strings"
)

// Parity is the checkerboard colour of the first site of a range.
type Parity int8

const (
	// Unknown marks an axis whose parity is no longer meaningful,
	// e.g. after an even/odd level flattened it.
	Unknown Parity = -1
	// Even means the first site has an even coordinate sum.
	Even Parity = 0
	// Odd means the first site has an odd coordinate sum.
	Odd Parity = 1
)

// Known reports whether p is Even or Odd.
func (p Parity) Known() bool { return p == Even || p == Odd }

// Shift returns the parity of a site offset sites away from a site of parity p.
// Unknown stays Unknown.
func (p Parity) Shift(offset int) Parity {
	if !p.Known() {
		return Unknown
	}

	return Parity(Mod(int(p)+offset, 2))
}

// String renders 0, 1 or "?".
func (p Parity) String() string {
	if !p.Known() {
		return "?"
	}

	return fmt.Sprintf("%d", int(p))
}

// ParityOf converts an optional integer parity (nil meaning unknown).
func ParityOf(p *int) Parity {
	if p == nil {
		return Unknown
	}

	return Parity(Mod(*p, 2))
}

// SizeParity describes one axis of a region.
type SizeParity struct {
	Size   int    // number of sites along the axis
	Parity Parity // parity of the first site
}

// String renders the descriptor as "(size,parity)".
func (sp SizeParity) String() string {
	return fmt.Sprintf("(%d,%s)", sp.Size, sp.Parity)
}

// Geometry is an ordered vector of axis descriptors. Values are treated as
// immutable: every method that changes an axis returns a copy.
type Geometry []SizeParity

// Uniform builds a geometry of dims axes, each of the given size and parity.
func Uniform(dims, size int, parity Parity) Geometry {
	g := make(Geometry, dims)
	for i := range g {
		g[i] = SizeParity{Size: size, Parity: parity}
	}

	return g
}

// FromSizes builds a geometry with every axis starting on an even site.
func FromSizes(sizes ...int) Geometry {
	g := make(Geometry, len(sizes))
	for i, s := range sizes {
		g[i] = SizeParity{Size: s, Parity: Even}
	}

	return g
}

// Dims returns the number of axes.
func (g Geometry) Dims() int { return len(g) }

// Sizes returns the per-axis sizes.
func (g Geometry) Sizes() []int {
	out := make([]int, len(g))
	for i, sp := range g {
		out[i] = sp.Size
	}

	return out
}

// Sites returns the number of sites in the region (product of sizes).
func (g Geometry) Sites() int {
	n := 1
	for _, sp := range g {
		n *= sp.Size
	}

	return n
}

// Clone returns an independent copy of g.
func (g Geometry) Clone() Geometry {
	out := make(Geometry, len(g))
	copy(out, g)

	return out
}

// With returns a copy of g where axis has been replaced by sp.
func (g Geometry) With(axis int, sp SizeParity) Geometry {
	out := g.Clone()
	out[axis] = sp

	return out
}

// Equal reports whether g and o describe the same region.
func (g Geometry) Equal(o Geometry) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if g[i] != o[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical string identifying g by value.
// Two geometries have the same key iff they are Equal.
func (g Geometry) Key() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, sp := range g {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sp.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// String implements fmt.Stringer.
func (g Geometry) String() string { return g.Key() }
