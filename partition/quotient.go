// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/mmesiti/hypercubes/geometry"
)

// Boundary selects how Quotient treats coordinates near the lattice edge.
type Boundary uint8

const (
	// Open clips ghost candidates to [0, parts).
	Open Boundary = iota
	// Periodic wraps ghost candidates modulo parts.
	Periodic
)

// String implements fmt.Stringer.
func (b Boundary) String() string {
	if b == Periodic {
		return "PERIODIC"
	}

	return "OPEN"
}

// Quotient splits an axis into Parts blocks of q = ⌈size/parts⌉ sites; only
// the last block may be shorter.
type Quotient struct {
	sp       geometry.SizeParity
	parts    int
	q        int
	boundary Boundary
}

// NewQuotient validates the split and returns it.
// Returns ErrQuotientDomain if parts <= 0, parts >= size, or if the blocks
// cannot be laid out with a single short trailing block.
func NewQuotient(sp geometry.SizeParity, parts int, b Boundary) (*Quotient, error) {
	if parts <= 0 || parts >= sp.Size {
		return nil, fmt.Errorf("size %d, parts %d: %w", sp.Size, parts, ErrQuotientDomain)
	}
	q := geometry.CeilDiv(sp.Size, parts)
	if q*(parts-1) >= sp.Size {
		return nil, fmt.Errorf("size %d, parts %d: last block would be empty: %w",
			sp.Size, parts, ErrQuotientDomain)
	}

	return &Quotient{sp: sp, parts: parts, q: q, boundary: b}, nil
}

// Kind implements Strategy1D.
func (p *Quotient) Kind() Kind {
	if p.boundary == Periodic {
		return KindQPeriodic
	}

	return KindQOpen
}

// Axis implements Strategy1D.
func (p *Quotient) Axis() geometry.SizeParity { return p.sp }

// Parts returns the number of blocks.
func (p *Quotient) Parts() int { return p.parts }

// BlockSize returns q, the length of every block but possibly the last.
func (p *Quotient) BlockSize() int { return p.q }

// Limits implements Strategy1D: q*i for i < parts, then size.
func (p *Quotient) Limits() []int {
	out := make([]int, p.parts+1)
	for i := 0; i < p.parts; i++ {
		out[i] = p.q * i
	}
	out[p.parts] = p.sp.Size

	return out
}

// CoordToIndices returns the owning block and the neighbouring blocks that
// hold x as a ghost. Rest is x relative to each candidate's start; periodic
// candidates outside [0, parts) are shifted by whole lattice lengths.
func (p *Quotient) CoordToIndices(x int) []Result1D {
	t := geometry.FloorDiv(x, p.q)
	lo, hi := t-1, t+2
	if p.boundary == Open {
		lo, hi = max(0, lo), min(p.parts, hi)
	}
	out := make([]Result1D, 0, max(0, hi-lo))
	for i := lo; i < hi; i++ {
		out = append(out, Result1D{
			Idx:    geometry.Mod(i, p.parts),
			Rest:   x - p.ghostStart(i),
			Cached: i != t,
		})
	}

	return out
}

// ghostStart is the start of block i, with i possibly outside [0, parts).
func (p *Quotient) ghostStart(i int) int {
	return i*p.q + (p.sp.Size-p.parts*p.q)*geometry.FloorDiv(i, p.parts)
}

// IndexToCoordinate implements Strategy1D.
func (p *Quotient) IndexToCoordinate(idx, offset int) int { return p.q*idx + offset }

// MaxIndexValue implements Strategy1D.
func (p *Quotient) MaxIndexValue() int { return p.parts }

// Describe implements Strategy1D.
func (p *Quotient) Describe() string {
	return fmt.Sprintf("Q1D size:%d parity:%s nparts:%d bc:%s", p.sp.Size, p.sp.Parity, p.parts, p.boundary)
}

func (p *Quotient) key() string {
	return fmt.Sprintf("q%s%s/%d", p.boundary, p.sp, p.parts)
}
