// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/mmesiti/hypercubes/geometry"
)

// Leaf enumerates the sites of an axis: site x has index x and rest 0.
// Its children are single sites, so further rules may still act on other axes.
type Leaf struct {
	sp geometry.SizeParity
}

// NewLeaf accepts any non-negative size; a zero-size axis yields no indices.
func NewLeaf(sp geometry.SizeParity) (*Leaf, error) {
	if sp.Size < 0 {
		return nil, fmt.Errorf("size %d: %w", sp.Size, ErrConfiguration)
	}

	return &Leaf{sp: sp}, nil
}

// Kind implements Strategy1D.
func (p *Leaf) Kind() Kind { return KindLeaf }

// Axis implements Strategy1D.
func (p *Leaf) Axis() geometry.SizeParity { return p.sp }

// Limits implements Strategy1D: 0, 1, ..., size.
func (p *Leaf) Limits() []int {
	out := make([]int, p.sp.Size+1)
	for i := range out {
		out[i] = i
	}

	return out
}

// CoordToIndices implements Strategy1D.
func (p *Leaf) CoordToIndices(x int) []Result1D {
	if x < 0 || x >= p.sp.Size {
		return nil
	}

	return []Result1D{{Idx: x}}
}

// IndexToCoordinate implements Strategy1D.
func (p *Leaf) IndexToCoordinate(idx, offset int) int { return idx + offset }

// MaxIndexValue implements Strategy1D.
func (p *Leaf) MaxIndexValue() int { return p.sp.Size }

// Describe implements Strategy1D.
func (p *Leaf) Describe() string {
	return fmt.Sprintf("Leaf1D size:%d parity:%s", p.sp.Size, p.sp.Parity)
}

func (p *Leaf) key() string { return fmt.Sprintf("leaf%s", p.sp) }
