// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/mmesiti/hypercubes/geometry"
)

// HBBZones is the number of zones of a HaloBorderBulk split.
const HBBZones = 5

// HaloBorderBulk splits an axis of size s with halo depth h into
// [-h,0) [0,h) [h,s-h) [s-h,s) [s,s+h): low halo, low border, bulk,
// high border, high halo.
type HaloBorderBulk struct {
	sp     geometry.SizeParity
	halo   int
	limits []int
}

// NewHaloBorderBulk validates h > 0 and size > 2h.
func NewHaloBorderBulk(sp geometry.SizeParity, halo int) (*HaloBorderBulk, error) {
	if halo <= 0 {
		return nil, fmt.Errorf("halo %d: %w", halo, ErrHaloDomain)
	}
	if sp.Size <= 2*halo {
		return nil, fmt.Errorf("size %d, halo %d: %w", sp.Size, halo, ErrHaloDomain)
	}
	s := sp.Size

	return &HaloBorderBulk{
		sp:     sp,
		halo:   halo,
		limits: []int{-halo, 0, halo, s - halo, s, s + halo},
	}, nil
}

// Kind implements Strategy1D.
func (p *HaloBorderBulk) Kind() Kind { return KindHBB }

// Axis implements Strategy1D.
func (p *HaloBorderBulk) Axis() geometry.SizeParity { return p.sp }

// Halo returns the halo depth.
func (p *HaloBorderBulk) Halo() int { return p.halo }

// Limits implements Strategy1D.
func (p *HaloBorderBulk) Limits() []int { return append([]int(nil), p.limits...) }

// CoordToIndices returns the single zone containing x, or nothing if x is
// outside [-h, size+h).
func (p *HaloBorderBulk) CoordToIndices(x int) []Result1D {
	if x < p.limits[0] || x >= p.limits[HBBZones] {
		return nil
	}
	for i := 0; i < HBBZones; i++ {
		if x < p.limits[i+1] {
			return []Result1D{{Idx: i, Rest: x - p.limits[i]}}
		}
	}

	return nil
}

// IndexToCoordinate implements Strategy1D.
func (p *HaloBorderBulk) IndexToCoordinate(idx, offset int) int { return p.limits[idx] + offset }

// MaxIndexValue implements Strategy1D.
func (p *HaloBorderBulk) MaxIndexValue() int { return HBBZones }

// Describe implements Strategy1D.
func (p *HaloBorderBulk) Describe() string {
	return fmt.Sprintf("HBB1D size:%d parity:%s halo:%d", p.sp.Size, p.sp.Parity, p.halo)
}

func (p *HaloBorderBulk) key() string { return fmt.Sprintf("hbb%s/%d", p.sp, p.halo) }
