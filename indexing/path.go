package indexing

import (
	"fmt"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/partition"
)

// IndexPath returns the canonical index tuple of xs, one index per level
// from the root down to the deepest level reached.
func IndexPath(root *builder.Node, xs []int) ([]int, error) {
	var path []int
	for cur := root; cur != nil && !cur.IsEnd(); {
		r, ok := canonical(cur.Class.CoordToIndices(xs))
		if !ok {
			return nil, fmt.Errorf("level %d (%s), coordinates %v: %w",
				len(path), cur.Class.Name(), xs, ErrOutOfDomain)
		}
		path = append(path, r.Idx)
		if len(cur.Children) == 0 {
			break
		}
		next, ok := cur.Child(r.Idx)
		if !ok {
			return nil, fmt.Errorf("level %d (%s), index %d: %w",
				len(path)-1, cur.Class.Name(), r.Idx, ErrInvariant)
		}
		cur, xs = next, r.Rest
	}

	return path, nil
}

func canonical(rs []partition.IndexResult) (partition.IndexResult, bool) {
	for _, r := range rs {
		if !r.Cached {
			return r, true
		}
	}

	return partition.IndexResult{}, false
}

// Coordinate maps an index tuple, or a prefix of one, back to coordinates.
// For a prefix the result is the first site of the selected block.
func Coordinate(root *builder.Node, idx []int) ([]int, error) {
	if len(idx) == 0 {
		return nil, fmt.Errorf("empty tuple: %w", ErrBadIndex)
	}

	return coordinate(root, idx, 0)
}

func coordinate(n *builder.Node, idx []int, level int) ([]int, error) {
	if n == nil || n.IsEnd() {
		return nil, fmt.Errorf("level %d: tuple longer than tree: %w", level, ErrBadIndex)
	}
	i := idx[0]
	if i < 0 || i >= n.Class.MaxIndexValue() {
		return nil, fmt.Errorf("level %d (%s): index %d not in [0,%d): %w",
			level, n.Class.Name(), i, n.Class.MaxIndexValue(), ErrBadIndex)
	}
	var offsets []int
	if len(idx) > 1 {
		child, err := childOf(n, i, level)
		if err != nil {
			return nil, err
		}
		if offsets, err = coordinate(child, idx[1:], level+1); err != nil {
			return nil, err
		}
	} else {
		offsets = make([]int, n.Class.Dimensionality())
		if n.Class.Kind() == partition.KindEvenOdd {
			offsets = append(offsets, 0)
		}
	}

	return n.Class.IndexToCoordinate(i, offsets), nil
}

func childOf(n *builder.Node, i, level int) (*builder.Node, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("level %d (%s): tuple longer than tree: %w", level, n.Class.Name(), ErrBadIndex)
	}
	child, ok := n.Child(i)
	if !ok {
		return nil, fmt.Errorf("level %d (%s), index %d: %w", level, n.Class.Name(), i, ErrInvariant)
	}

	return child, nil
}
