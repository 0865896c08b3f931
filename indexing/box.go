package indexing

import (
	"fmt"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/partition"
)

// Interval is the half-open coordinate range [Start, End).
type Interval struct {
	Start, End int
}

// Sizes returns the per-axis sizes of the block selected by the prefix idx.
// Past a checkerboard level the last entry is the half-index axis.
func Sizes(root *builder.Node, idx []int) ([]int, error) {
	if err := Check(root, idx); err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("empty tuple: %w", ErrBadIndex)
	}
	n := root
	for _, i := range idx[:len(idx)-1] {
		n, _ = n.Child(i)
	}

	return n.Class.IndexToSizes(idx[len(idx)-1]), nil
}

// Limits returns the coordinate box of the block selected by the prefix idx.
// Blocks below a checkerboard level are not boxes and yield ErrBadIndex.
func Limits(root *builder.Node, idx []int) ([]Interval, error) {
	if err := Check(root, idx); err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("empty tuple: %w", ErrBadIndex)
	}
	n := root
	for level, i := range idx {
		if n.Class.Kind() == partition.KindEvenOdd {
			return nil, fmt.Errorf("level %d (%s): not a box: %w", level, n.Class.Name(), ErrBadIndex)
		}
		if level < len(idx)-1 {
			n, _ = n.Child(i)
		}
	}
	starts, err := Coordinate(root, idx)
	if err != nil {
		return nil, err
	}
	sizes, err := Sizes(root, idx)
	if err != nil {
		return nil, err
	}
	out := make([]Interval, len(starts))
	for d, s := range starts {
		out[d] = Interval{Start: s, End: s + sizes[d]}
	}

	return out, nil
}
