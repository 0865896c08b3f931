package alloc

import (
	"fmt"
	"iter"

	"github.com/mmesiti/hypercubes/tree"
)

// First returns the first allocated tuple in depth-first order, or nil when
// nothing is allocated.
func First(st tree.Tree[Block]) []int {
	if st.Value.Size == 0 {
		return nil
	}
	var out []int
	for !st.IsLeaf() {
		st = st.Children[0]
		out = append(out, st.Value.Label)
	}

	return append(out, 0)
}

// Iterate returns the allocated tuple following idx, or ErrExhausted after
// the last one. Blocks pruned by the predicate are skipped.
func Iterate(st tree.Tree[Block], idx []int) ([]int, error) {
	next, ok, err := iterate(st, idx)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", idx, err)
	}
	if !ok {
		return nil, ErrExhausted
	}

	return next, nil
}

func iterate(st tree.Tree[Block], idx []int) ([]int, bool, error) {
	if len(idx) == 0 {
		return nil, false, ErrNotAllocated
	}
	if st.IsLeaf() {
		if len(idx) != 1 || idx[0] < 0 || idx[0] >= st.Value.Size {
			return nil, false, ErrNotAllocated
		}
		if idx[0]+1 >= st.Value.Size {
			return nil, false, nil
		}
		return []int{idx[0] + 1}, true, nil
	}
	pos := childPos(st, idx[0])
	if pos < 0 {
		return nil, false, ErrNotAllocated
	}
	sub, ok, err := iterate(st.Children[pos], idx[1:])
	if err != nil {
		return nil, false, err
	}
	if ok {
		return append([]int{idx[0]}, sub...), true, nil
	}
	if pos == len(st.Children)-1 {
		return nil, false, nil
	}
	next := st.Children[pos+1]

	return append([]int{next.Value.Label}, First(next)...), true, nil
}

func childPos(st tree.Tree[Block], label int) int {
	for i, c := range st.Children {
		if c.Value.Label == label {
			return i
		}
	}

	return -1
}

// Offset returns the position of idx in the dense depth-first layout.
func Offset(st tree.Tree[Block], idx []int) (int, error) {
	off := 0
	for level, i := range idx {
		if st.IsLeaf() {
			if level != len(idx)-1 || i < 0 || i >= st.Value.Size {
				return 0, fmt.Errorf("%v: %w", idx, ErrNotAllocated)
			}
			return off + i, nil
		}
		pos := childPos(st, i)
		if pos < 0 {
			return 0, fmt.Errorf("%v: %w", idx, ErrNotAllocated)
		}
		for _, c := range st.Children[:pos] {
			off += c.Value.Size
		}
		st = st.Children[pos]
	}

	return 0, fmt.Errorf("%v: too short: %w", idx, ErrNotAllocated)
}

// IndexAt inverts Offset: it returns the tuple stored at position offset of
// the dense depth-first layout.
func IndexAt(st tree.Tree[Block], offset int) ([]int, error) {
	if offset < 0 || offset >= st.Value.Size {
		return nil, fmt.Errorf("offset %d of %d: %w", offset, st.Value.Size, ErrNotAllocated)
	}
	var out []int
	for !st.IsLeaf() {
		for _, c := range st.Children {
			if offset < c.Value.Size {
				st = c
				break
			}
			offset -= c.Value.Size
		}
		out = append(out, st.Value.Label)
	}

	return append(out, offset), nil
}

// All yields every allocated tuple in depth-first order.
func All(st tree.Tree[Block]) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if st.Value.Size == 0 {
			return
		}
		for idx := First(st); ; {
			if !yield(idx) {
				return
			}
			next, err := Iterate(st, idx)
			if err != nil {
				return
			}
			idx = next
		}
	}
}
