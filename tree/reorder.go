package tree

import "fmt"

// CollapseLevel removes level from t, replacing each node at that level by
// its child-th child. Leaves shallower than level are kept unchanged.
// Level 0 returns the child-th child of the root.
func CollapseLevel[T any](t Tree[T], level, child int) (Tree[T], error) {
	if level == 0 {
		if child < 0 || child >= len(t.Children) {
			return Tree[T]{}, fmt.Errorf("child %d of %d: %w", child, len(t.Children), ErrChildOutOfRange)
		}
		return t.Children[child], nil
	}
	if t.IsLeaf() {
		return t, nil
	}
	cs := make([]Tree[T], len(t.Children))
	for i, c := range t.Children {
		var err error
		if cs[i], err = CollapseLevel(c, level-1, child); err != nil {
			return Tree[T]{}, err
		}
	}

	return Tree[T]{Value: t.Value, Children: cs}, nil
}

// BringLevelOnTop moves level to the root. All nodes at level must carry the
// same value and the same number k > 0 of children; the result has that
// value at the root and children CollapseLevel(t, level, i) for i in [0,k).
// A level made of leaves yields ErrLeafLevel.
// Level 0 returns t unchanged.
func BringLevelOnTop[T comparable](t Tree[T], level int) (Tree[T], error) {
	if level == 0 {
		return t, nil
	}
	var (
		value  T
		nkids  = -1
		values = make(map[T]struct{}, 1)
	)
	for _, st := range Subtrees(t, level) {
		values[st.Value] = struct{}{}
		value = st.Value
		if nkids >= 0 && len(st.Children) != nkids {
			return Tree[T]{}, fmt.Errorf("level %d: child counts %d and %d: %w",
				level, nkids, len(st.Children), ErrNonUniformLevel)
		}
		nkids = len(st.Children)
	}
	if nkids == 0 {
		return Tree[T]{}, fmt.Errorf("level %d: %w", level, ErrLeafLevel)
	}
	if len(values) != 1 {
		return Tree[T]{}, fmt.Errorf("level %d: %d distinct values: %w", level, len(values), ErrNonUniformLevel)
	}

	cs := make([]Tree[T], nkids)
	for i := range cs {
		c, err := CollapseLevel(t, level, i)
		if err != nil {
			return Tree[T]{}, err
		}
		cs[i] = c
	}

	return Tree[T]{Value: value, Children: cs}, nil
}

// SwapLevels realises the level permutation ordering: level ordering[i] of t
// becomes level i of the result. Levels deeper than len(ordering) keep their
// relative position. Only non-leaf levels, those below MaxDepth(t)-1, may
// appear in ordering.
func SwapLevels[T comparable](t Tree[T], ordering []int) (Tree[T], error) {
	last := MaxDepth(t) - 1
	seen := make(map[int]bool, len(ordering))
	for _, l := range ordering {
		if l < 0 || l >= last || seen[l] {
			return Tree[T]{}, fmt.Errorf("%v: %w", ordering, ErrBadOrdering)
		}
		seen[l] = true
	}

	return swapLevels(t, ordering)
}

func swapLevels[T comparable](t Tree[T], ordering []int) (Tree[T], error) {
	if len(ordering) == 0 {
		return t, nil
	}
	top := ordering[0]
	nt, err := BringLevelOnTop(t, top)
	if err != nil {
		return Tree[T]{}, err
	}
	if nt.IsLeaf() {
		return nt, nil
	}
	sub := make([]int, 0, len(ordering)-1)
	for _, l := range ordering[1:] {
		if l > top {
			l--
		}
		sub = append(sub, l)
	}
	cs := make([]Tree[T], len(nt.Children))
	for i, c := range nt.Children {
		if cs[i], err = swapLevels(c, sub); err != nil {
			return Tree[T]{}, err
		}
	}

	return Tree[T]{Value: nt.Value, Children: cs}, nil
}
