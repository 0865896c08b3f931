package levels

import (
	"fmt"

	"github.com/mmesiti/hypercubes/tree"
)

const (
	white = iota
	gray
	black
)

// orderer carries the state of one depth-first ordering pass.
type orderer struct {
	deps  Dependencies
	state []int
	order []int
}

// TopologicalOrder returns a permutation of all levels in which every level
// comes after the levels it depends on. Levels named in first are placed as
// early as their own dependencies allow, in the given order; the remaining
// levels follow in ascending order.
func TopologicalOrder(deps Dependencies, first ...int) ([]int, error) {
	o := &orderer{
		deps:  deps,
		state: make([]int, len(deps)),
		order: make([]int, 0, len(deps)),
	}
	for _, l := range first {
		if l < 0 || l >= len(deps) {
			return nil, fmt.Errorf("level %d of %d: %w", l, len(deps), tree.ErrBadOrdering)
		}
	}
	for _, l := range first {
		if err := o.visit(l); err != nil {
			return nil, err
		}
	}
	for l := range deps {
		if err := o.visit(l); err != nil {
			return nil, err
		}
	}

	return o.order, nil
}

// visit places the dependencies of l, then l itself.
func (o *orderer) visit(l int) error {
	switch o.state[l] {
	case black:
		return nil
	case gray:
		return fmt.Errorf("level %d: %w", l, ErrCyclicConstraints)
	}
	o.state[l] = gray
	for _, d := range o.deps[l] {
		if d < 0 || d >= len(o.deps) {
			return fmt.Errorf("level %d depends on unknown level %d: %w", l, d, tree.ErrBadOrdering)
		}
		if err := o.visit(d); err != nil {
			return err
		}
	}
	o.state[l] = black
	o.order = append(o.order, l)

	return nil
}

// CheckOrdering verifies that ordering, completed with the unlisted levels
// in ascending order, keeps every level below the levels it depends on.
func CheckOrdering(deps Dependencies, ordering []int) error {
	pos := make([]int, len(deps))
	for i := range pos {
		pos[i] = -1
	}
	for i, l := range ordering {
		if l < 0 || l >= len(deps) || pos[l] >= 0 {
			return fmt.Errorf("%v: %w", ordering, tree.ErrBadOrdering)
		}
		pos[l] = i
	}
	next := len(ordering)
	for l := range pos {
		if pos[l] < 0 {
			pos[l] = next
			next++
		}
	}

	for l, ds := range deps {
		for _, d := range ds {
			if pos[d] > pos[l] {
				return fmt.Errorf("level %d placed above level %d: %w", l, d, ErrUnsafeOrdering)
			}
		}
	}

	return nil
}

// Reorder checks ordering against deps and applies it to t.
func Reorder[T comparable](t tree.Tree[T], deps Dependencies, ordering []int) (tree.Tree[T], error) {
	if err := CheckOrdering(deps, ordering); err != nil {
		return tree.Tree[T]{}, err
	}

	return tree.SwapLevels(t, ordering)
}
