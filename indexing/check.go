package indexing

import (
	"fmt"

	"github.com/mmesiti/hypercubes/builder"
)

// Check verifies that idx routes through the tree: every component lies in
// [0, MaxIndexValue()) of its level and selects an existing child. Prefixes
// are accepted; tuples longer than the tree are not.
func Check(root *builder.Node, idx []int) error {
	n := root
	for level, i := range idx {
		if n == nil || n.IsEnd() {
			return fmt.Errorf("level %d: tuple longer than tree: %w", level, ErrBadIndex)
		}
		if i < 0 || i >= n.Class.MaxIndexValue() {
			return fmt.Errorf("level %d (%s): index %d not in [0,%d): %w",
				level, n.Class.Name(), i, n.Class.MaxIndexValue(), ErrBadIndex)
		}
		if level == len(idx)-1 {
			break
		}
		child, err := childOf(n, i, level)
		if err != nil {
			return err
		}
		n = child
	}

	return nil
}

// Validate reports whether Check accepts idx.
func Validate(root *builder.Node, idx []int) bool {
	return Check(root, idx) == nil
}
