package levels

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/partition"
	"github.com/mmesiti/hypercubes/tree"
)

// MaxIndexTree maps every class of root to its MaxIndexValue. End nodes are
// dropped, so the tree has one level per non-End rule. A chain starting with
// End gives a single zero node.
func MaxIndexTree(root *builder.Node) tree.Tree[int] {
	if root == nil || root.IsEnd() {
		return tree.Leaf(0)
	}

	return builder.ToTree(root, partition.Class.MaxIndexValue)
}

// Matrix is the level dependency relation of a max-index tree.
type Matrix struct {
	indep [][]bool // indep[end][start] for start <= end
}

// DependencyMatrix computes the independence of every pair of levels
// start <= end of t.
func DependencyMatrix(t tree.Tree[int]) Matrix {
	n := tree.MaxDepth(t)
	m := Matrix{indep: make([][]bool, n)}
	for end := 0; end < n; end++ {
		m.indep[end] = make([]bool, end+1)
		m.indep[end][end] = true
		truncated := tree.Truncate(t, end)
		for start := 0; start < end; start++ {
			m.indep[end][start] = lo.EveryBy(tree.Subtrees(truncated, start), sameDistribution)
		}
	}

	return m
}

// sameDistribution reports whether the children of t have identical leaf
// lists, or whether every leaf below t carries the same value.
func sameDistribution(t tree.Tree[int]) bool {
	lists := lo.Map(tree.Subtrees(t, 1), func(c tree.Tree[int], _ int) []int {
		return tree.Leaves(c)
	})
	equal := true
	for i := 1; i < len(lists) && equal; i++ {
		equal = slices.Equal(lists[i-1], lists[i])
	}
	if equal {
		return true
	}

	return len(lo.Uniq(lo.Flatten(lists))) == 1
}

// Levels returns the number of levels m covers.
func (m Matrix) Levels() int { return len(m.indep) }

// Independent reports whether level end is independent of level start.
// Pairs with start > end are reported as independent, pairs naming a level
// outside [0, Levels()) as dependent.
func (m Matrix) Independent(end, start int) bool {
	if start > end {
		return true
	}
	if start < 0 || end >= len(m.indep) {
		return false
	}

	return m.indep[end][start]
}

// String renders m as a lower triangle, one row per end level,
// "." for independent pairs and "x" for dependent ones.
func (m Matrix) String() string {
	rows := make([]string, len(m.indep))
	for end, row := range m.indep {
		rows[end] = fmt.Sprintf("%3d ", end) + strings.Join(lo.Map(row, func(ok bool, _ int) string {
			return lo.Ternary(ok, ".", "x")
		}), "")
	}

	return strings.Join(rows, "\n")
}

// Dependencies lists, per level, the shallower levels it must stay below.
type Dependencies [][]int

// MustComeAfter extracts from m the levels each level depends on, ascending.
func MustComeAfter(m Matrix) Dependencies {
	deps := make(Dependencies, m.Levels())
	for end, row := range m.indep {
		for start, ok := range row {
			if !ok {
				deps[end] = append(deps[end], start)
			}
		}
	}

	return deps
}

// Analyze runs MustComeAfter on the max-index tree of root.
func Analyze(root *builder.Node) Dependencies {
	return MustComeAfter(DependencyMatrix(MaxIndexTree(root)))
}
