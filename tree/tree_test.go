package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmesiti/hypercubes/tree"
)

// n is a short constructor for integer trees.
func n(v int, cs ...tree.Tree[int]) tree.Tree[int] { return tree.New(v, cs...) }

func sample() tree.Tree[int] {
	return n(1,
		n(2, n(4), n(5)),
		n(3, n(6), n(7)),
	)
}

func TestFoldAndQueries(t *testing.T) {
	s := sample()
	assert.Equal(t, 3, tree.MaxDepth(s))
	assert.Equal(t, []int{4, 5, 6, 7}, tree.Leaves(s))
	assert.Equal(t, []int{1, 2, 4, 5, 3, 6, 7}, tree.Flatten(s))
	assert.Equal(t, []int{1, 2, 4}, tree.FirstNodes(s))
	assert.Equal(t, [][]int{{1, 2, 4}, {1, 2, 5}, {1, 3, 6}, {1, 3, 7}}, tree.AllPaths(s))

	sum := tree.Fold(s, func(v int, cs []int) int {
		for _, c := range cs {
			v += c
		}
		return v
	})
	assert.Equal(t, 28, sum)

	doubled := tree.Map(s, func(v int) int { return 2 * v })
	assert.Equal(t, []int{8, 10, 12, 14}, tree.Leaves(doubled))
}

func TestTruncateAndSubtrees(t *testing.T) {
	s := sample()
	assert.Equal(t, n(1), tree.Truncate(s, 0))
	assert.Equal(t, n(1, n(2), n(3)), tree.Truncate(s, 1))
	assert.Equal(t, []int{2, 3}, tree.Leaves(tree.Truncate(s, 1)))

	subs := tree.Subtrees(s, 1)
	require.Len(t, subs, 2)
	assert.Equal(t, n(3, n(6), n(7)), subs[1])
	assert.Len(t, tree.Subtrees(s, 5), 4)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1\n  2\n    4\n    5\n  3\n    6\n    7", tree.Format(sample()))
}

func TestCollapseLevel(t *testing.T) {
	got, err := tree.CollapseLevel(sample(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, n(1, n(4), n(6)), got)

	_, err = tree.CollapseLevel(sample(), 1, 2)
	require.ErrorIs(t, err, tree.ErrChildOutOfRange)
}

func TestBringLevelOnTop(t *testing.T) {
	s := n(1,
		n(2, n(4), n(5)),
		n(2, n(6), n(7)),
	)
	got, err := tree.BringLevelOnTop(s, 0)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	got, err = tree.BringLevelOnTop(s, 1)
	require.NoError(t, err)
	assert.Equal(t, n(2,
		n(1, n(4), n(6)),
		n(1, n(5), n(7)),
	), got)

	_, err = tree.BringLevelOnTop(sample(), 1)
	require.ErrorIs(t, err, tree.ErrNonUniformLevel, "values 2 and 3 differ")
}

func TestBringLevelOnTopAsymmetric(t *testing.T) {
	s := n(0,
		n(1,
			n(2, n(4), n(5)),
			n(2, n(6), n(7)),
		),
		n(1,
			n(2, n(6), n(7)),
		),
	)
	got, err := tree.BringLevelOnTop(s, 2)
	require.NoError(t, err)
	assert.Equal(t, n(2,
		n(0,
			n(1, n(4), n(6)),
			n(1, n(6)),
		),
		n(0,
			n(1, n(5), n(7)),
			n(1, n(7)),
		),
	), got)

	// Level 1 nodes have two and one children.
	_, err = tree.BringLevelOnTop(s, 1)
	require.ErrorIs(t, err, tree.ErrNonUniformLevel)
}

func TestSwapLevels(t *testing.T) {
	s := n(1,
		n(2, n(4), n(5)),
		n(2, n(6), n(7)),
	)
	got, err := tree.SwapLevels(s, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, s, got)

	got, err = tree.SwapLevels(s, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, n(2, n(1, n(4), n(6)), n(1, n(5), n(7))), got)

	chain := n(0, n(1, n(2, n(3, n(4, n(5))))))
	got, err = tree.SwapLevels(chain, []int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, chain, got)

	got, err = tree.SwapLevels(chain, []int{2, 1, 0, 4, 3})
	require.NoError(t, err)
	assert.Equal(t, n(2, n(1, n(0, n(4, n(3, n(5)))))), got)
	assert.Equal(t, []int{2, 1, 0, 4, 3, 5}, tree.FirstNodes(got))

	_, err = tree.SwapLevels(chain, []int{1, 1})
	require.ErrorIs(t, err, tree.ErrBadOrdering)
	_, err = tree.SwapLevels(chain, []int{-1})
	require.ErrorIs(t, err, tree.ErrBadOrdering)
}

func TestReorderRejectsLeafLevels(t *testing.T) {
	s := n(7, n(3), n(3))

	_, err := tree.BringLevelOnTop(s, 1)
	require.ErrorIs(t, err, tree.ErrLeafLevel)
	_, err = tree.BringLevelOnTop(s, 5)
	require.ErrorIs(t, err, tree.ErrLeafLevel)

	for _, ordering := range [][]int{{1}, {5}, {1, 0}} {
		_, err = tree.SwapLevels(s, ordering)
		assert.ErrorIs(t, err, tree.ErrBadOrdering, "%v", ordering)
	}

	got, err := tree.SwapLevels(s, []int{0})
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
