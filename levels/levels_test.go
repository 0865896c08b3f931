package levels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/geometry"
	"github.com/mmesiti/hypercubes/internal/presets"
	"github.com/mmesiti/hypercubes/levels"
	"github.com/mmesiti/hypercubes/partition"
	"github.com/mmesiti/hypercubes/tree"
)

func analyze(t *testing.T, l builder.Layout) levels.Dependencies {
	t.Helper()
	root, err := builder.Build(l.Geometry, l.Rules)
	require.NoError(t, err)

	return levels.Analyze(root)
}

func line40(ranks int) builder.Layout {
	return presets.Standard([]int{40}, []int{ranks}, []int{2}, 1)
}

func TestLineDependencies(t *testing.T) {
	deps := analyze(t, line40(2))
	require.Len(t, deps, 5)
	for l := 0; l < 4; l++ {
		assert.Empty(t, deps[l], "level %d", l)
	}
	assert.Equal(t, []int{2, 3}, deps[4])

	deps = analyze(t, line40(4))
	assert.Equal(t, []int{1, 2, 3}, deps[4])
}

func TestMatrixString(t *testing.T) {
	l := line40(2)
	root, err := builder.Build(l.Geometry, l.Rules)
	require.NoError(t, err)
	m := levels.DependencyMatrix(levels.MaxIndexTree(root))

	assert.Equal(t, 5, m.Levels())
	assert.False(t, m.Independent(4, 2))
	assert.True(t, m.Independent(4, 1))
	assert.True(t, m.Independent(2, 4))
	assert.False(t, m.Independent(9, 0))
	assert.False(t, m.Independent(3, -1))
	assert.Equal(t, "  0 .\n  1 ..\n  2 ...\n  3 ....\n  4 ..xx.", m.String())
}

func TestLocalDOFsCommute(t *testing.T) {
	l := builder.Layout{
		Geometry: geometry.FromSizes(42, 3, 4),
		Rules: []partition.Rule{
			partition.QPeriodic("MPI X", 0, 4),
			partition.LeafRule("LocalDOFs2", 2),
			partition.QOpen("VECTOR X", 0, 2),
			partition.HBB("halos X", 0, 1),
			partition.LeafRule("LocalDOFs1", 1),
			partition.EvenOddRule("EO", true, false, false),
			partition.LeafRule("EO-flattened", 3),
			partition.End("END"),
		},
	}
	deps := analyze(t, l)
	require.Len(t, deps, 7)
	for lvl := 0; lvl < 6; lvl++ {
		assert.Empty(t, deps[lvl], "level %d", lvl)
	}
	assert.Equal(t, []int{0, 2, 3, 5}, deps[6])
}

func TestLatticeDependencies(t *testing.T) {
	four := func(v int) []int { return []int{v, v, v, v} }

	t.Run("with halos", func(t *testing.T) {
		deps := analyze(t, presets.Standard(four(40), four(2), four(2), 1))
		require.Len(t, deps, 14)
		for l := 0; l < 13; l++ {
			assert.Empty(t, deps[l], "level %d", l)
		}
		assert.Equal(t, []int{8, 9, 10, 11, 12}, deps[13])
	})

	t.Run("without halos", func(t *testing.T) {
		deps := analyze(t, presets.Standard(four(42), four(2), four(2), 0))
		require.Len(t, deps, 10)
		for l := 0; l < 9; l++ {
			assert.Empty(t, deps[l], "level %d", l)
		}
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, deps[9])
	})
}

func TestTopologicalOrder(t *testing.T) {
	deps := analyze(t, line40(2))

	order, err := levels.TopologicalOrder(deps)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)

	order, err = levels.TopologicalOrder(deps, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 0, 1}, order)
	require.NoError(t, levels.CheckOrdering(deps, order))

	_, err = levels.TopologicalOrder(deps, 7)
	assert.ErrorIs(t, err, tree.ErrBadOrdering)

	_, err = levels.TopologicalOrder(levels.Dependencies{{1}, {0}})
	assert.ErrorIs(t, err, levels.ErrCyclicConstraints)
}

func TestCheckOrdering(t *testing.T) {
	deps := analyze(t, line40(2))

	tests := []struct {
		name     string
		ordering []int
		wantErr  error
	}{
		{"identity", nil, nil},
		{"swap ranks and lanes", []int{1, 0}, nil},
		{"halo first", []int{2, 0, 1}, nil},
		{"flattening first", []int{4}, levels.ErrUnsafeOrdering},
		{"flattening above EO", []int{0, 1, 2, 4, 3}, levels.ErrUnsafeOrdering},
		{"repeated level", []int{0, 0}, tree.ErrBadOrdering},
		{"unknown level", []int{5}, tree.ErrBadOrdering},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := levels.CheckOrdering(deps, tc.ordering)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestReorder(t *testing.T) {
	l := line40(2)
	root, err := builder.Build(l.Geometry, l.Rules)
	require.NoError(t, err)
	mt := levels.MaxIndexTree(root)
	deps := levels.MustComeAfter(levels.DependencyMatrix(mt))

	got, err := levels.Reorder(mt, deps, []int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Value)
	require.Len(t, got.Children, 3)
	assert.Equal(t, 2, got.Children[0].Value)
	assert.Equal(t, tree.MaxDepth(mt), tree.MaxDepth(got))
	assert.ElementsMatch(t, tree.Leaves(mt), tree.Leaves(got))

	_, err = levels.Reorder(mt, deps, []int{4})
	assert.ErrorIs(t, err, levels.ErrUnsafeOrdering)
}
