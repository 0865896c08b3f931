package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmesiti/hypercubes/alloc"
	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/internal/presets"
	"github.com/mmesiti/hypercubes/predicate"
)

const (
	F = predicate.False
	T = predicate.True
	M = predicate.Maybe
)

func TestTriboolTables(t *testing.T) {
	vals := []predicate.Tribool{F, T, M}
	and := [3][3]predicate.Tribool{{F, F, F}, {F, T, M}, {F, M, M}}
	or := [3][3]predicate.Tribool{{F, T, M}, {T, T, T}, {M, T, M}}
	for i, a := range vals {
		for j, b := range vals {
			assert.Equal(t, and[i][j], a.And(b), "%s & %s", a, b)
			assert.Equal(t, or[i][j], a.Or(b), "%s | %s", a, b)
		}
	}
	assert.Equal(t, []predicate.Tribool{T, F, M}, []predicate.Tribool{F.Not(), T.Not(), M.Not()})
	assert.Equal(t, T, predicate.Definite(true))
	assert.Equal(t, F, predicate.Definite(false))
}

func TestHaloAtMostPrefixes(t *testing.T) {
	rules := presets.Lattice4D().Rules
	p := predicate.HaloAtMost(rules, 1)
	prefix := func(halos ...int) []int {
		return append([]int{0, 0, 0, 0, 0, 0, 0, 0}, halos...)
	}

	assert.Equal(t, M, p(nil))
	assert.Equal(t, M, p(prefix(0)))
	assert.Equal(t, F, p(prefix(0, 4)))
	assert.Equal(t, M, p(prefix(2, 2)))
	assert.Equal(t, M, p(prefix(2, 2, 0)))
	assert.Equal(t, F, p(prefix(2, 2, 0, 4)))
	assert.Equal(t, T, p(prefix(2, 2, 0, 3)))
	assert.Equal(t, T, p(prefix(2, 2, 2)))
	assert.Equal(t, T, predicate.HaloAtMost(rules, 4)(nil))
	assert.Equal(t, F, predicate.HaloAtMost(rules, -1)(nil))
}

func TestRank(t *testing.T) {
	rules := presets.Lattice4D().Rules
	p := predicate.Rank(rules, []int{3, 1, 0, 2}, nil)
	assert.Equal(t, M, p([]int{3, 1}))
	assert.Equal(t, F, p([]int{3, 2}))
	assert.Equal(t, T, p([]int{3, 1, 0, 2}))
	assert.Equal(t, T, p([]int{3, 1, 0, 2, 1, 1}))

	lanes := predicate.Rank(rules, []int{1}, predicate.ByName("VECTOR X"))
	assert.Equal(t, M, lanes([]int{0, 0, 0, 0}))
	assert.Equal(t, T, lanes([]int{0, 0, 0, 0, 1}))
}

func TestCombinators(t *testing.T) {
	always := func(v predicate.Tribool) predicate.Func {
		return func([]int) predicate.Tribool { return v }
	}
	assert.Equal(t, F, predicate.And(always(M), always(F))(nil))
	assert.Equal(t, M, predicate.And(always(M), always(T))(nil))
	assert.Equal(t, T, predicate.Or(always(M), always(T))(nil))
	assert.Equal(t, M, predicate.Or(always(F), always(M))(nil))
	assert.Equal(t, T, predicate.Not(always(F))(nil))

	bound := predicate.Bind(always(M))
	assert.True(t, bound(nil))
	assert.False(t, predicate.Bind(always(F))(nil))
}

func lineTotal(t *testing.T, f predicate.Func) int {
	t.Helper()
	l := presets.Line42()
	root, err := builder.Build(l.Geometry, l.Rules)
	require.NoError(t, err)

	var pred alloc.Predicate
	if f != nil {
		pred = predicate.Bind(f)
	}
	return alloc.Total(alloc.SizeTree(root, pred))
}

func TestLineAllocationTotals(t *testing.T) {
	rules := presets.Line42().Rules
	assert.Equal(t, 58, lineTotal(t, nil))
	assert.Equal(t, 42, lineTotal(t, predicate.HaloAtMost(rules, 0)))
	assert.Equal(t, 16, lineTotal(t, predicate.HalosOnly(rules)))
	assert.Equal(t, 16, lineTotal(t, predicate.HaloBetween(rules, 1, 1)))
	assert.Equal(t, 9, lineTotal(t, predicate.And(
		predicate.Rank(rules, []int{3}, nil),
		predicate.HaloAtMost(rules, 0),
	)))
	assert.Equal(t, 13, lineTotal(t, predicate.Rank(rules, []int{3}, nil)))
}

func TestLatticeRankAllocation(t *testing.T) {
	l := presets.Lattice4D()
	root, err := builder.Build(l.Geometry, l.Rules)
	require.NoError(t, err)
	rank := predicate.Rank(l.Rules, []int{3, 3, 3, 3}, nil)

	interior := alloc.SizeTree(root, predicate.Bind(predicate.And(rank, predicate.HaloAtMost(l.Rules, 0))))
	assert.Equal(t, 9*9*9*9, alloc.Total(interior))

	// 9 interior and 4 halo sites per axis on rank 3.
	oneHalo := alloc.SizeTree(root, predicate.Bind(predicate.And(rank, predicate.HaloAtMost(l.Rules, 1))))
	assert.Equal(t, 9*9*9*9+4*4*9*9*9, alloc.Total(oneHalo))

	all := alloc.SizeTree(root, predicate.Bind(rank))
	assert.Equal(t, 13*13*13*13, alloc.Total(all))
}
