package predicate

import (
	"strings"

	"github.com/samber/lo"

	"github.com/mmesiti/hypercubes/partition"
)

// Func is a three-valued predicate over an index prefix.
type Func func(prefix []int) Tribool

// Bind converts f into a boolean predicate; Maybe counts as true.
func Bind(f Func) func(prefix []int) bool {
	return func(prefix []int) bool { return f(prefix) != False }
}

// And combines predicates with Kleene conjunction, stopping at the first False.
func And(fs ...Func) Func {
	return func(prefix []int) Tribool {
		out := True
		for _, f := range fs {
			if out = out.And(f(prefix)); out == False {
				return False
			}
		}
		return out
	}
}

// Or combines predicates with Kleene disjunction, stopping at the first True.
func Or(fs ...Func) Func {
	return func(prefix []int) Tribool {
		out := False
		for _, f := range fs {
			if out = out.Or(f(prefix)); out == True {
				return True
			}
		}
		return out
	}
}

// Not negates f.
func Not(f Func) Func {
	return func(prefix []int) Tribool { return f(prefix).Not() }
}

// isHalo reports whether idx selects a halo zone of a HaloBorderBulk level.
func isHalo(idx int) bool { return idx == 0 || idx == partition.HBBZones-1 }

// HaloAtMost accepts blocks lying in the halo of at most d axes. A prefix is
// True as soon as the remaining hbb levels cannot exceed d any more, and
// False once more than d halo zones have been chosen.
func HaloAtMost(rules []partition.Rule, d int) Func {
	hbbLevels := lo.CountBy(rules, func(r partition.Rule) bool { return r.Kind == partition.KindHBB })

	return func(prefix []int) Tribool {
		halos, remaining := 0, hbbLevels
		if d < 0 {
			return False
		}
		if remaining <= d {
			return True
		}
		for level, i := range prefix {
			if level >= len(rules) || rules[level].Kind != partition.KindHBB {
				continue
			}
			remaining--
			if isHalo(i) {
				halos++
			}
			if halos > d {
				return False
			}
			if halos+remaining <= d {
				return True
			}
		}
		return Maybe
	}
}

// HaloBetween accepts blocks lying in the halo of at least d1 and at most d2
// axes.
func HaloBetween(rules []partition.Rule, d1, d2 int) Func {
	return And(HaloAtMost(rules, d2), Not(HaloAtMost(rules, d1-1)))
}

// HalosOnly accepts blocks lying in the halo of at least one axis.
func HalosOnly(rules []partition.Rule) Func {
	return Not(HaloAtMost(rules, 0))
}

// Selector picks the levels Rank matches against.
type Selector func(partition.Rule) bool

// ByName selects the rules whose name contains substr.
func ByName(substr string) Selector {
	return func(r partition.Rule) bool { return strings.Contains(r.Name, substr) }
}

// Rank accepts the blocks whose indices at the selected levels equal ranks,
// in order. A nil selector picks levels named "MPI".
func Rank(rules []partition.Rule, ranks []int, sel Selector) Func {
	if sel == nil {
		sel = ByName("MPI")
	}
	levels := lo.Filter(lo.Range(len(rules)), func(l, _ int) bool { return sel(rules[l]) })

	return func(prefix []int) Tribool {
		for k, l := range levels {
			if k >= len(ranks) {
				return True
			}
			if l >= len(prefix) {
				return Maybe
			}
			if prefix[l] != ranks[k] {
				return False
			}
		}
		return True
	}
}
