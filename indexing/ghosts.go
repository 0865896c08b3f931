package indexing

import (
	"github.com/samber/lo"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/tree"
)

// RootLevel is the level name of the root of a ghost tree.
const RootLevel = "ROOT"

// GhostNode is one step of a ghost-inclusive address.
type GhostNode struct {
	Idx   int
	Ghost bool
	Level string
}

// GhostPath is a complete address together with its number of ghost steps.
// A count of zero marks the canonical address.
type GhostPath struct {
	Ghosts int
	Steps  []GhostNode
}

// Indices returns the bare index tuple of p.
func (p GhostPath) Indices() []int {
	return lo.Map(p.Steps, func(s GhostNode, _ int) int { return s.Idx })
}

// GhostTree explores every candidate (canonical and ghost) at every level.
// The root carries RootLevel; each root-to-leaf path is one address attempt.
// Candidates rejected deeper down end as short paths, which RelevantPaths
// discards.
func GhostTree(root *builder.Node, xs []int) tree.Tree[GhostNode] {
	return tree.Tree[GhostNode]{
		Value:    GhostNode{Level: RootLevel},
		Children: ghostChildren(root, xs),
	}
}

func ghostChildren(n *builder.Node, xs []int) []tree.Tree[GhostNode] {
	if n == nil || n.IsEnd() {
		return nil
	}
	var out []tree.Tree[GhostNode]
	for _, r := range n.Class.CoordToIndices(xs) {
		t := tree.Tree[GhostNode]{
			Value: GhostNode{Idx: r.Idx, Ghost: r.Cached, Level: n.Class.Name()},
		}
		if child, ok := n.Child(r.Idx); ok {
			t.Children = ghostChildren(child, r.Rest)
		}
		out = append(out, t)
	}

	return out
}

// RelevantPaths returns the root-to-leaf paths of a ghost tree that reach
// its maximum depth, with the root step removed.
func RelevantPaths(t tree.Tree[GhostNode]) []GhostPath {
	depth := tree.MaxDepth(t)
	var out []GhostPath
	for _, p := range tree.AllPaths(t) {
		if len(p) != depth {
			continue
		}
		steps := p[1:]
		out = append(out, GhostPath{
			Ghosts: lo.CountBy(steps, func(s GhostNode) bool { return s.Ghost }),
			Steps:  steps,
		})
	}

	return out
}

// AllAddresses returns every complete address of xs, canonical and ghost.
// Unlike RelevantPaths it drops paths that stop above the last level, which
// happens when every candidate is rejected somewhere below.
func AllAddresses(root *builder.Node, xs []int) []GhostPath {
	depth := root.Depth()

	return lo.Filter(RelevantPaths(GhostTree(root, xs)), func(p GhostPath, _ int) bool {
		return len(p.Steps) == depth
	})
}
