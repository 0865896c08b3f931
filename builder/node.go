// SPDX-License-Identifier: MIT
// Package: hypercubes/builder

package builder

import (
	"github.com/mmesiti/hypercubes/partition"
	"github.com/mmesiti/hypercubes/tree"
)

// Node is one level of a decomposition tree. Class is nil for an End rule.
// Children line up with Class.ChildGeometries(). Nodes may be shared between
// parents and must not be modified.
type Node struct {
	Class    partition.Class
	Children []*Node
}

// IsEnd reports whether n stands for an End rule.
func (n *Node) IsEnd() bool { return n.Class == nil }

// IsTerminal reports whether n has no further levels below it: it has no
// children or only End children.
func (n *Node) IsTerminal() bool {
	for _, c := range n.Children {
		if !c.IsEnd() {
			return false
		}
	}

	return true
}

// Child returns the subtree reached through index idx of n's class.
func (n *Node) Child(idx int) (*Node, bool) {
	if n.Class == nil {
		return nil, false
	}
	k := n.Class.IndexToChildKind(idx)
	if k < 0 || k >= len(n.Children) {
		return nil, false
	}

	return n.Children[k], true
}

// Depth counts the levels on the deepest path, End nodes excluded.
func (n *Node) Depth() int {
	if n.IsEnd() {
		return 0
	}
	d := 0
	for _, c := range n.Children {
		d = max(d, c.Depth())
	}

	return d + 1
}

// Names lists the rule names along the first path from n down.
func (n *Node) Names() []string {
	var out []string
	for cur := n; cur != nil && !cur.IsEnd(); {
		out = append(out, cur.Class.Name())
		if len(cur.Children) == 0 {
			break
		}
		cur = cur.Children[0]
	}

	return out
}

// ToTree expands n into an explicit tree, mapping each class through f.
// End nodes are dropped. Shared subtrees are copied, so the result may be
// much larger than the memoized graph.
func ToTree[T any](n *Node, f func(partition.Class) T) tree.Tree[T] {
	t := tree.Tree[T]{Value: f(n.Class)}
	for _, c := range n.Children {
		if c.IsEnd() {
			continue
		}
		t.Children = append(t.Children, ToTree(c, f))
	}

	return t
}
