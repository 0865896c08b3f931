package tree

import (
	"fmt"
	"strings"
)

// Tree is an immutable rose tree: a value and its ordered children.
// A node without children is a leaf.
type Tree[T any] struct {
	Value    T
	Children []Tree[T]
}

// New builds a node.
func New[T any](v T, children ...Tree[T]) Tree[T] {
	return Tree[T]{Value: v, Children: children}
}

// Leaf builds a node without children.
func Leaf[T any](v T) Tree[T] { return Tree[T]{Value: v} }

// IsLeaf reports whether t has no children.
func (t Tree[T]) IsLeaf() bool { return len(t.Children) == 0 }

// Fold reduces t bottom-up: f receives each node value together with the
// already folded results of its children.
func Fold[T, R any](t Tree[T], f func(v T, children []R) R) R {
	rs := make([]R, len(t.Children))
	for i, c := range t.Children {
		rs[i] = Fold(c, f)
	}

	return f(t.Value, rs)
}

// Map applies f to every value, preserving shape.
func Map[T, U any](t Tree[T], f func(T) U) Tree[U] {
	return Fold(t, func(v T, cs []Tree[U]) Tree[U] {
		if len(cs) == 0 {
			cs = nil
		}
		return Tree[U]{Value: f(v), Children: cs}
	})
}

// MaxDepth counts nodes on the longest root-to-leaf path (a leaf has depth 1).
func MaxDepth[T any](t Tree[T]) int {
	return Fold(t, func(_ T, cs []int) int {
		m := 0
		for _, d := range cs {
			m = max(m, d)
		}
		return 1 + m
	})
}

// AllPaths returns every root-to-leaf path.
func AllPaths[T any](t Tree[T]) [][]T {
	if t.IsLeaf() {
		return [][]T{{t.Value}}
	}
	var out [][]T
	for _, c := range t.Children {
		for _, p := range AllPaths(c) {
			out = append(out, append([]T{t.Value}, p...))
		}
	}

	return out
}

// Leaves returns leaf values in depth-first order.
func Leaves[T any](t Tree[T]) []T {
	if t.IsLeaf() {
		return []T{t.Value}
	}
	var out []T
	for _, c := range t.Children {
		out = append(out, Leaves(c)...)
	}

	return out
}

// Flatten returns every value in depth-first pre-order.
func Flatten[T any](t Tree[T]) []T {
	out := []T{t.Value}
	for _, c := range t.Children {
		out = append(out, Flatten(c)...)
	}

	return out
}

// FirstNodes follows the first child from the root down to a leaf.
func FirstNodes[T any](t Tree[T]) []T {
	out := []T{t.Value}
	for !t.IsLeaf() {
		t = t.Children[0]
		out = append(out, t.Value)
	}

	return out
}

// Truncate drops every node deeper than level; level 0 keeps only the root.
func Truncate[T any](t Tree[T], level int) Tree[T] {
	if level <= 0 || t.IsLeaf() {
		return Tree[T]{Value: t.Value}
	}
	cs := make([]Tree[T], len(t.Children))
	for i, c := range t.Children {
		cs[i] = Truncate(c, level-1)
	}

	return Tree[T]{Value: t.Value, Children: cs}
}

// Subtrees returns the subtrees rooted at level, left to right. Leaves
// shallower than level are returned as they are.
func Subtrees[T any](t Tree[T], level int) []Tree[T] {
	if level <= 0 || t.IsLeaf() {
		return []Tree[T]{t}
	}
	var out []Tree[T]
	for _, c := range t.Children {
		out = append(out, Subtrees(c, level-1)...)
	}

	return out
}

// Format renders t one value per line, children indented by two spaces.
func Format[T any](t Tree[T]) string {
	var sb strings.Builder
	var walk func(prefix string, n Tree[T])
	walk = func(prefix string, n Tree[T]) {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(prefix)
		fmt.Fprint(&sb, n.Value)
		for _, c := range n.Children {
			walk(prefix+"  ", c)
		}
	}
	walk("", t)

	return sb.String()
}
