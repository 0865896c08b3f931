// SPDX-License-Identifier: MIT
// Package: hypercubes/builder

package builder

import "strings"

// Dump renders at most maxLevel levels of the tree rooted at n. Each node
// gives two lines, "+name" and its description; siblings are joined by "|".
// The output is meant for humans only.
func Dump(n *Node, maxLevel int) string {
	return dump(n, "", maxLevel)
}

func dump(n *Node, prefix string, maxLevel int) string {
	if maxLevel <= 0 || n == nil || n.IsEnd() {
		return ""
	}
	lines := []string{
		prefix + "+" + n.Class.Name(),
		prefix + " " + n.Class.Describe(),
	}
	inner := prefix + "   "
	for i, c := range n.Children {
		p := inner + "|"
		if i == len(n.Children)-1 {
			p = inner + " "
		}
		if s := dump(c, p, maxLevel-1); s != "" {
			lines = append(lines, s)
		}
	}

	return strings.Join(lines, "\n")
}
