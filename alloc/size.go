package alloc

import (
	"github.com/samber/lo"

	"github.com/mmesiti/hypercubes/builder"
	"github.com/mmesiti/hypercubes/tree"
)

// Predicate decides whether the block addressed by prefix is stored.
type Predicate func(prefix []int) bool

// acceptAll stands in for a nil Predicate.
func acceptAll([]int) bool { return true }

// Block is a size-tree node. Label is the index selected at the parent
// (-1 at the root) and Prefix the full index prefix down to this block.
type Block struct {
	Size   int
	Label  int
	Prefix []int
}

// SizeTree computes the allocated size of every block of root under pred
// (nil accepts everything). A terminal level, one without further classes
// below, contributes MaxIndexValue() sites and is not filtered by pred.
// Blocks of size zero are pruned, except the root: when pred rejects
// everything the result is a lone root of size 0.
func SizeTree(root *builder.Node, pred Predicate) tree.Tree[Block] {
	if pred == nil {
		pred = acceptAll
	}
	if root == nil || root.IsEnd() {
		return tree.Leaf(Block{Label: -1})
	}

	return sizeTree(root, pred, nil, -1)
}

func sizeTree(n *builder.Node, pred Predicate, prefix []int, label int) tree.Tree[Block] {
	if n.IsTerminal() {
		return tree.Leaf(Block{Size: n.Class.MaxIndexValue(), Label: label, Prefix: prefix})
	}
	var kids []tree.Tree[Block]
	for i := 0; i < n.Class.MaxIndexValue(); i++ {
		p := append(append(make([]int, 0, len(prefix)+1), prefix...), i)
		if !pred(p) {
			continue
		}
		child, ok := n.Child(i)
		if !ok {
			continue
		}
		if st := sizeTree(child, pred, p, i); st.Value.Size > 0 {
			kids = append(kids, st)
		}
	}
	total := lo.SumBy(kids, func(k tree.Tree[Block]) int { return k.Value.Size })

	return tree.New(Block{Size: total, Label: label, Prefix: prefix}, kids...)
}

// Total returns the number of allocated sites.
func Total(st tree.Tree[Block]) int { return st.Value.Size }

// Start is a StartTree node: the offset of the block in the dense layout.
type Start struct {
	Start int
	Label int
}

// StartTree assigns every block its depth-first offset.
func StartTree(st tree.Tree[Block]) tree.Tree[Start] {
	return startTree(st, 0)
}

func startTree(st tree.Tree[Block], start int) tree.Tree[Start] {
	out := tree.Tree[Start]{Value: Start{Start: start, Label: st.Value.Label}}
	off := start
	for _, c := range st.Children {
		out.Children = append(out.Children, startTree(c, off))
		off += c.Value.Size
	}

	return out
}
