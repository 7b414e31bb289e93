package bst

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Print renders a tree for debugging, with every node showing value, size and height:
//
//	Tree(size=3 height=1)
//	⟨2|3|1⟩
//	├── ⟨1|1|0⟩
//	└── ⟨3|1|0⟩
//
// Empty sub-trees of a node with a single child are shown as E.
func (tree Tree[T]) Print() string {
	header := fmt.Sprintf("Tree(size=%d height=%d)\n", tree.Size(), tree.Height())
	if tree.root == nil {
		return header + "E\n"
	}
	p := tp.NewWithRoot(tree.root.String())
	ppt(p, tree.root)
	return header + p.String()
}

func ppt[T any](p tp.Tree, n *node[T]) {
	if n.left == nil && n.right == nil {
		return
	}
	for _, ch := range []*node[T]{n.left, n.right} {
		if ch == nil {
			p.AddNode("E")
			continue
		}
		if ch.left == nil && ch.right == nil {
			p.AddNode(ch.String())
			continue
		}
		ppt(p.AddBranch(ch.String()), ch)
	}
}
