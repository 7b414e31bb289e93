package bst

import (
	"github.com/npillmayer/fpds"
	"github.com/npillmayer/fpds/persistent/list"
	"github.com/npillmayer/fpds/result"
)

// Balance returns a balanced copy of tree, holding the same values.
//
// The tree is flattened into its ascending values, re-assembled as a left-leaning chain
// and then balanced top-down by rotations. The result has height ⌊log₂(size)⌋.
func (tree Tree[T]) Balance() Tree[T] {
	if tree.root == nil {
		return tree
	}
	return tree.withRoot(rebuild(tree.root))
}

// Balance is the function variant of tree.Balance().
func Balance[T any](tree Tree[T]) Tree[T] {
	return tree.Balance()
}

func rebuild[T any](root *node[T]) *node[T] {
	asc := unbalanceRight(list.List[T]{}, root).Reverse()
	skeleton := list.FoldLeft(asc, (*node[T])(nil), func(acc *node[T], v T) *node[T] {
		return mk(acc, v, nil)
	})
	b := balanced(skeleton)
	tracer().Debugf("bst.Balance: rebuilt tree of size %d, height %d → %d",
		root.size, root.height, b.height)
	return b
}

// unbalanceRight walks t in order by rotating right until there is no left child left,
// then emits the root and continues with the right child. Values are consed onto acc in
// ascending order, the resulting list therefore is descending.
func unbalanceRight[T any](acc list.List[T], t *node[T]) list.List[T] {
	for t != nil {
		if t.left != nil {
			t = rotateRight(t)
			continue
		}
		acc = acc.Cons(t.value)
		t = t.right
	}
	return acc
}

// balanced accepts a sub-tree which is as low as its size permits. Otherwise the
// sub-tree is rotated until its children have (nearly) equal height, and the children
// are balanced in turn.
func balanced[T any](t *node[T]) *node[T] {
	if t == nil || t.height <= log2(t.size) {
		return t
	}
	rotations := 0
	t = fpds.Unfold(t, func(n *node[T]) result.Result[*node[T]] {
		r := rotateStep(n)
		if r.IsSuccess() {
			rotations++
		}
		return r
	})
	if rotations > 0 {
		tracer().Debugf("bst.balanced: %d rotations for sub-tree of size %d", rotations, t.size)
	}
	return mk(balanced(t.left), t.value, balanced(t.right))
}

// rotateStep rotates t towards its lower child. It is empty if t is not unbalanced or
// if the rotation would not make the heights of the children any closer.
func rotateStep[T any](t *node[T]) result.Result[*node[T]] {
	if !isUnbalanced(t) {
		return result.Empty[*node[T]]()
	}
	var cow *node[T]
	if heightOf(t.right) > heightOf(t.left) {
		cow = rotateLeft(t)
	} else {
		cow = rotateRight(t)
	}
	if imbalance(cow) >= imbalance(t) {
		return result.Empty[*node[T]]()
	}
	return result.Success(cow)
}

// isUnbalanced is true if the heights of the children of t differ by more than the
// size of t permits: an odd number of children may be split evenly, an even number
// leaves one child with an extra value.
func isUnbalanced[T any](t *node[T]) bool {
	return t != nil && imbalance(t) > (t.size-1)%2
}

func imbalance[T any](t *node[T]) int {
	d := heightOf(t.left) - heightOf(t.right)
	if d < 0 {
		return -d
	}
	return d
}
