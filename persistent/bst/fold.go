package bst

import "github.com/npillmayer/fpds/persistent/list"

// FoldLeft folds a tree bottom-up. For every node, f combines the fold of the left
// sub-tree with the node's value, and g combines the fold of the right sub-tree with
// that:
//
//	g(fold(right), f(fold(left), value))
//
// Empty sub-trees fold to seed.
func FoldLeft[T, B any](tree Tree[T], seed B, f func(B, T) B, g func(B, B) B) B {
	return foldLeft(tree.root, seed, f, g)
}

func foldLeft[T, B any](n *node[T], seed B, f func(B, T) B, g func(B, B) B) B {
	if n == nil {
		return seed
	}
	l := foldLeft(n.left, seed, f, g)
	r := foldLeft(n.right, seed, f, g)
	return g(r, f(l, n.value))
}

// FoldInOrder folds a tree with f(left, value, right).
func FoldInOrder[T, B any](tree Tree[T], seed B, f func(B, T, B) B) B {
	return foldNodes(tree.root, seed, func(l B, v T, r B) B { return f(l, v, r) })
}

// FoldPreOrder folds a tree with f(value, left, right).
func FoldPreOrder[T, B any](tree Tree[T], seed B, f func(T, B, B) B) B {
	return foldNodes(tree.root, seed, func(l B, v T, r B) B { return f(v, l, r) })
}

// FoldPostOrder folds a tree with f(left, right, value).
func FoldPostOrder[T, B any](tree Tree[T], seed B, f func(B, B, T) B) B {
	return foldNodes(tree.root, seed, func(l B, v T, r B) B { return f(l, r, v) })
}

// foldNodes always folds the left sub-tree before the right one.
func foldNodes[T, B any](n *node[T], seed B, f func(B, T, B) B) B {
	if n == nil {
		return seed
	}
	l := foldNodes(n.left, seed, f)
	r := foldNodes(n.right, seed, f)
	return f(l, n.value, r)
}

// ToInOrderList returns the values of tree in order, using FoldInOrder.
func ToInOrderList[T any](tree Tree[T]) list.List[T] {
	return FoldInOrder(tree, list.List[T]{}, func(l list.List[T], v T, r list.List[T]) list.List[T] {
		return l.Concat(r.Cons(v))
	})
}

// ToPreOrderList returns the values of tree in pre-order, using FoldPreOrder.
func ToPreOrderList[T any](tree Tree[T]) list.List[T] {
	return FoldPreOrder(tree, list.List[T]{}, func(v T, l list.List[T], r list.List[T]) list.List[T] {
		return l.Concat(r).Cons(v)
	})
}
