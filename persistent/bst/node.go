package bst

import (
	"fmt"
	"math/bits"
	"strings"
)

// node is a non-empty tree. A nil *node is the empty tree.
type node[T any] struct {
	left, right *node[T]
	value       T
	size        int
	height      int
}

const (
	leftChild  = 0
	rightChild = 1
)

// mk is the only constructor for nodes. It caches size and height, computed from the
// children.
func mk[T any](left *node[T], value T, right *node[T]) *node[T] {
	return &node[T]{
		left:   left,
		right:  right,
		value:  value,
		size:   1 + sizeOf(left) + sizeOf(right),
		height: 1 + max(heightOf(left), heightOf(right)),
	}
}

func sizeOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func heightOf[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[T]) child(index int) *node[T] {
	if index == leftChild {
		return n.left
	}
	return n.right
}

func (n *node[T]) String() string {
	if n == nil {
		return "E"
	}
	return fmt.Sprintf("⟨%v|%d|%d⟩", n.value, n.size, n.height)
}

// --- Rotations -------------------------------------------------------------

// rotateRight promotes the left child of n. If there is no left child, n is returned.
func rotateRight[T any](n *node[T]) *node[T] {
	if n == nil || n.left == nil {
		return n
	}
	l := n.left
	return mk(l.left, l.value, mk(l.right, n.value, n.right))
}

// rotateLeft promotes the right child of n. If there is no right child, n is returned.
func rotateLeft[T any](n *node[T]) *node[T] {
	if n == nil || n.right == nil {
		return n
	}
	r := n.right
	return mk(mk(n.left, n.value, r.left), r.value, r.right)
}

// --- Merging ---------------------------------------------------------------

// removeMerge places other into this, recursing on the side other's root falls on.
func removeMerge[T any](this, other *node[T], compare func(a, b T) int) *node[T] {
	switch {
	case this == nil:
		return other
	case other == nil:
		return this
	case compare(other.value, this.value) < 0:
		return mk(removeMerge(this.left, other, compare), this.value, this.right)
	}
	return mk(this.left, this.value, removeMerge(this.right, other, compare))
}

// merge combines two arbitrary trees. other's root is split off with its smaller or
// larger half, depending on where it falls relative to this' root, and both parts are
// merged separately.
func merge[T any](this, other *node[T], compare func(a, b T) int) *node[T] {
	if other == nil {
		return this
	}
	if this == nil {
		return other
	}
	c := compare(other.value, this.value)
	switch {
	case c > 0:
		cow := mk(this.left, this.value, merge(this.right, mk(nil, other.value, other.right), compare))
		return merge(cow, other.left, compare)
	case c < 0:
		cow := mk(merge(this.left, mk(other.left, other.value, nil), compare), this.value, this.right)
		return merge(cow, other.right, compare)
	}
	return mk(merge(this.left, other.left, compare), this.value, merge(this.right, other.right, compare))
}

// --- Helpers ---------------------------------------------------------------

// log2 returns ⌊log₂(n)⌋ for n > 0, and 0 otherwise.
func log2(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}

func writeNode[T any](sb *strings.Builder, n *node[T]) {
	if n == nil {
		sb.WriteString("E")
		return
	}
	sb.WriteString("(T ")
	writeNode(sb, n.left)
	sb.WriteString(fmt.Sprintf(" %v ", n.value))
	writeNode(sb, n.right)
	sb.WriteString(")")
}
