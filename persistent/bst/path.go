package bst

import (
	"fmt"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node and the index of the child the path continues
// with (leftChild or rightChild). For the last slot of a successful search the index
// is meaningless.
type slot[T any] struct {
	node  *node[T]
	index int
}

func (s slot[T]) String() string {
	dir := "↙"
	if s.index == rightChild {
		dir = "↘"
	}
	return s.node.String() + dir
}

// cloneSeam creates a copy of the parent node of a slot, linked to a new child at the
// slot's index.
func cloneSeam[T any](parent slot[T], child *node[T]) *node[T] {
	p := parent.node
	if parent.index == leftChild {
		return mk(child, p.value, p.right)
	}
	return mk(p.left, p.value, child)
}

// --- Path ------------------------------------------------------------------

// slotPath is a path from the root of a tree down to a node.
type slotPath[T any] []slot[T]

func (path slotPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[T]) last() slot[T] {
	if len(path) == 0 {
		return slot[T]{}
	}
	return path[len(path)-1]
}

func (path slotPath[T]) dropLast() slotPath[T] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

// foldR rebuilds the spine of a tree bottom-up: starting with zero as the new bottom
// node, f creates a new parent for each slot, from the last slot up to the root.
// The result is the new root. For an empty path, zero is returned.
func (path slotPath[T]) foldR(f func(slot[T], *node[T]) *node[T], zero *node[T]) *node[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}
