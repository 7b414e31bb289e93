package bst

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used for variables holding fresh copies of nodes.

- Nodes are never modified after construction. A new incarnation of a tree always is
  reflected by a new tree.root.

- Size and height of a node are computed once, by its constructor `mk`.

*/

import (
	"strings"

	"github.com/npillmayer/fpds/maybe"
	"github.com/npillmayer/fpds/persistent/list"
	"github.com/npillmayer/fpds/result"
	"golang.org/x/exp/constraints"
)

// DefaultRebalanceFactor is the factor of the re-balancing threshold
// height > factor × ⌊log₂(size)⌋.
const DefaultRebalanceFactor = 100

// Tree is a persistent binary search tree. Values are ordered by the tree's comparison
// function. A zero Tree is a valid empty tree for all read operations, but it cannot
// insert values, as it lacks a comparison function. Use Immutable or ImmutableFunc
// to create trees.
type Tree[T any] struct {
	root    *node[T]
	compare func(a, b T) int
	settings
}

type settings struct {
	factor int
}

// Immutable creates an empty tree for an ordered type, with options if you need any.
// Use it like this:
//
//	tree := bst.Immutable[int](bst.RebalanceFactor(10))
//	tree = tree.Insert(42)
//	tree.Contains(42)   // true
func Immutable[T constraints.Ordered](opts ...Option) Tree[T] {
	return ImmutableFunc(compareOrdered[T], opts...)
}

// ImmutableFunc creates an empty tree ordering its values with compare, which has to
// return a negative number for a < b, 0 for a = b and a positive number for a > b.
//
// Inserting a value comparing equal to a value in the tree replaces the old one, which
// makes trees with a key-comparing function usable as ordered maps.
func ImmutableFunc[T any](compare func(a, b T) int, opts ...Option) Tree[T] {
	assertThat(compare != nil, "comparison function must not be nil")
	tree := Tree[T]{compare: compare, settings: settings{factor: DefaultRebalanceFactor}}
	for _, option := range opts {
		tree.settings = option(tree.settings)
	}
	return tree
}

// Of creates a tree from values, inserting them in the given order.
func Of[T constraints.Ordered](values ...T) Tree[T] {
	tree := Immutable[T]()
	for _, v := range values {
		tree = tree.Insert(v)
	}
	return tree
}

// Option is a type to help initializing trees at creation time.
type Option func(settings) settings

// RebalanceFactor sets the factor of the re-balancing threshold
//
//	height > factor × ⌊log₂(size)⌋
//
// checked after every insertion. Default is 100. Negative values are treated as 0,
// which re-balances after every insertion into a tree of two or more values.
func RebalanceFactor(n int) Option {
	return func(s settings) settings {
		s.factor = max(0, n)
		return s
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// --- API -------------------------------------------------------------------

// Size returns the number of values in the tree.
func (tree Tree[T]) Size() int {
	return sizeOf(tree.root)
}

// Height returns the height of the tree, where an empty tree has height -1 and a
// tree with a single node has height 0.
func (tree Tree[T]) Height() int {
	return heightOf(tree.root)
}

// IsEmpty is true for a tree without values.
func (tree Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Contains returns true if a value comparing equal to value is in the tree.
func (tree Tree[T]) Contains(value T) bool {
	found, _ := tree.locate(value, nil)
	return found
}

// Lookup returns the value in the tree which compares equal to value, if any.
func (tree Tree[T]) Lookup(value T) maybe.Maybe[T] {
	found, path := tree.locate(value, nil)
	if !found {
		return maybe.Nothing[T]()
	}
	return maybe.Just(path.last().node.value)
}

// Min returns the smallest value of the tree, or an empty result for an empty tree.
func (tree Tree[T]) Min() result.Result[T] {
	if tree.root == nil {
		return result.Empty[T]()
	}
	n := tree.root
	for n.left != nil {
		n = n.left
	}
	return result.Success(n.value)
}

// Max returns the largest value of the tree, or an empty result for an empty tree.
func (tree Tree[T]) Max() result.Result[T] {
	if tree.root == nil {
		return result.Empty[T]()
	}
	n := tree.root
	for n.right != nil {
		n = n.right
	}
	return result.Success(n.value)
}

// Insert returns a copy of the tree with value inserted. If a value comparing equal is
// already present, it will be replaced (in a new incarnation of the tree, nevertheless).
//
// After insertion the re-balancing threshold is checked and the tree possibly
// rebuilt, see Balance.
func (tree Tree[T]) Insert(value T) Tree[T] {
	assertThat(tree.compare != nil, "insert into a tree without comparison function; use bst.Immutable")
	found, path := tree.locate(value, make(slotPath[T], 0, tree.Height()+1))
	var newRoot *node[T]
	if found {
		hit := path.last()
		cow := mk(hit.node.left, value, hit.node.right) // replace occupant
		newRoot = path.dropLast().foldR(cloneSeam[T], cow)
	} else {
		newRoot = path.foldR(cloneSeam[T], mk(nil, value, nil))
	}
	t := tree.withRoot(newRoot)
	if t.exceedsThreshold() {
		tracer().Debugf("bst.Insert: height %d exceeds threshold for size %d, re-balancing",
			t.Height(), t.Size())
		return t.Balance()
	}
	return t
}

// Remove returns a copy of the tree with value removed. If value is not found, the
// tree is returned unchanged. Remove does not re-balance.
func (tree Tree[T]) Remove(value T) Tree[T] {
	found, path := tree.locate(value, make(slotPath[T], 0, tree.Height()+1))
	if !found {
		return tree // no need for modification
	}
	del := path.last()
	merged := removeMerge(del.node.left, del.node.right, tree.compare)
	return tree.withRoot(path.dropLast().foldR(cloneSeam[T], merged))
}

// RemoveMerge recombines the tree with other, placing other by descending the tree
// along the root value of other. It is meant for trees where all values of other lie
// between two neighbouring values of the tree (or beyond its minimum or maximum), like
// the two children of a removed node. For arbitrary trees use Merge.
// RemoveMerge does not re-balance.
func (tree Tree[T]) RemoveMerge(other Tree[T]) Tree[T] {
	tree = tree.adoptSettings(other)
	if tree.compare == nil { // both trees are zero trees
		return tree
	}
	return tree.withRoot(removeMerge(tree.root, other.root, tree.compare))
}

// Merge returns a tree holding the values of both the tree and other. There are no
// preconditions concerning the relative order of the values of the two trees. For
// values present in both trees, the value of the receiver is kept. Merge does not
// re-balance.
func (tree Tree[T]) Merge(other Tree[T]) Tree[T] {
	tree = tree.adoptSettings(other)
	if tree.compare == nil {
		return tree
	}
	tracer().Debugf("bst.Merge: size %d with size %d", tree.Size(), other.Size())
	return tree.withRoot(merge(tree.root, other.root, tree.compare))
}

// ToAscendingList returns the values of the tree as a list, in ascending order.
func (tree Tree[T]) ToAscendingList() list.List[T] {
	return unbalanceRight(list.List[T]{}, tree.root).Reverse()
}

// String renders a tree as "(T (T E 1 E) 2 E)", where E denotes an empty sub-tree.
// This is a debugging aid, not a serialization format.
func (tree Tree[T]) String() string {
	var sb strings.Builder
	writeNode(&sb, tree.root)
	return sb.String()
}

// --- Helpers ---------------------------------------------------------------

func (tree Tree[T]) withRoot(root *node[T]) Tree[T] {
	return Tree[T]{root: root, compare: tree.compare, settings: tree.settings}
}

// adoptSettings lets a zero tree take over comparison function and settings of other.
func (tree Tree[T]) adoptSettings(other Tree[T]) Tree[T] {
	if tree.compare == nil {
		tree.compare, tree.settings = other.compare, other.settings
	}
	return tree
}

func (tree Tree[T]) exceedsThreshold() bool {
	return tree.Height() > tree.factor*log2(tree.Size())
}

func (tree Tree[T]) locate(value T, pathBuf slotPath[T]) (found bool, path slotPath[T]) {
	path = pathBuf[:0] // we track the path to the value's node
	if tree.compare == nil {
		return
	}
	n := tree.root
	for n != nil {
		c := tree.compare(value, n.value)
		if c == 0 {
			path = append(path, slot[T]{node: n})
			return true, path
		}
		index := leftChild
		if c > 0 {
			index = rightChild
		}
		path = append(path, slot[T]{node: n, index: index})
		n = n.child(index)
	}
	return false, path
}
