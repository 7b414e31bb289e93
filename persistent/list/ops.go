package list

import (
	"github.com/npillmayer/fpds"
	"github.com/npillmayer/fpds/either"
	"github.com/npillmayer/fpds/maybe"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// --- Folds -----------------------------------------------------------------

// FoldLeft folds the values of l from left to right, starting with seed.
func FoldLeft[T, B any](l List[T], seed B, f func(B, T) B) B {
	acc := seed
	for c := l.first; c != nil; c = c.tail {
		acc = f(acc, c.head)
	}
	return acc
}

// FoldLeftUntil is a left fold which stops as soon as the accumulator equals sentinel,
// returning it immediately (this is checked before each step, including the first one).
//
// Early termination is only correct if sentinel cannot occur as a genuine intermediate
// result of f. Clients have to make sure of that, FoldLeftUntil cannot.
// Nothing in this package folds with a sentinel.
func FoldLeftUntil[T any, B comparable](l List[T], seed, sentinel B, f func(B, T) B) B {
	acc := seed
	for c := l.first; c != nil; c = c.tail {
		if acc == sentinel {
			return acc
		}
		acc = f(acc, c.head)
	}
	return acc
}

// FoldRight folds the values of l from right to left. It recurses once per value of l.
// For long lists prefer CoFoldRight.
func FoldRight[T, B any](l List[T], seed B, f func(T, B) B) B {
	return foldRight(l.first, seed, f)
}

func foldRight[T, B any](c *cell[T], seed B, f func(T, B) B) B {
	if c == nil {
		return seed
	}
	return f(c.head, foldRight(c.tail, seed, f))
}

// CoFoldRight computes the same as FoldRight, by reversing l and folding left.
// It does not grow the stack.
func CoFoldRight[T, B any](l List[T], seed B, f func(T, B) B) B {
	return FoldLeft(l.Reverse(), seed, func(acc B, v T) B {
		return f(v, acc)
	})
}

// --- Transformations -------------------------------------------------------

// Map applies f to every value of l, preserving order.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	return FoldLeft(l, List[U]{}, func(acc List[U], v T) List[U] {
		return acc.Cons(f(v))
	}).Reverse()
}

// FlatMap maps every value of l to a list and concatenates the results.
func FlatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	return Flatten(Map(l, f))
}

// Flatten concatenates a list of lists. The last list of ll is shared by the result.
func Flatten[T any](ll List[List[T]]) List[T] {
	return CoFoldRight(ll, List[T]{}, func(l List[T], acc List[T]) List[T] {
		return l.Concat(acc)
	})
}

// ZipWith combines the values of two lists pairwise. The longer list is truncated.
func ZipWith[A, B, C any](a List[A], b List[B], f func(A, B) C) List[C] {
	acc := List[C]{}
	ca, cb := a.first, b.first
	for ca != nil && cb != nil {
		acc = acc.Cons(f(ca.head, cb.head))
		ca, cb = ca.tail, cb.tail
	}
	return acc.Reverse()
}

// Unzip splits a list of pairs into a pair of lists.
func Unzip[A, B any](l List[fpds.Pair[A, B]]) fpds.Pair[List[A], List[B]] {
	return CoFoldRight(l, fpds.Pair[List[A], List[B]]{},
		func(p fpds.Pair[A, B], acc fpds.Pair[List[A], List[B]]) fpds.Pair[List[A], List[B]] {
			return fpds.P(acc.Left.Cons(p.Left), acc.Right.Cons(p.Right))
		})
}

// Product combines every value of a with every value of b.
//
//	Product(Of(1, 2), Of(10, 20), add)   // [11, 21, 12, 22, NIL]
func Product[A, B, C any](a List[A], b List[B], f func(A, B) C) List[C] {
	return FlatMap(a, func(x A) List[C] {
		return Map(b, func(y B) C {
			return f(x, y)
		})
	})
}

// --- Aggregates ------------------------------------------------------------

// Number is a type constraint for Sum.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up the values of l.
func Sum[T Number](l List[T]) T {
	return FoldLeft(l, T(0), func(acc T, v T) T { return acc + v })
}

// Max returns the largest value of l as Right, or Left with an error wrapping
// ErrEmptyContainer if l is empty.
func Max[T constraints.Ordered](l List[T]) either.Either[error, T] {
	if l.IsEmpty() {
		return either.Left[error, T](errors.Wrap(ErrEmptyContainer, "max called on an empty list"))
	}
	m := FoldLeft(l.Tail(), l.Head(), func(x, y T) T {
		if x >= y {
			return x
		}
		return y
	})
	return either.Right[error](m)
}

// Sequence turns a list of optional values into an optional list, which is present
// only if every value of l is present.
func Sequence[T any](l List[maybe.Maybe[T]]) maybe.Maybe[List[T]] {
	return Traverse(l, func(m maybe.Maybe[T]) maybe.Maybe[T] { return m })
}

// Traverse maps every value of l with f and collects the results, if f succeeds for
// all of them.
func Traverse[T, U any](l List[T], f func(T) maybe.Maybe[U]) maybe.Maybe[List[U]] {
	return CoFoldRight(l, maybe.Just(List[U]{}), func(v T, acc maybe.Maybe[List[U]]) maybe.Maybe[List[U]] {
		return maybe.Map2(func(u U, rest List[U]) List[U] {
			return rest.Cons(u)
		}, f(v), acc)
	})
}
