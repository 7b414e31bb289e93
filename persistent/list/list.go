package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fpds"
	"github.com/npillmayer/fpds/result"
	"github.com/pkg/errors"
)

// List is a persistent list. An empty instance is usable as an empty list.
type List[T any] struct {
	first *cell[T]
}

// cell is a non-empty list. Cells are never modified after construction.
type cell[T any] struct {
	head   T
	tail   *cell[T]
	length int
}

// Empty returns an empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of creates a list holding values in the given order.
//
//	list.Of(1, 2, 3)   // [1, 2, 3, NIL]
func Of[T any](values ...T) List[T] {
	l := List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Cons(values[i])
	}
	return l
}

// --- API -------------------------------------------------------------------

// Cons returns a new list with an additional value in the front. l is shared as the tail.
func (l List[T]) Cons(value T) List[T] {
	return List[T]{first: &cell[T]{head: value, tail: l.first, length: l.Len() + 1}}
}

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.first == nil
}

// Len returns the number of values in l. Lengths are cached, this is O(1).
func (l List[T]) Len() int {
	if l.first == nil {
		return 0
	}
	return l.first.length
}

// LenComputed counts the values of l by folding over it, ignoring the cached length.
func (l List[T]) LenComputed() int {
	return FoldLeft(l, 0, func(n int, _ T) int { return n + 1 })
}

// Head returns the first value of l. Calling Head on an empty list is a programmer
// error and panics with an error wrapping ErrEmptyContainer.
func (l List[T]) Head() T {
	assertThat(!l.IsEmpty(), ErrEmptyContainer, "head called on an empty list")
	return l.first.head
}

// Tail returns l without its first value. Panics for an empty list.
func (l List[T]) Tail() List[T] {
	assertThat(!l.IsEmpty(), ErrEmptyContainer, "tail called on an empty list")
	return List[T]{first: l.first.tail}
}

// HeadSafe returns the first value of l, or an empty result for the empty list.
func (l List[T]) HeadSafe() result.Result[T] {
	if l.IsEmpty() {
		return result.Empty[T]()
	}
	return result.Success(l.first.head)
}

// LastSafe returns the last value of l, or an empty result for the empty list.
func (l List[T]) LastSafe() result.Result[T] {
	return FoldLeft(l, result.Empty[T](), func(_ result.Result[T], v T) result.Result[T] {
		return result.Success(v)
	})
}

// SetHead returns a list with the first value replaced. Panics for an empty list.
func (l List[T]) SetHead(value T) List[T] {
	assertThat(!l.IsEmpty(), ErrEmptyContainer, "setHead called on an empty list")
	return l.Tail().Cons(value)
}

// Init returns l without its last value. Panics for an empty list.
func (l List[T]) Init() List[T] {
	assertThat(!l.IsEmpty(), ErrEmptyContainer, "init called on an empty list")
	return l.Reverse().Drop(1).Reverse()
}

// Reverse returns the values of l in reverse order.
func (l List[T]) Reverse() List[T] {
	return FoldLeft(l, List[T]{}, func(acc List[T], v T) List[T] {
		return acc.Cons(v)
	})
}

// Concat returns l followed by other. The spine of l is copied, other is shared.
func (l List[T]) Concat(other List[T]) List[T] {
	if l.IsEmpty() {
		return other
	}
	return CoFoldRight(l, other, func(v T, acc List[T]) List[T] {
		return acc.Cons(v)
	})
}

// Drop returns l without its first n values. The result shares all cells with l.
func (l List[T]) Drop(n int) List[T] {
	c := l.first
	for ; n > 0 && c != nil; n-- {
		c = c.tail
	}
	return List[T]{first: c}
}

// DropWhile drops values from the front of l as long as p holds for them.
func (l List[T]) DropWhile(p func(T) bool) List[T] {
	c := l.first
	for c != nil && p(c.head) {
		c = c.tail
	}
	return List[T]{first: c}
}

// SplitAt returns the first index values of l as a new list, paired with the
// remainder. The remainder is shared with l. index is clamped to [0…Len].
func (l List[T]) SplitAt(index int) fpds.Pair[List[T], List[T]] {
	if index < 0 || index > l.Len() {
		tracer().Debugf("list.SplitAt: clamping index %d to [0…%d]", index, l.Len())
		index = max(0, min(index, l.Len()))
	}
	front := List[T]{}
	c := l.first
	for i := 0; i < index; i++ {
		front = front.Cons(c.head)
		c = c.tail
	}
	return fpds.P(front.Reverse(), List[T]{first: c})
}

// GetAt returns the value at position index. For indices outside of [0…Len-1] a
// failure wrapping ErrIndexOutOfRange is returned.
func (l List[T]) GetAt(index int) result.Result[T] {
	if index < 0 || index >= l.Len() {
		tracer().Debugf("list.GetAt: index %d out of range for length %d", index, l.Len())
		return result.Failure[T](errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, l.Len()))
	}
	return result.Success(l.Drop(index).first.head)
}

// Filter returns the values of l satisfying p, in order.
func (l List[T]) Filter(p func(T) bool) List[T] {
	return CoFoldRight(l, List[T]{}, func(v T, acc List[T]) List[T] {
		if p(v) {
			return acc.Cons(v)
		}
		return acc
	})
}

// Slice copies the values of l into a Go slice.
func (l List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for c := l.first; c != nil; c = c.tail {
		s = append(s, c.head)
	}
	return s
}

// String renders l as "[1, 2, 3, NIL]". This is a debugging aid, not a serialization format.
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	for c := l.first; c != nil; c = c.tail {
		sb.WriteString(fmt.Sprintf("%v, ", c.head))
	}
	sb.WriteString("NIL]")
	return sb.String()
}
