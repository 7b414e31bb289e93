/*
Package list implements an immutable persistent singly-linked list.

A list is either empty or a cell holding a value and sharing the rest of the list as its
tail. Consing onto a list never copies it: the same tail may be the suffix of any number of
lists at once. The zero value of List is a valid empty list, i.e. this is legal:

	l := list.List[int]{}.Cons(3).Cons(2).Cons(1)   // [1, 2, 3, NIL]

Lengths are cached at construction time, as cells never change after creation.

Operations changing the element type (Map, FlatMap, folds, …) are package-level functions,
as Go methods cannot introduce type parameters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

// ErrEmptyContainer is the cause of panics raised by operations which require a
// non-empty list.
var ErrEmptyContainer = errors.New("empty container")

// ErrIndexOutOfRange is reported for negative or too large list indices.
var ErrIndexOutOfRange = errors.New("index out of range")

func assertThat(that bool, cause error, msg string, msgargs ...interface{}) {
	if !that {
		panic(errors.Wrapf(cause, "list: "+msg, msgargs...))
	}
}
