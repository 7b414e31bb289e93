/*
Package fpds is a small toolbox of functional helpers, shared by the persistent data
structures in sub-packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fpds

import "github.com/npillmayer/fpds/result"

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Unfold applies step to a, then to the outcome of step, and so on, until step
// reports that it has nothing more to contribute, i.e. returns a non-success result.
// The last successful value is returned; if the first step already fails, a is
// returned unchanged.
//
// Unfold loops, it does not recurse. step is responsible for converging.
func Unfold[T any](a T, step func(T) result.Result[T]) T {
	current := a
	for {
		next, err := step(current).Get()
		if err != nil {
			return current
		}
		current = next
	}
}
