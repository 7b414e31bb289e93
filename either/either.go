package either

import (
	"fmt"
)

// Clients should be able to define a sum type:
//
// Haskell:
//
//     type Either a b = Left a | Right b
//
// Stand-in in Go: an interface with a private implementation, matched with
//
//     switch m := e.Match(); m {
//     case m.Left(&l):
//     case m.Right(&r):
//     }
//
// By convention Left holds the error case and Right holds the “right” value.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	String() string
}

type either[L, R any] struct {
	discr bool // true for Right
	left  L
	right R
}

func Left[L, R any](l L) Either[L, R] {
	return &either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return &either[L, R]{discr: true, right: r}
}

func (e *either[L, R]) IsLeft() bool {
	return !e.discr
}

func (e *either[L, R]) String() string {
	if e.discr {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold collapses e into a single value.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return onLeft(l)
	case m.Right(&r):
	}
	return onRight(r)
}

// MapRight applies f to a Right value; a Left passes through.
func MapRight[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	return Fold(e, Left[L, S], func(r R) Either[L, S] {
		return Right[L](f(r))
	})
}

// --- Matching --------------------------------------------------------------

type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e *either[L, R]
}

func (e *either[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: e}
}

func (em *matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !em.e.discr {
		if l != nil {
			*l = em.e.left
		}
		return em
	}
	return nil
}

func (em *matcher[L, R]) Right(r *R) Matcher[L, R] {
	if em.e.discr {
		if r != nil {
			*r = em.e.right
		}
		return em
	}
	return nil
}
