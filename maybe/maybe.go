package maybe

/*
module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault, oneOf)

{-| A `Maybe` is an optional value. Lookups which may not find anything return one.

# Definition
@docs Maybe

# Common Helpers
@docs map, withDefault, orElse, filter

# Chaining Maybes
@docs andThen, map2

-}
*/

type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	OrElse(func() Maybe[T]) Maybe[T]
	Filter(func(T) bool) Maybe[T]
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

func Just[T any](x T) Maybe[T] {
	return &maybe[T]{value: x, tag: true}
}

func Nothing[T any]() Maybe[T] {
	return &maybe[T]{tag: false}
}

// FromPtr returns Nothing for nil and Just(*p) otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

func (m *maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m *maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m *maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m *maybe[T]) OrElse(alt func() Maybe[T]) Maybe[T] {
	if m.tag {
		return m
	}
	return alt()
}

func (m *maybe[T]) Filter(p func(T) bool) Maybe[T] {
	if m.tag && p(m.value) {
		return m
	}
	return Nothing[T]()
}

func (m *maybe[T]) IsNothing() bool {
	return !m.tag
}

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map2 combines two values with f, if both are present.
func Map2[A, B, C any](f func(A, B) C, a Maybe[A], b Maybe[B]) Maybe[C] {
	return AndThen(func(x A) Maybe[C] {
		return Map(func(y B) C { return f(x, y) }, b)
	}, a)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m *maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
