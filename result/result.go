package result

/*
{-| A `Result` is the result of a computation that may fail, or may legitimately
have no answer at all.

# Type and Constructors
@docs Result, Success, Failure, Empty

# Mapping
@docs map, map2, lift

# Chaining
@docs flatMap

# Handling Errors
@docs getOrElse, orElse
-}
*/

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoSuchValue is reported by Get for an empty result.
var ErrNoSuchValue = errors.New("no such value")

// Result is a three-state container: Success carries a value, Failure carries an
// error and Empty carries nothing, which is not an error.
// Results are immutable and safe to share between goroutines.
type Result[T any] interface {
	Match() Matcher[T]
	ForEachOrElse(onSuccess func(T), onFailure func(error), onEmpty func())
	Get() (T, error)
	GetOrElse(T) T
	OrElse(func() Result[T]) Result[T]
	Map(func(T) T) Result[T]
	Filter(func(T) bool) Result[T]
	Exists(func(T) bool) bool
	IsSuccess() bool
	IsFailure() bool
	IsEmpty() bool
	Err() error
	String() string
}

type state uint8

const (
	empty state = iota
	success
	failure
)

type result[T any] struct {
	value T
	err   error
	state state
}

// Success wraps a value.
func Success[T any](x T) Result[T] {
	return &result[T]{value: x, state: success}
}

// Failure wraps an error. A nil error is replaced by a generic one, a failure
// always carries an error.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("failure without cause")
	}
	return &result[T]{err: err, state: failure}
}

// Failuref creates a failure from a message.
func Failuref[T any](format string, args ...interface{}) Result[T] {
	return &result[T]{err: errors.Errorf(format, args...), state: failure}
}

// Empty creates a result without a value.
func Empty[T any]() Result[T] {
	return &result[T]{state: empty}
}

// Of returns Success(x) if ok, Empty otherwise. It fits the two-valued returns
// of map lookups and type assertions.
func Of[T any](x T, ok bool) Result[T] {
	if ok {
		return Success(x)
	}
	return Empty[T]()
}

// FromPtr returns Empty for nil, Success(*p) otherwise.
func FromPtr[T any](p *T) Result[T] {
	if p == nil {
		return Empty[T]()
	}
	return Success(*p)
}

// Try calls f and wraps its return value. A panic inside f is converted into a Failure.
func Try[T any](f func() T) (r Result[T]) {
	defer catch(&r)
	return Success(f())
}

func catch[T any](r *Result[T]) {
	if p := recover(); p != nil {
		if err, ok := p.(error); ok {
			*r = Failure[T](errors.WithStack(err))
			return
		}
		*r = Failuref[T]("panic: %v", p)
	}
}

// --- Methods ---------------------------------------------------------------

func (r *result[T]) ForEachOrElse(onSuccess func(T), onFailure func(error), onEmpty func()) {
	switch r.state {
	case success:
		if onSuccess != nil {
			onSuccess(r.value)
		}
	case failure:
		if onFailure != nil {
			onFailure(r.err)
		}
	default:
		if onEmpty != nil {
			onEmpty()
		}
	}
}

// Get returns the value of a success. Otherwise it returns the failure's error or,
// for an empty result, an error wrapping ErrNoSuchValue.
func (r *result[T]) Get() (T, error) {
	switch r.state {
	case success:
		return r.value, nil
	case failure:
		var none T
		return none, r.err
	}
	var none T
	return none, ErrNoSuchValue
}

func (r *result[T]) GetOrElse(def T) T {
	if r.state == success {
		return r.value
	}
	return def
}

// OrElse returns r if it is a success, and calls alt otherwise (for failures as well as
// for empty results).
func (r *result[T]) OrElse(alt func() Result[T]) (res Result[T]) {
	if r.state == success {
		return r
	}
	defer catch(&res)
	return alt()
}

func (r *result[T]) Map(f func(T) T) Result[T] {
	return Map[T, T](r, f)
}

// Filter turns a success not satisfying p into a failure.
func (r *result[T]) Filter(p func(T) bool) Result[T] {
	return FlatMap[T, T](r, func(x T) Result[T] {
		if p(x) {
			return r
		}
		return Failuref[T]("condition not matched for %v", x)
	})
}

func (r *result[T]) Exists(p func(T) bool) bool {
	return Map[T, bool](r, p).GetOrElse(false)
}

func (r *result[T]) IsSuccess() bool { return r.state == success }
func (r *result[T]) IsFailure() bool { return r.state == failure }
func (r *result[T]) IsEmpty() bool   { return r.state == empty }

// Err returns the error of a failure, nil otherwise.
func (r *result[T]) Err() error {
	return r.err
}

func (r *result[T]) String() string {
	switch r.state {
	case success:
		return fmt.Sprintf("Success(%v)", r.value)
	case failure:
		return fmt.Sprintf("Failure(%s)", r.err.Error())
	}
	return "Empty"
}

// --- Functions -------------------------------------------------------------

// Map applies f to the value of a success. Failures and empty results pass through.
// A panic in f results in a failure.
func Map[T, U any](r Result[T], f func(T) U) (res Result[U]) {
	var v T
	var err error
	switch m := r.Match(); m {
	case m.Success(&v):
		defer catch(&res)
		return Success(f(v))
	case m.Failure(&err):
		return Failure[U](err)
	}
	return Empty[U]()
}

// FlatMap applies f to the value of a success and returns f's result.
// A panic in f results in a failure.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) (res Result[U]) {
	var v T
	var err error
	switch m := r.Match(); m {
	case m.Success(&v):
		defer catch(&res)
		return f(v)
	case m.Failure(&err):
		return Failure[U](err)
	}
	return Empty[U]()
}

// Lift turns a function on values into a function on results.
func Lift[T, U any](f func(T) U) func(Result[T]) Result[U] {
	return func(r Result[T]) Result[U] {
		return Map(r, f)
	}
}

// Map2 combines two results with f, if both are successes.
func Map2[A, B, C any](a Result[A], b Result[B], f func(A, B) C) Result[C] {
	return FlatMap(a, func(x A) Result[C] {
		return Map(b, func(y B) C {
			return f(x, y)
		})
	})
}

// --- Matching --------------------------------------------------------------

// Matcher supports switching over the state of a result:
//
//	switch m := r.Match(); m {
//	case m.Success(&v):
//	case m.Failure(&err):
//	case m.Empty():
//	}
type Matcher[T any] interface {
	Success(*T) Matcher[T]
	Failure(*error) Matcher[T]
	Empty() Matcher[T]
}

type matcher[T any] struct {
	r *result[T]
}

func (r *result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (rm *matcher[T]) Success(v *T) Matcher[T] {
	if rm.r.state == success {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm *matcher[T]) Failure(err *error) Matcher[T] {
	if rm.r.state == failure {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}

func (rm *matcher[T]) Empty() Matcher[T] {
	if rm.r.state == empty {
		return rm
	}
	return nil
}
