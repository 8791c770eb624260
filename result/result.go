/*
Package result implements a type for the result of a computation that may fail.

Results are used where a function returns several outcomes at once, e.g. when
fetching a list of resources concurrently: every resource gets its own result,
holding either the value or the error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

import "github.com/npillmayer/dragonfly/maybe"

// Result is either Ok(value) or Err(error).
//
// Matching with a switch statement compares matchers, therefore T must be a
// comparable type for this idiom. For other types (e.g., []byte) use Get.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsOk() bool
	WithDefault(T) T
	ToMaybe() maybe.Maybe[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok creates a successful result.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err creates a failed result. err should be non-nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// From creates a result from a Go-style (value, error) pair.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

func (r result[T]) ToMaybe() maybe.Maybe[T] {
	if r.err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(r.value)
}

// AndThen chains a computation which may fail onto a result.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// --- Matching --------------------------------------------------------------

// Matcher is used for pattern matching a Result within a switch statement.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
