/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or is empty (Nothing). Clients
access the value by pattern matching:

    var c color.RGBA
    switch m := prop.Color().Match(); m {
    case m.Just(&c):
        …
    case m.Nothing():
        …
    }

Matching with a switch statement compares matchers, therefore T must be a
comparable type for this idiom. For other types use Get or WithDefault.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Get() (T, bool)
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Get returns the value and true, or the zero value of T and false for Nothing.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a computation which may fail onto a Maybe.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if present.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return x
}

// OneOf returns the first Maybe of a list which is not Nothing.
func OneOf[T any](ms ...Maybe[T]) Maybe[T] {
	for _, m := range ms {
		if m != nil && !m.IsNothing() {
			return m
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used for pattern matching a Maybe within a switch statement.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
