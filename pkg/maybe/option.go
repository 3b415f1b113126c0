package maybe

import "reflect"

// Option holds zero or one value of type T. The zero value is None, so an
// Option can be embedded or declared without a constructor.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// From returns Some(v) unless v is nil (typed or untyped), in which case it
// returns None.
func From[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk adapts Go's comma-ok idiom (map lookups, type assertions).
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Attempt runs fn and wraps its value in Some. A non-nil error yields None;
// the error itself is discarded. Callers that need the error should use the
// Result family or opt.AttemptTee.
func Attempt[T any](fn func() (T, error)) Option[T] {
	v, err := fn()
	if err != nil {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value returns the held value, or T's zero value on None.
func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the held value and panics on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("maybe: Unwrap of None option")
	}
	return o.value
}

// Contains reports whether the option is Some of a value equal to v.
func (o Option[T]) Contains(v T) bool {
	return o.some && reflect.DeepEqual(o.value, v)
}

// Filter keeps Some only while pred holds; None stays None and pred is not
// invoked.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// OrElse returns the option itself if Some, otherwise the option produced by
// fn.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Tap invokes fn with the value on Some for its side effect and returns the
// option unchanged either way.
func (o Option[T]) Tap(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

func (Option[T]) isOption() {}

var _ WithPresence[int] = Option[int]{}
