package opt

import (
	"github.com/ib-77/maybe/pkg/maybe"
)

// Map transforms the Some value with f; None passes through and f is not
// invoked.
func Map[In, Out any](o maybe.Option[In], f func(In) Out) maybe.Option[Out] {
	if o.IsSome() {
		return maybe.Some(f(o.Value()))
	}
	return maybe.None[Out]()
}

// Then binds f on the Some branch and returns its Option directly, so nested
// options never build up. None passes through and f is not invoked.
func Then[In, Out any](o maybe.Option[In], f func(In) maybe.Option[Out]) maybe.Option[Out] {
	if o.IsSome() {
		return f(o.Value())
	}
	return maybe.None[Out]()
}

// Zip pairs two Somes. The first None wins, a side checked before b.
func Zip[A, B any](a maybe.Option[A], b maybe.Option[B]) maybe.Option[maybe.Pair[A, B]] {
	if a.IsNone() {
		return maybe.None[maybe.Pair[A, B]]()
	}
	if b.IsNone() {
		return maybe.None[maybe.Pair[A, B]]()
	}
	return maybe.Some(maybe.Pair[A, B]{First: a.Value(), Second: b.Value()})
}

// Flatten collapses one nesting level. Deeper nests flatten by repeated
// application; a non-nested option is already flat and cannot be passed here.
func Flatten[T any](o maybe.Option[maybe.Option[T]]) maybe.Option[T] {
	if o.IsSome() {
		return o.Value()
	}
	return maybe.None[T]()
}

// Match dispatches to exactly one handler and returns its value.
func Match[T, Out any](o maybe.Option[T], some func(T) Out, none func() Out) Out {
	if o.IsSome() {
		return some(o.Value())
	}
	return none()
}

// Sequence views the option as a slice of zero or one element: Some(v)
// becomes Some([v]) and None becomes Some of an empty slice, never None.
func Sequence[T any](o maybe.Option[T]) maybe.Option[[]T] {
	if o.IsSome() {
		return maybe.Some([]T{o.Value()})
	}
	return maybe.Some([]T{})
}

// SequenceSlice is Sequence for an option that already holds a slice; the
// slice passes through as-is.
func SequenceSlice[T any](o maybe.Option[[]T]) maybe.Option[[]T] {
	if o.IsSome() {
		return o
	}
	return maybe.Some([]T{})
}

// ToResult converts to the Result family: Ok(value) on Some, Err(err) on
// None. The error is supplied by the caller, not derived from the absence.
func ToResult[T any](o maybe.Option[T], err error) maybe.Result[T] {
	if o.IsSome() {
		return maybe.Ok(o.Value())
	}
	return maybe.Err[T](err)
}

// Collect gathers the values of all options; the first None short-circuits
// to None.
func Collect[T any](os []maybe.Option[T]) maybe.Option[[]T] {
	vals := make([]T, 0, len(os))
	for _, o := range os {
		if o.IsNone() {
			return maybe.None[[]T]()
		}
		vals = append(vals, o.Value())
	}
	return maybe.Some(vals)
}

// AttemptTee is maybe.Attempt with an error observer: onError sees the error
// before it is discarded. Classification is unaffected.
func AttemptTee[T any](fn func() (T, error), onError func(error)) maybe.Option[T] {
	v, err := fn()
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return maybe.None[T]()
	}
	return maybe.Some(v)
}
