package async

import (
	"github.com/ib-77/maybe/pkg/maybe"
	"github.com/ib-77/maybe/pkg/maybe/future"
	"github.com/ib-77/maybe/pkg/maybe/opt"
)

// Option wraps a deferred computation resolving to a maybe.Option[T]. The
// handle is private and set only at construction; nothing can replace or
// re-resolve it afterwards.
type Option[T any] struct {
	d *future.Deferred[maybe.Option[T]]
}

func Some[T any](v T) *Option[T] {
	return &Option[T]{d: future.Resolved(maybe.Some(v))}
}

// SomeDeferred becomes Some of the deferred's value once it resolves.
func SomeDeferred[T any](d *future.Deferred[T]) *Option[T] {
	return &Option[T]{d: future.Map(d, maybe.Some[T])}
}

func None[T any]() *Option[T] {
	return &Option[T]{d: future.Resolved(maybe.None[T]())}
}

// OptionFrom resolves to Some(v) unless v is nil, in which case None.
func OptionFrom[T any](v T) *Option[T] {
	return Lift(maybe.From(v))
}

// OptionFromDeferred applies the same nil rule after the source resolves.
func OptionFromDeferred[T any](d *future.Deferred[T]) *Option[T] {
	return &Option[T]{d: future.Map(d, maybe.From[T])}
}

// OptionGo runs the fallible thunk in its own goroutine: Some on success,
// None on a non-nil error. This is the only Option constructor that
// contains errors.
func OptionGo[T any](fn func() (T, error)) *Option[T] {
	return &Option[T]{d: future.Go(func() maybe.Option[T] {
		return maybe.Attempt(fn)
	})}
}

// Lift wraps an already-resolved synchronous option.
func Lift[T any](o maybe.Option[T]) *Option[T] {
	return &Option[T]{d: future.Resolved(o)}
}

// AdoptOption wraps an externally supplied deferred option unchanged.
func AdoptOption[T any](d *future.Deferred[maybe.Option[T]]) *Option[T] {
	return &Option[T]{d: d}
}

// Await resolves the underlying deferred and returns the synchronous option.
func (o *Option[T]) Await() maybe.Option[T] {
	return o.d.Await()
}

func (o *Option[T]) IsSome() bool {
	return o.d.Await().IsSome()
}

func (o *Option[T]) IsNone() bool {
	return o.d.Await().IsNone()
}

func (o *Option[T]) Contains(v T) bool {
	return o.d.Await().Contains(v)
}

func (o *Option[T]) UnwrapOr(def T) T {
	return o.d.Await().UnwrapOr(def)
}

func (o *Option[T]) UnwrapOrElse(fn func() T) T {
	return o.d.Await().UnwrapOrElse(fn)
}

func (o *Option[T]) Filter(pred func(T) bool) *Option[T] {
	return &Option[T]{d: future.Map(o.d, func(in maybe.Option[T]) maybe.Option[T] {
		return in.Filter(pred)
	})}
}

func (o *Option[T]) Tap(fn func(T)) *Option[T] {
	return &Option[T]{d: future.Map(o.d, func(in maybe.Option[T]) maybe.Option[T] {
		return in.Tap(fn)
	})}
}

// OrElse keeps a Some resolution; on None it evaluates fn, accepting either
// sibling, and resolves to that option.
func (o *Option[T]) OrElse(fn func() OptionArg[T]) *Option[T] {
	return &Option[T]{d: future.New(func() maybe.Option[T] {
		in := o.d.Await()
		if in.IsSome() {
			return in
		}
		return fn().await()
	})}
}

// ToResult converts across the deferred boundary: Ok(value) on Some,
// Err(err) on None.
func (o *Option[T]) ToResult(err error) *Result[T] {
	return &Result[T]{d: future.Map(o.d, func(in maybe.Option[T]) maybe.Result[T] {
		return opt.ToResult(in, err)
	})}
}

func (*Option[T]) isOptionAsync() {}

// MapOption transforms the Some value once resolved; None passes through.
func MapOption[In, Out any](o *Option[In], f func(In) Out) *Option[Out] {
	return &Option[Out]{d: future.Map(o.d, func(in maybe.Option[In]) maybe.Option[Out] {
		return opt.Map(in, f)
	})}
}

// ThenOption binds f on the Some branch; f may hand back either sibling.
// None passes through and f is not invoked.
func ThenOption[In, Out any](o *Option[In], f func(In) OptionArg[Out]) *Option[Out] {
	return &Option[Out]{d: future.New(func() maybe.Option[Out] {
		in := o.d.Await()
		if in.IsNone() {
			return maybe.None[Out]()
		}
		return f(in.Value()).await()
	})}
}

// ZipOption initiates both sides, jointly awaits them, then pairs two Somes
// with the first None winning, a side checked before b.
func ZipOption[A, B any](a *Option[A], b OptionArg[B]) *Option[maybe.Pair[A, B]] {
	both := future.Zip2(a.d, future.New(b.await))
	return &Option[maybe.Pair[A, B]]{d: future.Map(both,
		func(p maybe.Pair[maybe.Option[A], maybe.Option[B]]) maybe.Option[maybe.Pair[A, B]] {
			return opt.Zip(p.First, p.Second)
		})}
}

// MatchOption resolves the option and dispatches to exactly one handler.
func MatchOption[T, Out any](o *Option[T], some func(T) Out, none func() Out) Out {
	return opt.Match(o.d.Await(), some, none)
}

// SequenceOption resolves to the zero-or-one element slice view; None
// becomes Some of an empty slice, never None.
func SequenceOption[T any](o *Option[T]) *Option[[]T] {
	return &Option[[]T]{d: future.Map(o.d, opt.Sequence[T])}
}

// FlattenOption collapses a synchronous inner option.
func FlattenOption[T any](o *Option[maybe.Option[T]]) *Option[T] {
	return &Option[T]{d: future.Map(o.d, opt.Flatten[T])}
}

// FlattenOptionAsync collapses an asynchronous inner option, awaiting it
// after the outer resolves. A plain inner value is already flat and needs no
// flatten call.
func FlattenOptionAsync[T any](o *Option[*Option[T]]) *Option[T] {
	return &Option[T]{d: future.New(func() maybe.Option[T] {
		outer := o.d.Await()
		if outer.IsNone() || outer.Value() == nil {
			return maybe.None[T]()
		}
		return outer.Value().Await()
	})}
}
