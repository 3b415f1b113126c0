package async

import (
	"github.com/ib-77/maybe/pkg/maybe"
	"github.com/ib-77/maybe/pkg/maybe/future"
	"github.com/ib-77/maybe/pkg/maybe/res"
)

// Result wraps a deferred computation resolving to a maybe.Result[T]. As
// with Option, the handle is private and fixed at construction.
type Result[T any] struct {
	d *future.Deferred[maybe.Result[T]]
}

func Ok[T any](v T) *Result[T] {
	return &Result[T]{d: future.Resolved(maybe.Ok(v))}
}

// OkDeferred becomes Ok of the deferred's value once it resolves.
func OkDeferred[T any](d *future.Deferred[T]) *Result[T] {
	return &Result[T]{d: future.Map(d, maybe.Ok[T])}
}

func Err[T any](err error) *Result[T] {
	return &Result[T]{d: future.Resolved(maybe.Err[T](err))}
}

// ResultFrom resolves to Ok(v) unless v is nil, in which case Err(errIfNil).
func ResultFrom[T any](v T, errIfNil error) *Result[T] {
	return LiftResult(maybe.ResultFrom(v, errIfNil))
}

// ResultFromDeferred applies the same nil rule after the source resolves.
func ResultFromDeferred[T any](d *future.Deferred[T], errIfNil error) *Result[T] {
	return &Result[T]{d: future.Map(d, func(v T) maybe.Result[T] {
		return maybe.ResultFrom(v, errIfNil)
	})}
}

// ResultGo runs the fallible thunk in its own goroutine: Ok on success, Err
// on a non-nil error. With ResultGoWith, these are the only Result
// constructors that contain errors.
func ResultGo[T any](fn func() (T, error)) *Result[T] {
	return &Result[T]{d: future.Go(func() maybe.Result[T] {
		return maybe.Of(fn())
	})}
}

// ResultGoWith is ResultGo with a caller-supplied error mapping applied to
// the caught error before it becomes the Err value.
func ResultGoWith[T any](fn func() (T, error), onError func(error) error) *Result[T] {
	return &Result[T]{d: future.Go(func() maybe.Result[T] {
		v, err := fn()
		if err != nil {
			return maybe.Err[T](onError(err))
		}
		return maybe.Ok(v)
	})}
}

// LiftResult wraps an already-resolved synchronous result.
func LiftResult[T any](r maybe.Result[T]) *Result[T] {
	return &Result[T]{d: future.Resolved(r)}
}

// AdoptResult wraps an externally supplied deferred result unchanged.
func AdoptResult[T any](d *future.Deferred[maybe.Result[T]]) *Result[T] {
	return &Result[T]{d: d}
}

// Await resolves the underlying deferred and returns the synchronous result.
func (r *Result[T]) Await() maybe.Result[T] {
	return r.d.Await()
}

func (r *Result[T]) IsOk() bool {
	return r.d.Await().IsOk()
}

func (r *Result[T]) IsErr() bool {
	return r.d.Await().IsErr()
}

func (r *Result[T]) Contains(v T) bool {
	return r.d.Await().Contains(v)
}

func (r *Result[T]) UnwrapOr(def T) T {
	return r.d.Await().UnwrapOr(def)
}

func (r *Result[T]) UnwrapOrElse(fn func(error) T) T {
	return r.d.Await().UnwrapOrElse(fn)
}

func (r *Result[T]) Filter(pred func(T) bool, err error) *Result[T] {
	return &Result[T]{d: future.Map(r.d, func(in maybe.Result[T]) maybe.Result[T] {
		return in.Filter(pred, err)
	})}
}

func (r *Result[T]) MapErr(fn func(error) error) *Result[T] {
	return &Result[T]{d: future.Map(r.d, func(in maybe.Result[T]) maybe.Result[T] {
		return in.MapErr(fn)
	})}
}

// Recover turns Err into Ok(fn(err)) once resolved; Ok is unchanged.
func (r *Result[T]) Recover(fn func(error) T) *Result[T] {
	return &Result[T]{d: future.Map(r.d, func(in maybe.Result[T]) maybe.Result[T] {
		return in.Recover(fn)
	})}
}

func (r *Result[T]) Tap(fn func(T)) *Result[T] {
	return &Result[T]{d: future.Map(r.d, func(in maybe.Result[T]) maybe.Result[T] {
		return in.Tap(fn)
	})}
}

func (r *Result[T]) TapErr(fn func(error)) *Result[T] {
	return &Result[T]{d: future.Map(r.d, func(in maybe.Result[T]) maybe.Result[T] {
		return in.TapErr(fn)
	})}
}

// OrElse keeps an Ok resolution; on Err it evaluates fn with the error,
// accepting either sibling, and resolves to that result.
func (r *Result[T]) OrElse(fn func(error) ResultArg[T]) *Result[T] {
	return &Result[T]{d: future.New(func() maybe.Result[T] {
		in := r.d.Await()
		if in.IsOk() {
			return in
		}
		return fn(in.Err()).await()
	})}
}

// ToOption converts across the deferred boundary: Some(value) on Ok, None on
// Err. The error is discarded.
func (r *Result[T]) ToOption() *Option[T] {
	return &Option[T]{d: future.Map(r.d, res.ToOption[T])}
}

func (*Result[T]) isResultAsync() {}

// MapResult transforms the Ok value once resolved; Err passes through.
func MapResult[In, Out any](r *Result[In], f func(In) Out) *Result[Out] {
	return &Result[Out]{d: future.Map(r.d, func(in maybe.Result[In]) maybe.Result[Out] {
		return res.Map(in, f)
	})}
}

// ThenResult binds f on the Ok branch; f may hand back either sibling. Err
// passes through and f is not invoked.
func ThenResult[In, Out any](r *Result[In], f func(In) ResultArg[Out]) *Result[Out] {
	return &Result[Out]{d: future.New(func() maybe.Result[Out] {
		in := r.d.Await()
		if in.IsErr() {
			return maybe.Err[Out](in.Err())
		}
		return f(in.Value()).await()
	})}
}

// TryResult calls f on the Ok value once resolved and converts a non-nil
// error into Err.
func TryResult[In, Out any](r *Result[In], f func(In) (Out, error)) *Result[Out] {
	return &Result[Out]{d: future.Map(r.d, func(in maybe.Result[In]) maybe.Result[Out] {
		return res.Try(in, f)
	})}
}

// ZipResult initiates both sides, jointly awaits them, then pairs two Oks
// with the first Err winning, a side checked before b.
func ZipResult[A, B any](a *Result[A], b ResultArg[B]) *Result[maybe.Pair[A, B]] {
	both := future.Zip2(a.d, future.New(b.await))
	return &Result[maybe.Pair[A, B]]{d: future.Map(both,
		func(p maybe.Pair[maybe.Result[A], maybe.Result[B]]) maybe.Result[maybe.Pair[A, B]] {
			return res.Zip(p.First, p.Second)
		})}
}

// MatchResult resolves the result and dispatches to exactly one handler.
func MatchResult[T, Out any](r *Result[T], ok func(T) Out, err func(error) Out) Out {
	return res.Match(r.d.Await(), ok, err)
}

// SequenceResult resolves to the zero-or-one element slice view; Err keeps
// its error and stays classified as Err.
func SequenceResult[T any](r *Result[T]) *Result[[]T] {
	return &Result[[]T]{d: future.Map(r.d, res.Sequence[T])}
}

// FlattenResult collapses a synchronous inner result.
func FlattenResult[T any](r *Result[maybe.Result[T]]) *Result[T] {
	return &Result[T]{d: future.Map(r.d, res.Flatten[T])}
}

// FlattenResultAsync collapses an asynchronous inner result, awaiting it
// after the outer resolves. A nil inner handle resolves to Err.
func FlattenResultAsync[T any](r *Result[*Result[T]]) *Result[T] {
	return &Result[T]{d: future.New(func() maybe.Result[T] {
		outer := r.d.Await()
		if outer.IsErr() {
			return maybe.Err[T](outer.Err())
		}
		if outer.Value() == nil {
			return maybe.Err[T](maybe.ErrUnspecified)
		}
		return outer.Value().Await()
	})}
}
