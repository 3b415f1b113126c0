package res

import (
	"errors"

	"github.com/ib-77/maybe/pkg/maybe"
)

// Map transforms the Ok value with f; Err passes through with its error
// untouched and f is not invoked.
func Map[In, Out any](r maybe.Result[In], f func(In) Out) maybe.Result[Out] {
	if r.IsOk() {
		return maybe.Ok(f(r.Value()))
	}
	return maybe.Err[Out](r.Err())
}

// Then binds f on the Ok branch and returns its Result directly. Err passes
// through and f is not invoked.
func Then[In, Out any](r maybe.Result[In], f func(In) maybe.Result[Out]) maybe.Result[Out] {
	if r.IsOk() {
		return f(r.Value())
	}
	return maybe.Err[Out](r.Err())
}

// Try calls f on the Ok value and converts a non-nil error into Err.
func Try[In, Out any](r maybe.Result[In], f func(In) (Out, error)) maybe.Result[Out] {
	if r.IsOk() {
		out, err := f(r.Value())
		if err != nil {
			return maybe.Err[Out](err)
		}
		return maybe.Ok(out)
	}
	return maybe.Err[Out](r.Err())
}

// Zip pairs two Oks. The first Err wins, a side checked before b.
func Zip[A, B any](a maybe.Result[A], b maybe.Result[B]) maybe.Result[maybe.Pair[A, B]] {
	if a.IsErr() {
		return maybe.Err[maybe.Pair[A, B]](a.Err())
	}
	if b.IsErr() {
		return maybe.Err[maybe.Pair[A, B]](b.Err())
	}
	return maybe.Ok(maybe.Pair[A, B]{First: a.Value(), Second: b.Value()})
}

// Flatten collapses one nesting level of Ok-of-Result. Deeper nests flatten
// by repeated application.
func Flatten[T any](r maybe.Result[maybe.Result[T]]) maybe.Result[T] {
	if r.IsOk() {
		return r.Value()
	}
	return maybe.Err[T](r.Err())
}

// Match dispatches to exactly one handler and returns its value.
func Match[T, Out any](r maybe.Result[T], ok func(T) Out, err func(error) Out) Out {
	if r.IsOk() {
		return ok(r.Value())
	}
	return err(r.Err())
}

// Sequence views the result as a slice of zero or one element: Ok(v) becomes
// Ok([v]); Err keeps its error and stays classified as Err.
func Sequence[T any](r maybe.Result[T]) maybe.Result[[]T] {
	if r.IsOk() {
		return maybe.Ok([]T{r.Value()})
	}
	return maybe.Err[[]T](r.Err())
}

// SequenceSlice is Sequence for a result that already holds a slice; the
// slice passes through as-is.
func SequenceSlice[T any](r maybe.Result[[]T]) maybe.Result[[]T] {
	return r
}

// ToOption converts to the Option family: Some(value) on Ok, None on Err.
// The error is discarded.
func ToOption[T any](r maybe.Result[T]) maybe.Option[T] {
	if r.IsOk() {
		return maybe.Some(r.Value())
	}
	return maybe.None[T]()
}

// Validate fails the Ok branch with errMsg when the predicate rejects the
// value. Err passes through.
func Validate[T any](r maybe.Result[T], pred func(T) bool, errMsg string) maybe.Result[T] {
	if r.IsOk() {
		if pred(r.Value()) {
			return r
		}
		return maybe.Err[T](errors.New(errMsg))
	}
	return r
}

// Collect gathers the values of all results; the first Err short-circuits.
func Collect[T any](rs []maybe.Result[T]) maybe.Result[[]T] {
	vals := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsErr() {
			return maybe.Err[[]T](r.Err())
		}
		vals = append(vals, r.Value())
	}
	return maybe.Ok(vals)
}

// CollectJoin gathers all Ok values and joins every encountered error into
// one, so no failure is lost.
func CollectJoin[T any](rs []maybe.Result[T]) maybe.Result[[]T] {
	var err error
	vals := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsErr() {
			e := maybe.GetErrors(err)
			e = append(e, r.Err())
			err = errors.Join(e...)
			continue
		}
		vals = append(vals, r.Value())
	}
	if err != nil {
		return maybe.Err[[]T](err)
	}
	return maybe.Ok(vals)
}
