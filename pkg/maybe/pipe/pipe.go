package pipe

import (
	"github.com/ib-77/maybe/pkg/maybe"
	"github.com/ib-77/maybe/pkg/maybe/async"
	"github.com/ib-77/maybe/pkg/maybe/future"
)

// Step transforms the running value, possibly deferring the rest of the
// pipeline.
type Step[T any] func(T) future.Value[T]

// Run applies each step to the running value in order, starting from
// initial. With zero steps the initial value is returned unchanged, in its
// original variant. Once any step returns a deferred value, every remaining
// step runs after it resolves and the overall result stays deferred.
func Run[T any](initial future.Value[T], steps ...Step[T]) future.Value[T] {
	cur := initial
	for i, step := range steps {
		if cur.Settled() {
			cur = step(cur.Await())
			continue
		}

		rest := steps[i:]
		d := cur.Defer()
		return future.Later(future.New(func() T {
			v := d.Await()
			for _, s := range rest {
				v = s(v).Await()
			}
			return v
		}))
	}
	return cur
}

// Map composes a pure transformation: immediate in, immediate out; deferred
// in, deferred out.
func Map[In, Out any](v future.Value[In], f func(In) Out) future.Value[Out] {
	if v.Settled() {
		return future.Now(f(v.Await()))
	}
	return future.Later(future.Map(v.Defer(), f))
}

// FlatMap composes a step whose own output may be deferred. The result is
// deferred as soon as either the input or f's output is.
func FlatMap[In, Out any](v future.Value[In], f func(In) future.Value[Out]) future.Value[Out] {
	if v.Settled() {
		return f(v.Await())
	}
	d := v.Defer()
	return future.Later(future.New(func() Out {
		return f(d.Await()).Await()
	}))
}

// Option threads a synchronous option through option-to-option steps. The
// return is always the async container, even when every step was immediate,
// because any step might not be.
func Option[T any](o maybe.Option[T], steps ...Step[maybe.Option[T]]) *async.Option[T] {
	return async.AdoptOption(Run(future.Now(o), steps...).Defer())
}

// Result is the Result analogue of Option.
func Result[T any](r maybe.Result[T], steps ...Step[maybe.Result[T]]) *async.Result[T] {
	return async.AdoptResult(Run(future.Now(r), steps...).Defer())
}
