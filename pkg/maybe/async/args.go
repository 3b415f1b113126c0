package async

import "github.com/ib-77/maybe/pkg/maybe"

// OptionArg carries either a synchronous or an asynchronous option into a
// chaining operation, so callers never need runtime type sniffing to pass
// whichever sibling they hold.
type OptionArg[T any] struct {
	now   maybe.Option[T]
	later *Option[T]
}

func OptionNow[T any](o maybe.Option[T]) OptionArg[T] {
	return OptionArg[T]{now: o}
}

func OptionLater[T any](o *Option[T]) OptionArg[T] {
	return OptionArg[T]{later: o}
}

func (a OptionArg[T]) await() maybe.Option[T] {
	if a.later != nil {
		return a.later.Await()
	}
	return a.now
}

// ResultArg is the Result analogue of OptionArg.
type ResultArg[T any] struct {
	now   maybe.Result[T]
	later *Result[T]
}

func ResultNow[T any](r maybe.Result[T]) ResultArg[T] {
	return ResultArg[T]{now: r}
}

func ResultLater[T any](r *Result[T]) ResultArg[T] {
	return ResultArg[T]{later: r}
}

func (a ResultArg[T]) await() maybe.Result[T] {
	if a.later != nil {
		return a.later.Await()
	}
	return a.now
}
