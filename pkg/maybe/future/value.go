package future

// Value is a two-variant union: an immediate value or a deferred one. It is
// the join point for code that accepts either shape interchangeably.
type Value[T any] struct {
	now   T
	later *Deferred[T]
}

func Now[T any](v T) Value[T] {
	return Value[T]{now: v}
}

func Later[T any](d *Deferred[T]) Value[T] {
	return Value[T]{later: d}
}

// Settled reports whether the value is immediate.
func (v Value[T]) Settled() bool {
	return v.later == nil
}

// Await returns the value, blocking only on the deferred variant.
func (v Value[T]) Await() T {
	if v.later != nil {
		return v.later.Await()
	}
	return v.now
}

// Defer normalizes either variant to a deferred value.
func (v Value[T]) Defer() *Deferred[T] {
	if v.later != nil {
		return v.later
	}
	return Resolved(v.now)
}
