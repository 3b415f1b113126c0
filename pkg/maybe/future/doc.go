// Package future provides the deferred-computation primitive the async
// containers are built on: a lazy, memoized, resolve-once Deferred[T], plus
// Value[T], a two-variant union of an immediate and a deferred value.
//
// Key operations:
// - New/Resolved/Go: construct a Deferred[T]
// - Await: resolve at most once and return the cached value thereafter
// - Map: derive a deferred that awaits its parent first
// - Zip2: initiate two deferreds, then jointly await both
// - Now/Later: construct a Value[T]; Defer normalizes either variant
//
// There is no cancellation and no timeout: a deferred whose computation
// never returns blocks its awaiters forever.
package future
