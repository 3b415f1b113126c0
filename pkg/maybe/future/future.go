package future

import (
	"sync"

	"github.com/ib-77/maybe/pkg/maybe"
)

// Deferred is a computation resolved at most once. The first Await runs it,
// every later Await returns the cached value. Concurrent awaiters block
// until the first resolution completes.
type Deferred[T any] struct {
	once sync.Once
	run  func() T
	val  T
}

// New wraps run lazily; nothing executes until the first Await.
func New[T any](run func() T) *Deferred[T] {
	return &Deferred[T]{run: run}
}

// Resolved returns an already-settled deferred.
func Resolved[T any](v T) *Deferred[T] {
	d := &Deferred[T]{val: v}
	d.once.Do(func() {})
	return d
}

// Go starts fn in its own goroutine immediately; Await joins it.
func Go[T any](fn func() T) *Deferred[T] {
	ch := make(chan T, 1)
	go func() {
		ch <- fn()
	}()
	return New(func() T {
		return <-ch
	})
}

func (d *Deferred[T]) Await() T {
	d.once.Do(func() {
		d.val = d.run()
		d.run = nil
	})
	return d.val
}

// Map derives a deferred whose run awaits d first, so composed steps execute
// strictly in composition order.
func Map[In, Out any](d *Deferred[In], f func(In) Out) *Deferred[Out] {
	return New(func() Out {
		return f(d.Await())
	})
}

// Zip2 initiates both deferreds and jointly awaits them. This is the one
// place two deferred computations may resolve concurrently; everywhere else
// chaining is strictly sequential.
func Zip2[A, B any](da *Deferred[A], db *Deferred[B]) *Deferred[maybe.Pair[A, B]] {
	return New(func() maybe.Pair[A, B] {
		bs := make(chan B, 1)
		go func() {
			bs <- db.Await()
		}()
		a := da.Await()
		return maybe.Pair[A, B]{First: a, Second: <-bs}
	})
}
