// Package pipe threads a value through a sequence of transformations,
// transparently handling steps that return immediate or deferred values.
// While every step stays immediate the pipeline stays immediate; the first
// deferred step makes the rest of the pipeline deferred, irreversibly.
//
// Key operations:
// - Run: apply same-typed steps in order over a future.Value
// - Map/FlatMap: typed two-arg composition for type-changing pipelines
// - Option/Result: container pipelines, always yielding the async container
//
// Panics in steps propagate to the pipeline's awaiter; there is no implicit
// recovery.
package pipe
