// Package res contains the generic, type-changing operations over
// maybe.Result[T], mirroring package opt on the success/failure axis.
//
// Key operations:
// - Map/Then: transform an Ok value, or bind a further Result to it
// - Try: call a function returning (Out, error) and convert error to Err
// - Zip: pair two Oks, the first Err wins (receiver side first)
// - Flatten: collapse one nesting level of Result[Result[T]]
// - Match: exhaustive dispatch to an ok or err handler
// - Sequence/SequenceSlice: zero-or-one element view as a slice
// - ToOption: convert to the Option family, discarding the error
// - Validate: apply a predicate producing failure on invalid input
// - Collect/CollectJoin: gather a slice of Results, short-circuit or join
package res
