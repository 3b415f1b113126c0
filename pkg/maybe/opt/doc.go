// Package opt contains the generic, type-changing operations over
// maybe.Option[T]. They are package-level functions because Go methods
// cannot introduce new type parameters.
//
// Key operations:
// - Map/Then: transform a Some value, or bind a further Option to it
// - Zip: pair two Somes, None short-circuits (receiver side first)
// - Flatten: collapse one nesting level of Option[Option[T]]
// - Match: exhaustive dispatch to a some or none handler
// - Sequence/SequenceSlice: zero-or-one element view as a slice
// - ToResult: convert to the Result family with a caller-supplied error
// - Collect: gather a slice of Options, first None wins
// - AttemptTee: Attempt with an error observer side channel
package opt
