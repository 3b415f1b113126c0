// Package maybe defines the two core containers: Option[T] for optional
// values (Some/None) and Result[T] for fallible outcomes (Ok/Err). Both are
// immutable value types; every operation returns a new container and a
// failure or absence passes through untouched until explicitly inspected.
//
// Key operations:
// - Some/None/From/FromPtr/FromOk/Attempt: construct Option[T]
// - Ok/Err/ResultFrom/Of: construct Result[T]
// - Filter/OrElse/Tap/TapErr: same-type chaining on either container
// - UnwrapOr/UnwrapOrElse/Unwrap/Get: leave the container
// - Recover/MapErr: rescue or reshape the error branch of Result
// - IsOption/IsResult: runtime guards for values held as any
//
// Operations that change the value type (Map, Then, Zip, Match, ...) live in
// the opt and res subpackages, since Go methods cannot introduce new type
// parameters.
package maybe
