// Package async wraps the maybe containers around a deferred computation:
// async.Option[T] resolves to a maybe.Option[T] and async.Result[T] to a
// maybe.Result[T]. Branch semantics are identical to the synchronous
// containers; only the resolution point moves. Chained operations never run
// eagerly — each derived container awaits its parent inside its own deferred
// run, so steps execute in composition order. Observation methods (Await,
// IsSome, UnwrapOr, Match*, ...) block until the underlying deferred
// settles.
//
// Key constructs:
// - Some/None/OptionFrom/OptionGo, Ok/Err/ResultFrom/ResultGo: constructors
// - Lift/LiftResult, AdoptOption/AdoptResult: wrap existing containers or
//   externally supplied deferreds
// - MapOption/ThenOption/ZipOption/MatchOption (and the Result set):
//   type-changing operations as free functions
// - OptionArg/ResultArg: pass either the sync or the async sibling to a
//   chaining operation
// - FlattenOption/FlattenOptionAsync (and the Result set): collapse a sync
//   or async inner container
//
// Only the *Go constructors contain errors. A panic inside a chained
// callback surfaces out of Await, exactly like any uncontained failure.
package async
