package maybe

import (
	"errors"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// ErrUnspecified replaces a nil error passed to Err, so the Err branch always
// carries a usable error value.
var ErrUnspecified = errors.New("maybe: unspecified error")

// Result is the outcome of a fallible computation: Ok carrying a value or
// Err carrying an error. Each Result is stamped with a fresh id and UTC
// creation time.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		ok:        true,
	}
}

func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnspecified
	}
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

// ResultFrom returns Ok(v) unless v is nil, in which case it returns
// Err(errIfNil).
func ResultFrom[T any](v T, errIfNil error) Result[T] {
	if IsNil(v) {
		return Err[T](errIfNil)
	}
	return Ok(v)
}

// Of adapts Go's (value, error) pair: Err when err is non-nil, else Ok.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the held value, or T's zero value on Err.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error on the Err branch, nil on Ok.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the held value and panics on Err.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		msg := "maybe: Unwrap of Err result"
		if r.err != nil {
			msg += ": " + r.err.Error()
		}
		panic(msg)
	}
	return r.value
}

// Contains reports whether the result is Ok of a value equal to v.
func (r Result[T]) Contains(v T) bool {
	return r.ok && reflect.DeepEqual(r.value, v)
}

// MapErr transforms the error on the Err branch; Ok passes through and fn is
// not invoked.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](fn(r.err))
}

// Filter keeps Ok only while pred holds, failing with err otherwise. An Err
// input stays Err unchanged and pred is not invoked.
func (r Result[T]) Filter(pred func(T) bool, err error) Result[T] {
	if !r.ok {
		return r
	}
	if pred(r.value) {
		return r
	}
	return Err[T](err)
}

// OrElse binds on the Err branch: Ok returns itself, Err returns the result
// produced by fn.
func (r Result[T]) OrElse(fn func(error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Recover turns Err into Ok(fn(err)); Ok is unchanged.
func (r Result[T]) Recover(fn func(error) T) Result[T] {
	if r.ok {
		return r
	}
	return Ok(fn(r.err))
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Tap invokes fn with the value on Ok for its side effect and returns the
// result unchanged either way.
func (r Result[T]) Tap(fn func(T)) Result[T] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// TapErr invokes fn with the error on Err for its side effect and returns
// the result unchanged either way.
func (r Result[T]) TapErr(fn func(error)) Result[T] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (Result[T]) isResult() {}

var _ WithErr[int] = Result[int]{}
