package maybe

// ValueProvider is implemented by containers that can surrender a value.
type ValueProvider[T any] interface {
	// Value returns the held value, or T's zero value when absent
	Value() T
}

// WithErr defines an interface for types that can return a result or an error
type WithErr[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsOk returns true if the operation was successful
	IsOk() bool
}

// WithPresence extends ValueProvider with a presence check
type WithPresence[T any] interface {
	ValueProvider[T]
	// IsSome returns true if a value is present
	IsSome() bool
}
