package vendo

import "fmt"

// Result carries either the value produced by a successful API call or the
// classified Error that caused it to fail. Exactly one side is populated.
// Every network-facing operation in this module returns a Result instead of
// surfacing expected remote conditions (not found, validation, rate limits)
// through the error return path.
type Result[T any] struct {
	value T
	err   *Error
	ok    bool
}

// Void is the value type for operations whose success carries no body,
// such as deletes.
type Void struct{}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail wraps a classified failure. A nil err is a programming error and is
// normalized to an Unknown failure so the Result invariant holds.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = NewError(KindUnknown, "failure constructed without an error")
	}

	return Result[T]{err: err}
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds a failure.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// IsNotFound reports whether the result failed because the remote resource
// does not exist.
func (r Result[T]) IsNotFound() bool {
	return r.err != nil && r.err.Kind == KindNotFound
}

// Value returns the success value. Calling Value on a failed result is a
// caller bug and panics; check IsOk first or use Unpack.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("vendo: Value called on failed result: %v", r.err))
	}

	return r.value
}

// Err returns the failure, or nil for a successful result.
func (r Result[T]) Err() *Error {
	return r.err
}

// Unpack splits the result into its conventional Go form.
func (r Result[T]) Unpack() (T, *Error) {
	return r.value, r.err
}
