// Package result provides Result, the success/failure value handed across the
// boundary between request handlers and their callers for outcomes that are
// expected rather than exceptional ("not found", "already exists", rejected input).
package result

// UnspecifiedFailureMessage is the message stored when Failure is called with an empty message.
const UnspecifiedFailureMessage = "unspecified failure"

// Result holds either a value (success) or an error message (failure), never both.
// The zero value is a failure carrying UnspecifiedFailureMessage once inspected through Error.
type Result[T any] struct {
	value   T
	err     string
	success bool
}

// Success wraps value in a successful Result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

// Failure returns a failed Result with the given message.
// An empty message is replaced by UnspecifiedFailureMessage so a failure always explains itself.
func Failure[T any](message string) Result[T] {
	if message == "" {
		message = UnspecifiedFailureMessage
	}
	return Result[T]{err: message}
}

// FailureFromError converts err into a failed Result using err.Error() as the message.
func FailureFromError[T any](err error) Result[T] {
	if err == nil {
		return Failure[T]("")
	}
	return Failure[T](err.Error())
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.success
}

// IsFailure reports whether r holds an error message.
func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Value returns the success value, or the zero value of T for a failure.
func (r Result[T]) Value() T {
	return r.value
}

// Error returns the failure message, or "" for a success.
func (r Result[T]) Error() string {
	if r.success {
		return ""
	}
	if r.err == "" {
		return UnspecifiedFailureMessage
	}
	return r.err
}

// Get returns the value together with a flag telling whether r is a success.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.success
}

// Map applies fn to the value of a successful Result. A failure is passed through
// with its original message and fn is not called.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.success {
		return Result[U]{err: r.Error()}
	}
	return Success(fn(r.value))
}

// Bind chains an operation that can itself fail.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.success {
		return Result[U]{err: r.Error()}
	}
	return fn(r.value)
}
