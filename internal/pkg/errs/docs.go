// Package errs provides the typed errors shared by the ordering domain kernel and
// the request handlers that call into it.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional Cause
//   - NewX and NewXWithCause constructors
//   - Error() for a single-line message and Unwrap() returning the sentinel and,
//     when set, the Cause, so errors.Is matches either
//
// The types fall into three kinds (see Kind and KindOf):
//   - KindInvalidArgument: a value failed its construction invariants
//     (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
//   - KindBusinessRule: an aggregate refused a mutation in its current state
//     (BusinessRuleViolationError)
//   - KindNotFound / KindAlreadyExists: routine outcomes a caller branches on
//     (ObjectNotFoundError, ObjectAlreadyExistsError)
//
// Anything else classifies as KindUnknown and is treated as an infrastructure failure.
package errs
