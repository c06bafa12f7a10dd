// Package errs provides standardized error types for the restaurant application.
// Every type follows the same pattern: a sentinel error, a struct carrying the
// details, constructors with and without a cause, Error() and Unwrap().
//
// The sentinels let callers classify failures with errors.Is regardless of the
// concrete type:
//   - ErrValueIsRequired: a required value is missing
//   - ErrValueIsInvalid: a value is malformed
//   - ErrValueIsOutOfRange: a value is outside of its allowed bounds
//   - ErrObjectNotFound: an object cannot be found
package errs
