// Package errs provides standardized error types for the dealer sales application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a referenced record cannot be found
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value lies outside its bounds
//   - InvalidStateTransitionError: For when a lifecycle guard rejects a transition
//   - WrongDocumentKindError: For when an operation targets the wrong document kind
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, which keeps
// the request boundary's mapping from error to response code exhaustive.
package errs
