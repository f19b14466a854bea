// Package errs provides standardized error types for the ride-order backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - StateConflictError: For when a lifecycle state forbids an operation
//   - DuplicateIdentifierError: For when a generated identifier collides
//     with an existing unique value (retryable)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The sentinels are the contract between the application core and the
// transport layer: HTTP handlers map each sentinel to a response status
// without inspecting concrete types.
package errs
