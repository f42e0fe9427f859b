// Package errs provides standardized error types for the canteen application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a business rule
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed range
//   - ObjectNotFoundError: a referenced object does not exist
//   - ObjectAlreadyExistsError: a natural-key conflict on creation
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without a cause
//   - an Error() method for formatting
//   - an Unwrap() method returning the sentinel, enabling errors.Is
//     classification at the request layer
package errs
