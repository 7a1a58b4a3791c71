// Package errs provides standardized error types for the dispatch service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsInvalid) for errors.Is classification
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// Business outcomes that are specific to a use case (an order already taken,
// no route between two points) live as sentinels next to the command handlers
// that produce them; this package holds only the generic kinds shared across
// layers.
package errs
