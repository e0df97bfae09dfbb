// Package errs provides standardized error types for the dispatch service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details and an optional Cause
//   - Constructor functions with and without cause
//   - Error() for formatting, Unwrap() for errors.Is classification
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// boundary relies on this to map domain failures to status codes.
package errs
