// Package errs provides the standardized error types used across the laundry
// back office core.
//
// Each error kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrInvalidTransition)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The validation kinds (required / invalid / out of range) cover malformed
// sector payloads and item lists. ObjectNotFoundError covers dangling order,
// manifest and stop references. InvalidTransitionError and ConflictError carry
// the state-machine taxonomy: the former for operations attempted from an
// illegal current state, the latter for lost optimistic-concurrency races on
// conditional status writes.
package errs
