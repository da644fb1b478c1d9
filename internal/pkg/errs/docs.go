// Package errs provides the typed errors shared by the logistics backend.
//
// Every error follows the same shape: a sentinel variable, a struct with
// details, constructors with and without a cause, Error() and Unwrap().
// Callers classify with errors.Is against the sentinel and extract details
// with errors.As.
//
//   - ObjectNotFoundError: a referenced shipment or account does not exist
//   - ForbiddenError: the actor is authenticated but not allowed to act
//   - InvalidTransitionError: the shipment status does not permit the action
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: input validation
//   - UnauthenticatedError: missing or bad credentials
package errs
