// Package errs provides the typed errors shared by the laundry service.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrForbidden, ...) with a
// struct carrying the details. Unwrap returns the sentinel so callers classify
// failures with errors.Is and the HTTP adapter maps them to status codes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: unknown order, branch or catalog item
//   - ObjectAlreadyExistsError: unique key collision, e.g. an order number
//   - ForbiddenError: the actor does not own the order or branch
//   - InvalidTransitionError: the order refuses the requested state change
//   - UpstreamGatewayError: the courier, payment or messaging provider failed
package errs
