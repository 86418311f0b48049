// Package order provides the beer order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning an ordered set of Lines
//   - Line: a single beer reference with a positive quantity
//   - Status: a state machine over the order lifecycle
//
// Key business rules:
//   - An order is created in NEW status with a valid customer reference and
//     at least one line; order and lines are persisted as one unit
//   - Lines never exist outside their order and preserve request order
//   - Cancel is the only transition exposed here: NEW, PENDING, and
//     PROCESSING orders may be cancelled; COMPLETED, CANCELLED, and
//     DELIVERY_EXCEPTION are terminal
//
// The remaining transitions (to PENDING, PROCESSING, COMPLETED,
// DELIVERY_EXCEPTION) belong to an external fulfillment process and are not
// exposed by any operation in this package.
package order
