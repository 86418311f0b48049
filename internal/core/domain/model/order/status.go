package order

import (
	"errors"
	"fmt"

	"beerorders/internal/pkg/errs"
)

// ErrInvalidOrderState classifies rejected status transitions for errors.Is.
var ErrInvalidOrderState = errors.New("invalid order state")

// Status represents the lifecycle state of a beer order. It implements a
// state machine with a single exposed transition, Cancel.
//
// State transitions:
//
//	NEW ──┬──> CANCELLED
//	PENDING ──┤
//	PROCESSING ──┘
//
// COMPLETED, CANCELLED, and DELIVERY_EXCEPTION are terminal: no transition
// leaves them. Advancement to PENDING, PROCESSING, COMPLETED, or
// DELIVERY_EXCEPTION is driven by an external fulfillment process and is not
// modeled here.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status assigned at order creation.
	StatusNew

	// StatusPending indicates the order has been accepted for fulfillment.
	StatusPending

	// StatusProcessing indicates the order is being fulfilled.
	StatusProcessing

	// StatusCompleted indicates the order has been delivered. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled

	// StatusDeliveryException indicates fulfillment failed. Terminal.
	StatusDeliveryException
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:           "UNKNOWN",
		StatusNew:               "NEW",
		StatusPending:           "PENDING",
		StatusProcessing:        "PROCESSING",
		StatusCompleted:         "COMPLETED",
		StatusCancelled:         "CANCELLED",
		StatusDeliveryException: "DELIVERY_EXCEPTION",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:               "NEW",
		StatusPending:           "PENDING",
		StatusProcessing:        "PROCESSING",
		StatusCompleted:         "COMPLETED",
		StatusCancelled:         "CANCELLED",
		StatusDeliveryException: "DELIVERY_EXCEPTION",
	}
}

// StatusFromString parses the persisted/external representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("orderStatus",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the six defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical upper-case name of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusDeliveryException
}

// Cancel transitions the status to CANCELLED.
//
// Valid transitions:
//   - NEW -> CANCELLED
//   - PENDING -> CANCELLED
//   - PROCESSING -> CANCELLED
//
// Any terminal state (including CANCELLED itself) is rejected with an
// InvalidOrderStateError carrying the current and target status. The value
// receiver keeps this a pure function: callers decide whether to apply the
// returned status.
func (s Status) Cancel() (Status, error) {
	switch s {
	case StatusNew, StatusPending, StatusProcessing:
		return StatusCancelled, nil
	default:
		return StatusUnknown, NewInvalidOrderStateError(s, StatusCancelled)
	}
}

// InvalidOrderStateError is returned when a transition is attempted from a
// state that does not permit it. Carries both the current status and the
// attempted target so the transport boundary can surface them.
type InvalidOrderStateError struct {
	Current Status
	Target  Status
}

// NewInvalidOrderStateError creates an InvalidOrderStateError for the
// rejected current -> target transition.
func NewInvalidOrderStateError(current, target Status) *InvalidOrderStateError {
	return &InvalidOrderStateError{Current: current, Target: target}
}

func (e *InvalidOrderStateError) Error() string {
	return fmt.Sprintf("Cannot transition order from %s to %s", e.Current, e.Target)
}

func (e *InvalidOrderStateError) Unwrap() error {
	return ErrInvalidOrderState
}
