package order

import (
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a beer order. It owns its lines by value,
// in request order; lines reference the order only through the aggregate, so
// there are no back-pointers to cycle through.
//
// Invariants:
//   - valid unique identifier and customer reference (immutable after creation)
//   - at least one line, every line individually valid
//   - status transitions go through the Status state machine
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	status       Status
	callbackURL  string
	callbackSent bool
	lines        []Line

	version       int
	isConstructed bool
}

// NewOrder creates an Order in NEW status owning the given lines. The
// customer and beer references are expected to have been resolved by the
// caller; this constructor only enforces structural invariants.
func NewOrder(id, customerID kernel.UUID, callbackURL string, lines []Line) (*Order, error) {
	o := &Order{
		status:        StatusNew,
		callbackURL:   callbackURL,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence with its stored status,
// callback state, and version.
func RestoreOrder(
	id, customerID kernel.UUID,
	status Status,
	callbackURL string,
	callbackSent bool,
	version int,
	lines []Line,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, customerID, callbackURL, lines)
	if err != nil {
		return nil, err
	}

	o.status = status
	o.callbackSent = callbackSent
	o.version = version
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Cancel transitions the order to CANCELLED. Orders in NEW, PENDING, or
// PROCESSING may be cancelled; any terminal state is rejected with an
// InvalidOrderStateError and the order is left unchanged.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkCallbackSent records that the status callback for this order has been
// delivered. Used by the callback dispatch job.
func (o *Order) MarkCallbackSent() {
	o.callbackSent = true
}

// CallbackPending reports whether a cancellation callback still needs to be
// delivered for this order.
func (o *Order) CallbackPending() bool {
	return o.status == StatusCancelled && o.callbackURL != "" && !o.callbackSent
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CallbackURL returns the status callback URL, empty when not provided.
func (o *Order) CallbackURL() string {
	return o.callbackURL
}

// CallbackSent reports whether the status callback has been delivered.
func (o *Order) CallbackSent() bool {
	return o.callbackSent
}

// Lines returns the order's lines in request order.
func (o *Order) Lines() []Line {
	return o.lines
}

// Version returns the optimistic-concurrency version read from the store.
func (o *Order) Version() int {
	return o.version
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("beerOrderLines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	return nil
}
