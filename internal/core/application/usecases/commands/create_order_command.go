package commands

import (
	"errors"
	"fmt"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"
	"beerorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLineItemIsNotConstructed = errors.New(
		"OrderLineItem must be created via NewOrderLineItem constructor",
	)
)

// OrderLineItem is a single requested (beer id, quantity) pair inside a
// CreateOrderCommand. Quantity must be positive.
type OrderLineItem struct {
	beerID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewOrderLineItem creates a validated line request.
func NewOrderLineItem(beerID kernel.UUID, quantity int) (OrderLineItem, error) {
	if err := beerID.Validate(); err != nil {
		return OrderLineItem{}, err
	}
	if quantity <= 0 {
		return OrderLineItem{}, errs.NewValueIsInvalidErrorWithCause("orderQuantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return OrderLineItem{
		beerID:   beerID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through the constructor.
func (i OrderLineItem) Validate() error {
	return i.guard.Validate(ErrOrderLineItemIsNotConstructed)
}

// BeerID returns the requested beer's identifier.
func (i OrderLineItem) BeerID() kernel.UUID {
	return i.beerID
}

// Quantity returns the requested quantity.
func (i OrderLineItem) Quantity() int {
	return i.quantity
}

// CreateOrderCommand represents a request to create a new beer order for a
// customer: a non-empty list of line items plus an optional callback URL the
// fulfillment side may notify on status changes.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	callbackURL string
	items       []OrderLineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new beer order.
// Validates that both identifiers are valid and at least one line item is
// present; each item carries its own validation.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID, callbackURL string, items []OrderLineItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		callbackURL: callbackURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CallbackURL returns the optional status callback URL.
func (c CreateOrderCommand) CallbackURL() string {
	return c.callbackURL
}

// Items returns the requested line items in request order.
func (c CreateOrderCommand) Items() []OrderLineItem {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderLineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("beerOrderLines")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
