package commands

import (
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a full replacement of a customer's
// mutable fields.
type UpdateCustomerCommand struct {
	customerID kernel.UUID
	name       string
	email      string
	phone      string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to replace a customer's fields.
func NewUpdateCustomerCommand(
	customerID kernel.UUID, name, email, phone string,
) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		name:       name,
		email:      email,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// Name returns the replacement customer name.
func (c UpdateCustomerCommand) Name() string { return c.name }

// Email returns the replacement email.
func (c UpdateCustomerCommand) Email() string { return c.email }

// Phone returns the replacement phone number.
func (c UpdateCustomerCommand) Phone() string { return c.phone }
