package commands

import (
	"errors"

	"beerorders/internal/core/domain/model/customer"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct {
	customerID kernel.UUID
	name       string
	email      string
	phone      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Name is required; email, when present, must be a parseable address.
func NewCreateCustomerCommand(
	customerID kernel.UUID, name, email, phone string,
) (CreateCustomerCommand, error) {
	if _, err := customer.NewCustomer(customerID, name, email, phone); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		customerID: customerID,
		name:       name,
		email:      email,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier assigned to the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// Name returns the customer name.
func (c CreateCustomerCommand) Name() string { return c.name }

// Email returns the optional customer email.
func (c CreateCustomerCommand) Email() string { return c.email }

// Phone returns the optional customer phone number.
func (c CreateCustomerCommand) Phone() string { return c.phone }
