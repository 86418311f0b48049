// Package customer provides the Customer aggregate. A customer owns orders;
// the ownership is recorded on the order side, so the aggregate here carries
// only identity and contact details.
package customer

import (
	"errors"
	"net/mail"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer is a buyer of beer orders. Name is required; email is optional but
// must be a parseable address when present (the store additionally enforces
// its uniqueness).
type Customer struct {
	id    kernel.UUID
	name  string
	email string
	phone string

	version       int
	isConstructed bool
}

// NewCustomer creates a Customer with version zero, validating all fields.
func NewCustomer(id kernel.UUID, name, email, phone string) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rehydrates a Customer from persistence, including its
// stored version.
func RestoreCustomer(id kernel.UUID, name, email, phone string, version int) (*Customer, error) {
	c, err := NewCustomer(id, name, email, phone)
	if err != nil {
		return nil, err
	}

	c.version = version
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// Update replaces all mutable fields, validating each.
func (c *Customer) Update(name, email, phone string) error {
	return errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
	)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer email, empty when not provided.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer phone number, empty when not provided.
func (c *Customer) Phone() string {
	return c.phone
}

// Version returns the optimistic-concurrency version read from the store.
func (c *Customer) Version() int {
	return c.version
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("email", err)
		}
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	c.phone = phone
	return nil
}
