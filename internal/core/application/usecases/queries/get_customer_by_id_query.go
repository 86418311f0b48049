package queries

import (
	"errors"
	"time"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"
)

var ErrGetCustomerByIDQueryIsNotConstructed = errors.New(
	"GetCustomerByIDQuery must be created via NewGetCustomerByIDQuery constructor",
)

// GetCustomerByIDQuery retrieves a single customer record.
type GetCustomerByIDQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerByIDQuery creates a query for the identified customer.
func NewGetCustomerByIDQuery(customerID kernel.UUID) (GetCustomerByIDQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerByIDQuery{}, err
	}

	return GetCustomerByIDQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByIDQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer to fetch.
func (q GetCustomerByIDQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerByIDQueryResponse is the read model for a single customer.
type GetCustomerByIDQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
