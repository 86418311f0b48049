package queries

import (
	"errors"
	"time"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"
	"beerorders/internal/pkg/guard"
)

var ErrGetCustomerByEmailQueryIsNotConstructed = errors.New(
	"GetCustomerByEmailQuery must be created via NewGetCustomerByEmailQuery constructor",
)

// GetCustomerByEmailQuery retrieves a customer by their email address.
// Email is treated as an exact-match lookup key, not a search term.
type GetCustomerByEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetCustomerByEmailQuery creates a query for the customer registered
// under the given email.
func NewGetCustomerByEmailQuery(email string) (GetCustomerByEmailQuery, error) {
	if email == "" {
		return GetCustomerByEmailQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetCustomerByEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByEmailQueryIsNotConstructed)
}

// Email returns the lookup email address.
func (q GetCustomerByEmailQuery) Email() string {
	return q.email
}

// GetCustomerByEmailQueryResponse is the read model for an email lookup.
type GetCustomerByEmailQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
