package ports

import (
	"context"

	"beerorders/internal/core/domain/model/customer"
	"beerorders/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer using a
	// compare-and-swap on the aggregate's version.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Delete removes a customer by identifier. Returns ObjectNotFound when
	// no row matches.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a customer by identifier. Returns ObjectNotFound when
	// absent.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
