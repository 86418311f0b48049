package ports

import (
	"context"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are always written and read as one unit.
type OrderRepository interface {
	// Add persists a new order aggregate with all its lines atomically.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and callback-state changes to an existing
	// order using a compare-and-swap on the aggregate's version. Lines are
	// immutable outside the order's own lifecycle and are not touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines in request order.
	// Returns ObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllWithPendingCallback retrieves cancelled orders whose status
	// callback has not yet been delivered.
	GetAllWithPendingCallback(ctx context.Context) ([]*order.Order, error)
}
