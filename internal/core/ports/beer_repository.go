package ports

import (
	"context"

	"beerorders/internal/core/domain/model/beer"
	"beerorders/internal/core/domain/model/kernel"
)

// BeerRepository defines the persistence contract for beer aggregates.
type BeerRepository interface {
	// Add persists a new beer aggregate to storage.
	Add(ctx context.Context, aggregate *beer.Beer) error

	// Update persists changes to an existing beer using a compare-and-swap
	// on the aggregate's version. Returns a VersionConflictError when the
	// stored version has moved, ObjectNotFound when the row is gone.
	Update(ctx context.Context, aggregate *beer.Beer) error

	// Delete removes a beer by identifier. Returns ObjectNotFound when no
	// row matches.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a beer by identifier. Returns ObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*beer.Beer, error)
}
