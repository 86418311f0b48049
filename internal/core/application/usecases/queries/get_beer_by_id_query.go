// Package queries contains read-only operations that retrieve system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read the database directly, bypassing aggregates and repositories.
package queries

import (
	"errors"
	"time"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBeerByIDQueryIsNotConstructed = errors.New(
	"GetBeerByIDQuery must be created via NewGetBeerByIDQuery constructor",
)

// GetBeerByIDQuery retrieves a single beer from the catalog.
type GetBeerByIDQuery struct {
	beerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBeerByIDQuery creates a query for the identified beer.
func NewGetBeerByIDQuery(beerID kernel.UUID) (GetBeerByIDQuery, error) {
	if err := beerID.Validate(); err != nil {
		return GetBeerByIDQuery{}, err
	}

	return GetBeerByIDQuery{
		beerID: beerID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBeerByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetBeerByIDQueryIsNotConstructed)
}

// BeerID returns the identifier of the beer to fetch.
func (q GetBeerByIDQuery) BeerID() kernel.UUID {
	return q.beerID
}

// GetBeerByIDQueryResponse is the read model for a single catalog beer.
type GetBeerByIDQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Style          string
	UPC            string
	Price          decimal.Decimal
	QuantityOnHand int
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
