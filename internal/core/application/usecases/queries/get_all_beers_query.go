package queries

import (
	"errors"
	"time"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllBeersQueryIsNotConstructed = errors.New(
	"GetAllBeersQuery must be created via NewGetAllBeersQuery constructor",
)

// GetAllBeersQuery retrieves the full beer catalog.
type GetAllBeersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllBeersQuery creates a query for the full catalog. This is a
// parameterless query.
func NewGetAllBeersQuery() GetAllBeersQuery {
	return GetAllBeersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllBeersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllBeersQueryIsNotConstructed)
}

// GetAllBeersQueryResponse is the read model for one catalog entry in a
// listing.
type GetAllBeersQueryResponse struct {
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
