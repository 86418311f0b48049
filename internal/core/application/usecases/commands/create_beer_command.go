package commands

import (
	"errors"

	"beerorders/internal/core/domain/model/beer"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateBeerCommandIsNotConstructed = errors.New(
	"CreateBeerCommand must be created via NewCreateBeerCommand constructor",
)

// CreateBeerCommand represents a request to add a beer to the catalog.
// Field validation is delegated to the Beer aggregate constructor so the
// command and the domain cannot drift apart.
type CreateBeerCommand struct {
	beerID         kernel.UUID
	name           string
	style          string
	upc            string
	price          decimal.Decimal
	quantityOnHand int

	guard guard.ConstructorGuard
}

// NewCreateBeerCommand creates a command to add a beer to the catalog.
func NewCreateBeerCommand(
	beerID kernel.UUID, name, style, upc string, price decimal.Decimal, quantityOnHand int,
) (CreateBeerCommand, error) {
	// Trial construction validates every field without persisting anything.
	if _, err := beer.NewBeer(beerID, name, style, upc, price, quantityOnHand); err != nil {
		return CreateBeerCommand{}, err
	}

	return CreateBeerCommand{
		beerID:         beerID,
		name:           name,
		style:          style,
		upc:            upc,
		price:          price,
		quantityOnHand: quantityOnHand,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBeerCommand) Validate() error {
	return c.guard.Validate(ErrCreateBeerCommandIsNotConstructed)
}

// BeerID returns the identifier assigned to the new beer.
func (c CreateBeerCommand) BeerID() kernel.UUID { return c.beerID }

// Name returns the beer name.
func (c CreateBeerCommand) Name() string { return c.name }

// Style returns the beer style.
func (c CreateBeerCommand) Style() string { return c.style }

// UPC returns the universal product code.
func (c CreateBeerCommand) UPC() string { return c.upc }

// Price returns the unit price.
func (c CreateBeerCommand) Price() decimal.Decimal { return c.price }

// QuantityOnHand returns the stocked quantity.
func (c CreateBeerCommand) QuantityOnHand() int { return c.quantityOnHand }
