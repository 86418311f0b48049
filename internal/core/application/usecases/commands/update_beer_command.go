package commands

import (
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateBeerCommandIsNotConstructed = errors.New(
	"UpdateBeerCommand must be created via NewUpdateBeerCommand constructor",
)

// UpdateBeerCommand represents a full replacement of a beer's mutable fields.
// Field values are validated against the loaded aggregate at handle time,
// where the current record is known.
type UpdateBeerCommand struct {
	beerID         kernel.UUID
	name           string
	style          string
	upc            string
	price          decimal.Decimal
	quantityOnHand int

	guard guard.ConstructorGuard
}

// NewUpdateBeerCommand creates a command to replace a beer's fields.
func NewUpdateBeerCommand(
	beerID kernel.UUID, name, style, upc string, price decimal.Decimal, quantityOnHand int,
) (UpdateBeerCommand, error) {
	if err := beerID.Validate(); err != nil {
		return UpdateBeerCommand{}, err
	}

	return UpdateBeerCommand{
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
func (c UpdateBeerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBeerCommandIsNotConstructed)
}

// BeerID returns the identifier of the beer to update.
func (c UpdateBeerCommand) BeerID() kernel.UUID { return c.beerID }

// Name returns the replacement beer name.
func (c UpdateBeerCommand) Name() string { return c.name }

// Style returns the replacement beer style.
func (c UpdateBeerCommand) Style() string { return c.style }

// UPC returns the replacement universal product code.
func (c UpdateBeerCommand) UPC() string { return c.upc }

// Price returns the replacement unit price.
func (c UpdateBeerCommand) Price() decimal.Decimal { return c.price }

// QuantityOnHand returns the replacement stocked quantity.
func (c UpdateBeerCommand) QuantityOnHand() int { return c.quantityOnHand }
