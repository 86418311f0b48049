package commands

import (
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"
)

var ErrDeleteBeerCommandIsNotConstructed = errors.New(
	"DeleteBeerCommand must be created via NewDeleteBeerCommand constructor",
)

// DeleteBeerCommand represents a request to remove a beer from the catalog.
type DeleteBeerCommand struct {
	beerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteBeerCommand creates a command to delete the identified beer.
func NewDeleteBeerCommand(beerID kernel.UUID) (DeleteBeerCommand, error) {
	if err := beerID.Validate(); err != nil {
		return DeleteBeerCommand{}, err
	}

	return DeleteBeerCommand{
		beerID: beerID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBeerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBeerCommandIsNotConstructed)
}

// BeerID returns the identifier of the beer to delete.
func (c DeleteBeerCommand) BeerID() kernel.UUID { return c.beerID }
