package commands

import (
	"context"
)

// UpdateBeerCommandHandler replaces a beer's mutable fields. The write is a
// compare-and-swap against the version read inside the transaction; a
// concurrent writer surfaces as a VersionConflict, never a silent overwrite.
type UpdateBeerCommandHandler struct {
	uowFactory BeerUoWFactory
}

// NewUpdateBeerCommandHandler creates a handler for beer updates.
func NewUpdateBeerCommandHandler(uowFactory BeerUoWFactory) UpdateBeerCommandHandler {
	return UpdateBeerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the beer, applies the replacement fields, and persists.
// Returns ObjectNotFound when the beer does not exist.
func (h *UpdateBeerCommandHandler) Handle(ctx context.Context, cmd UpdateBeerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	beerRepo := uow.BeerRepository()
	aggregate, err := beerRepo.Get(ctx, cmd.BeerID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(
		cmd.Name(), cmd.Style(), cmd.UPC(), cmd.Price(), cmd.QuantityOnHand()); err != nil {
		return err
	}

	if err = beerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
