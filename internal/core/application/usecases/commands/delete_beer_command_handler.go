package commands

import (
	"context"
)

// DeleteBeerCommandHandler removes beers from the catalog.
type DeleteBeerCommandHandler struct {
	uowFactory BeerUoWFactory
}

// NewDeleteBeerCommandHandler creates a handler for beer deletion.
func NewDeleteBeerCommandHandler(uowFactory BeerUoWFactory) DeleteBeerCommandHandler {
	return DeleteBeerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the beer. Returns ObjectNotFound when no row matches.
func (h *DeleteBeerCommandHandler) Handle(ctx context.Context, cmd DeleteBeerCommand) error {
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

	if err := uow.BeerRepository().Delete(ctx, cmd.BeerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
