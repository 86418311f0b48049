package commands

import (
	"context"

	"beerorders/internal/core/domain/model/beer"
)

// CreateBeerCommandHandler persists new beers to the catalog.
type CreateBeerCommandHandler struct {
	uowFactory BeerUoWFactory
}

// NewCreateBeerCommandHandler creates a handler for beer creation.
func NewCreateBeerCommandHandler(uowFactory BeerUoWFactory) CreateBeerCommandHandler {
	return CreateBeerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the beer aggregate and persists it.
func (h *CreateBeerCommandHandler) Handle(ctx context.Context, cmd CreateBeerCommand) error {
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

	aggregate, err := beer.NewBeer(
		cmd.BeerID(), cmd.Name(), cmd.Style(), cmd.UPC(), cmd.Price(), cmd.QuantityOnHand())
	if err != nil {
		return err
	}

	if err = uow.BeerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
