package commands

import (
	"context"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler builds and persists the order aggregate.
//
// The handler resolves the customer first, then every requested beer in
// request order, failing fast on the first unresolved reference. Only when
// every reference resolves does it assemble the Order in NEW status and
// persist it together with all its lines in one transaction. No partial
// aggregate is ever written.
//
// Beer and customer records are read-only here: quantity on hand is not
// decremented when an order is created.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning order, customer, and beer repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. Returns ObjectNotFound for an
// unresolved customer or beer reference; on success the order identified by
// cmd.OrderID() exists with one line per requested item, in request order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	// Resolve the customer before touching anything else.
	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	beerRepo := uow.BeerRepository()
	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		if _, err := beerRepo.Get(ctx, item.BeerID()); err != nil {
			return err
		}

		line, err := order.NewLine(kernel.NewUUID(), item.BeerID(), item.Quantity())
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.CallbackURL(), lines)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
