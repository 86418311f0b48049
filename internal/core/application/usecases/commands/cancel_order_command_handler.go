package commands

import (
	"context"
)

// CancelOrderCommandHandler owns the externally exposed half of the order
// state machine. Orders in NEW, PENDING, or PROCESSING are moved to
// CANCELLED; terminal orders are rejected with an InvalidOrderStateError
// carrying the current and attempted status, and the record is not touched.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. Returns ObjectNotFound when the order
// does not exist (a hard failure, matching the order query service) and
// InvalidOrderStateError when the order is already terminal. The persisted
// write is a compare-and-swap on the version read here; a concurrent update
// surfaces as a VersionConflict.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
