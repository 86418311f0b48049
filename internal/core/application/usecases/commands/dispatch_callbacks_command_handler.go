package commands

import (
	"context"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
)

// CallbackNotifier delivers an order status notification to a customer
// supplied callback URL.
type CallbackNotifier interface {
	Notify(ctx context.Context, url string, orderID kernel.UUID, status order.Status) error
}

// DispatchCallbacksCommandHandler finds orders with an undelivered status
// callback, notifies each registered URL, and marks the order on success.
// A failed notification leaves the order untouched so the next run retries it.
type DispatchCallbacksCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   CallbackNotifier
}

// NewDispatchCallbacksCommandHandler creates a handler for callback dispatch.
func NewDispatchCallbacksCommandHandler(
	uowFactory OrderUoWFactory, notifier CallbackNotifier,
) DispatchCallbacksCommandHandler {
	return DispatchCallbacksCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle notifies every pending callback. Notification failures are collected
// per order rather than aborting the batch; the first error is returned after
// all orders have been attempted.
func (h *DispatchCallbacksCommandHandler) Handle(ctx context.Context, cmd DispatchCallbacksCommand) error {
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
	pending, err := orderRepo.GetAllWithPendingCallback(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, aggregate := range pending {
		if err = h.notifier.Notify(ctx, aggregate.CallbackURL(), aggregate.ID(), aggregate.Status()); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		aggregate.MarkCallbackSent()
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return firstErr
}
