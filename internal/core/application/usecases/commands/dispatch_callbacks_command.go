package commands

import (
	"errors"

	"beerorders/internal/pkg/guard"
)

var ErrDispatchCallbacksCommandIsNotConstructed = errors.New(
	"DispatchCallbacksCommand must be created via NewDispatchCallbacksCommand constructor",
)

// DispatchCallbacksCommand triggers delivery of pending order status
// callbacks. It carries no parameters; the handler discovers the work itself.
type DispatchCallbacksCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchCallbacksCommand creates a command to dispatch pending callbacks.
func NewDispatchCallbacksCommand() (DispatchCallbacksCommand, error) {
	return DispatchCallbacksCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchCallbacksCommand) Validate() error {
	return c.guard.Validate(ErrDispatchCallbacksCommandIsNotConstructed)
}
