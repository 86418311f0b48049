package order_test

import (
	"testing"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, quantity int) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), quantity)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("creates line with positive quantity", func(t *testing.T) {
		id := kernel.NewUUID()
		beerID := kernel.NewUUID()

		line, err := order.NewLine(id, beerID, 10)

		require.NoError(t, err)
		assert.True(t, line.ID().IsEqual(id))
		assert.True(t, line.BeerID().IsEqual(beerID))
		assert.Equal(t, 10, line.Quantity())
		assert.Equal(t, 0, line.Version())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -10} {
			_, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), quantity)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects zero value beer reference", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), kernel.UUID{}, 1)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var line order.Line
		require.Error(t, line.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in NEW status preserving line order", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		lines := []order.Line{mustLine(t, 10), mustLine(t, 2), mustLine(t, 7)}

		o, err := order.NewOrder(id, customerID, "https://example.com/callback", lines)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.StatusNew, o.Status())
		assert.Equal(t, "https://example.com/callback", o.CallbackURL())
		assert.False(t, o.CallbackSent())
		assert.Equal(t, 0, o.Version())

		require.Len(t, o.Lines(), 3)
		for i, line := range lines {
			assert.True(t, o.Lines()[i].ID().IsEqual(line.ID()))
		}
	})

	t.Run("callback URL is optional", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []order.Line{mustLine(t, 1)})

		require.NoError(t, err)
		assert.Empty(t, o.CallbackURL())
	})

	t.Run("rejects empty line set", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed lines", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []order.Line{{}})

		require.Error(t, err)
	})

	t.Run("rejects zero value customer reference", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, "", []order.Line{mustLine(t, 1)})

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores status, callback state, and version", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 3)}

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			order.StatusProcessing, "https://example.com/cb", false, 4, lines)

		require.NoError(t, err)
		assert.Equal(t, order.StatusProcessing, o.Status())
		assert.Equal(t, 4, o.Version())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			order.StatusUnknown, "", false, 0, []order.Line{mustLine(t, 3)})

		require.Error(t, err)
	})
}

func TestOrder_Cancel(t *testing.T) {
	newOrderInStatus := func(t *testing.T, status order.Status) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			status, "", false, 1, []order.Line{mustLine(t, 5)})
		require.NoError(t, err)
		return o
	}

	t.Run("cancels orders in cancellable states", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusNew, order.StatusPending, order.StatusProcessing,
		} {
			t.Run("from "+status.String(), func(t *testing.T) {
				o := newOrderInStatus(t, status)

				require.NoError(t, o.Cancel())
				assert.Equal(t, order.StatusCancelled, o.Status())
			})
		}
	})

	t.Run("second cancel fails with CANCELLED to CANCELLED", func(t *testing.T) {
		o := newOrderInStatus(t, order.StatusNew)
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.Error(t, err)
		var stateErr *order.InvalidOrderStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, order.StatusCancelled, stateErr.Current)
		assert.Equal(t, order.StatusCancelled, stateErr.Target)
	})

	t.Run("terminal orders are left unchanged", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusCompleted, order.StatusCancelled, order.StatusDeliveryException,
		} {
			t.Run("from "+status.String(), func(t *testing.T) {
				o := newOrderInStatus(t, status)

				err := o.Cancel()

				require.Error(t, err)
				assert.Equal(t, status, o.Status())
			})
		}
	})
}

func TestOrder_CallbackPending(t *testing.T) {
	t.Run("pending when cancelled with unsent callback", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			order.StatusCancelled, "https://example.com/cb", false, 1, []order.Line{mustLine(t, 1)})
		require.NoError(t, err)

		assert.True(t, o.CallbackPending())
	})

	t.Run("not pending without callback URL", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			order.StatusCancelled, "", false, 1, []order.Line{mustLine(t, 1)})
		require.NoError(t, err)

		assert.False(t, o.CallbackPending())
	})

	t.Run("not pending after MarkCallbackSent", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			order.StatusCancelled, "https://example.com/cb", false, 1, []order.Line{mustLine(t, 1)})
		require.NoError(t, err)

		o.MarkCallbackSent()

		assert.False(t, o.CallbackPending())
		assert.True(t, o.CallbackSent())
	})

	t.Run("not pending while order is active", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(),
			order.StatusNew, "https://example.com/cb", false, 1, []order.Line{mustLine(t, 1)})
		require.NoError(t, err)

		assert.False(t, o.CallbackPending())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
