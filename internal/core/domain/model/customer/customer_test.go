package customer_test

import (
	"testing"

	"beerorders/internal/core/domain/model/customer"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with valid fields", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "John Thompson", "john.thompson@example.com", "555-1234")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "John Thompson", c.Name())
		assert.Equal(t, "john.thompson@example.com", c.Email())
		assert.Equal(t, "555-1234", c.Phone())
		assert.Equal(t, 0, c.Version())
	})

	t.Run("email and phone are optional", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "John Thompson", "", "")

		require.NoError(t, err)
		assert.Empty(t, c.Email())
		assert.Empty(t, c.Phone())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "a@b.example", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "John Thompson", "not-an-email", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("keeps stored version", func(t *testing.T) {
		c, err := customer.RestoreCustomer(kernel.NewUUID(), "Jane Smith", "", "", 5)

		require.NoError(t, err)
		assert.Equal(t, 5, c.Version())
	})
}

func TestCustomer_Update(t *testing.T) {
	t.Run("replaces mutable fields", func(t *testing.T) {
		c, err := customer.RestoreCustomer(kernel.NewUUID(), "Jane Smith", "", "", 1)
		require.NoError(t, err)

		err = c.Update("Jane Doe", "jane.doe@example.com", "555-9876")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, "jane.doe@example.com", c.Email())
		assert.Equal(t, 1, c.Version())
	})

	t.Run("rejects invalid replacement", func(t *testing.T) {
		c, err := customer.RestoreCustomer(kernel.NewUUID(), "Jane Smith", "", "", 1)
		require.NoError(t, err)

		err = c.Update("", "broken", "")

		require.Error(t, err)
		assert.Equal(t, "Jane Smith", c.Name())
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var c customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})
}
