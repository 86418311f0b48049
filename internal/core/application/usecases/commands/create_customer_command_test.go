package commands_test

import (
	"testing"

	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(id, "John Thompson", "john@example.com", "555-0101")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.CustomerID())
	assert.Equal(t, "John Thompson", cmd.Name())
	assert.Equal(t, "john@example.com", cmd.Email())
	assert.Equal(t, "555-0101", cmd.Phone())
}

func TestNewCreateCustomerCommand_EmailAndPhoneOptional(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "John Thompson", "", "")
	require.NoError(t, err)
}

func TestNewCreateCustomerCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "", "john@example.com", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateCustomerCommand_MalformedEmail(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "John Thompson", "not-an-email", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
