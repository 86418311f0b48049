package queries_test

import (
	"testing"

	"beerorders/internal/core/application/usecases/queries"
	"beerorders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerByIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerByIDQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetCustomerByIDQuery_InvalidCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerByIDQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetCustomerByIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerByIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerByIDQueryIsNotConstructed)
}
