package queries_test

import (
	"testing"

	"beerorders/internal/core/application/usecases/queries"
	"beerorders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderByIDQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderByIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
}
