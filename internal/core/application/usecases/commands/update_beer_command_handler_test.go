package commands_test

import (
	"context"
	"testing"

	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/domain/model/beer"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/ports"
	"beerorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogBeerRepository struct{ mock.Mock }

func (m *MockCatalogBeerRepository) Add(ctx context.Context, b *beer.Beer) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockCatalogBeerRepository) Update(ctx context.Context, b *beer.Beer) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockCatalogBeerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCatalogBeerRepository) Get(ctx context.Context, id kernel.UUID) (*beer.Beer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*beer.Beer), args.Error(1)
}

type MockBeerUoW struct{ mock.Mock }

func (m *MockBeerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBeerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBeerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBeerUoW) BeerRepository() ports.BeerRepository {
	args := m.Called()
	return args.Get(0).(ports.BeerRepository)
}

type MockBeerUoWFactory struct{ mock.Mock }

func (m *MockBeerUoWFactory) Create() commands.BeerUoW {
	args := m.Called()
	return args.Get(0).(commands.BeerUoW)
}

func TestUpdateBeerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	beerID := kernel.NewUUID()
	newPrice := decimal.NewFromFloat(13.45)
	cmd, err := commands.NewUpdateBeerCommand(beerID, "Pinball Porter", "PORTER", "0083783375213", newPrice, 80)
	require.NoError(t, err)

	aggregate, err := beer.RestoreBeer(beerID, "Galaxy Cat", "PALE_ALE", "0631234200036",
		decimal.NewFromFloat(12.95), 120, 3)
	require.NoError(t, err)

	repo := new(MockCatalogBeerRepository)
	uow := new(MockBeerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BeerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, beerID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBeerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBeerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Pinball Porter", aggregate.Name())
	assert.Equal(t, "PORTER", aggregate.Style())
	assert.True(t, newPrice.Equal(aggregate.Price()))
	assert.Equal(t, 80, aggregate.QuantityOnHand())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateBeerCommandHandler_Handle_BeerNotFound(t *testing.T) {
	ctx := t.Context()
	beerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateBeerCommand(beerID, "Pinball Porter", "PORTER", "0083783375213",
		decimal.NewFromFloat(13.45), 80)
	require.NoError(t, err)

	repo := new(MockCatalogBeerRepository)
	uow := new(MockBeerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BeerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, beerID).
			Return(nil, errs.NewObjectNotFoundError("beerID", beerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBeerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBeerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateBeerCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	beerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateBeerCommand(beerID, "Pinball Porter", "PORTER", "0083783375213",
		decimal.NewFromFloat(13.45), 80)
	require.NoError(t, err)

	aggregate, err := beer.RestoreBeer(beerID, "Galaxy Cat", "PALE_ALE", "0631234200036",
		decimal.NewFromFloat(12.95), 120, 3)
	require.NoError(t, err)

	repo := new(MockCatalogBeerRepository)
	uow := new(MockBeerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BeerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, beerID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).
			Return(errs.NewVersionConflictError("beerID", beerID, 3)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBeerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBeerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteBeerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	beerID := kernel.NewUUID()
	cmd, err := commands.NewDeleteBeerCommand(beerID)
	require.NoError(t, err)

	repo := new(MockCatalogBeerRepository)
	uow := new(MockBeerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BeerRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, beerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBeerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteBeerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteBeerCommandHandler_Handle_BeerNotFound(t *testing.T) {
	ctx := t.Context()
	beerID := kernel.NewUUID()
	cmd, err := commands.NewDeleteBeerCommand(beerID)
	require.NoError(t, err)

	repo := new(MockCatalogBeerRepository)
	uow := new(MockBeerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BeerRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, beerID).
			Return(errs.NewObjectNotFoundError("beerID", beerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBeerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteBeerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
