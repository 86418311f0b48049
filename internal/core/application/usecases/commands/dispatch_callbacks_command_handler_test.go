package commands_test

import (
	"context"
	"errors"
	"testing"

	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatchOrderRepository struct{ mock.Mock }

func (m *MockDispatchOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockDispatchOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockDispatchOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDispatchOrderRepository) GetAllWithPendingCallback(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCallbackNotifier struct{ mock.Mock }

func (m *MockCallbackNotifier) Notify(
	ctx context.Context, url string, orderID kernel.UUID, status order.Status,
) error {
	args := m.Called(ctx, url, orderID, status)
	return args.Error(0)
}

func cancelledOrderWithCallback(t *testing.T, url string) *order.Order {
	t.Helper()
	line, err := order.RestoreLine(kernel.NewUUID(), kernel.NewUUID(), 1, 0)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.StatusCancelled,
		url, false, 2, []order.Line{line})
	require.NoError(t, err)
	return o
}

func TestDispatchCallbacksCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDispatchCallbacksCommand()
	require.NoError(t, err)

	pending := cancelledOrderWithCallback(t, "http://example.com/hook")

	repo := new(MockDispatchOrderRepository)
	uow := new(MockDispatchUoW)
	notifier := new(MockCallbackNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllWithPendingCallback", mock.Anything).Return([]*order.Order{pending}, nil).Once(),
		notifier.On("Notify", mock.Anything, "http://example.com/hook", pending.ID(), order.StatusCancelled).
			Return(nil).Once(),
		repo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchCallbacksCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, pending.CallbackSent())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDispatchCallbacksCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDispatchCallbacksCommand()
	require.NoError(t, err)

	repo := new(MockDispatchOrderRepository)
	uow := new(MockDispatchUoW)
	notifier := new(MockCallbackNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllWithPendingCallback", mock.Anything).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchCallbacksCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchCallbacksCommandHandler_Handle_NotifyFailureRetriesNextRun(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDispatchCallbacksCommand()
	require.NoError(t, err)

	failing := cancelledOrderWithCallback(t, "http://example.com/down")
	healthy := cancelledOrderWithCallback(t, "http://example.com/up")

	repo := new(MockDispatchOrderRepository)
	uow := new(MockDispatchUoW)
	notifier := new(MockCallbackNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllWithPendingCallback", mock.Anything).
			Return([]*order.Order{failing, healthy}, nil).Once(),
		notifier.On("Notify", mock.Anything, "http://example.com/down", failing.ID(), order.StatusCancelled).
			Return(errors.New("connection refused")).Once(),
		notifier.On("Notify", mock.Anything, "http://example.com/up", healthy.ID(), order.StatusCancelled).
			Return(nil).Once(),
		repo.On("Update", mock.Anything, healthy).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchCallbacksCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	// The failed order stays pending; the healthy one is marked delivered.
	assert.False(t, failing.CallbackSent())
	assert.True(t, healthy.CallbackSent())
	repo.AssertNotCalled(t, "Update", mock.Anything, failing)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
