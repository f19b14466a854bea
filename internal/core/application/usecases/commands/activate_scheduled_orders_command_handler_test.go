package commands_test

import (
	"testing"
	"time"

	"ridetrack/internal/core/application/usecases/commands"
	"ridetrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivateScheduledOrdersCommandHandler_Handle_PromotesDueOrders(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewActivateScheduledOrdersCommand()
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	first := newStoredOrder(t)
	require.NoError(t, first.ApplyPatch(order.Patch{ScheduledTime: &past}))
	second := newStoredOrder(t)
	require.NoError(t, second.ApplyPatch(order.Patch{ScheduledTime: &past}))

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllDueScheduled", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateScheduledOrdersCommandHandler(factory)
	activated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, activated)
	assert.Equal(t, order.StatusSearching, first.Status())
	assert.Equal(t, order.StatusSearching, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestActivateScheduledOrdersCommandHandler_Handle_NothingDue(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewActivateScheduledOrdersCommand()
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllDueScheduled", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewActivateScheduledOrdersCommandHandler(factory)
	activated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, activated)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
