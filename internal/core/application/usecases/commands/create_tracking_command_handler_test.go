package commands_test

import (
	"testing"

	"ridetrack/internal/core/application/usecases/commands"
	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/tracking"
	"ridetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTrackingCommand_Validation(t *testing.T) {
	t.Run("missing order id", func(t *testing.T) {
		_, err := commands.NewCreateTrackingCommand(kernel.UUID{}, "", "", nil, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewCreateTrackingCommand(kernel.NewUUID(), tracking.Status("lost"), "", nil, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCreateTrackingCommandHandler_Handle_CreatesRecordWithInitialEvent(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	cmd, err := commands.NewCreateTrackingCommand(stored.ID(), "", "Depot", nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	historyRepo := new(MockTrackingHistoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByOrderID", mock.Anything, stored.ID()).
			Return(nil, errs.NewObjectNotFoundError("tracking", stored.ID().String())).Once(),
		trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*tracking.Tracking")).Return(nil).Once(),
		uow.On("TrackingHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*tracking.HistoryEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTrackingCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result.Tracking)
	assert.False(t, result.AlreadyExisted)
	assert.Equal(t, tracking.StatusPending, result.Tracking.Status())
	assert.Regexp(t, `^TRK\d{11}$`, result.Tracking.Number().String())

	appended := historyRepo.Calls[0].Arguments.Get(1).(*tracking.HistoryEvent)
	assert.Contains(t, appended.Description(), "initialized")
	assert.True(t, appended.TrackingID().IsEqual(result.Tracking.ID()))

	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTrackingCommandHandler_Handle_AlreadyTracked_ReturnsExisting(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	existing := newStoredTracking(t, stored.ID())
	cmd, err := commands.NewCreateTrackingCommand(stored.ID(), "", "", nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByOrderID", mock.Anything, stored.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTrackingCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.AlreadyExisted)
	assert.True(t, result.Tracking.IsEqual(existing))
	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTrackingCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateTrackingCommand(orderID, "", "", nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTrackingCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTrackingCommandHandler_Handle_LostRaceReturnsWinner(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	winner := newStoredTracking(t, stored.ID())
	cmd, err := commands.NewCreateTrackingCommand(stored.ID(), "", "", nil, "")
	require.NoError(t, err)

	duplicate := errs.NewDuplicateIdentifierError("trackingNumber", "TRK12345678042")

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("TrackingRepository").Return(trackingRepo)
	// Not tracked when we look, but a concurrent request wins the insert race;
	// the follow-up lookup finds the winner.
	trackingRepo.On("GetByOrderID", mock.Anything, stored.ID()).
		Return(nil, errs.NewObjectNotFoundError("tracking", stored.ID().String())).Once()
	trackingRepo.On("Add", mock.Anything, mock.AnythingOfType("*tracking.Tracking")).Return(duplicate).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	trackingRepo.On("GetByOrderID", mock.Anything, stored.ID()).Return(winner, nil).Once()

	factory := new(MockCreateTrackingUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewCreateTrackingCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.AlreadyExisted)
	assert.True(t, result.Tracking.IsEqual(winner))
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
