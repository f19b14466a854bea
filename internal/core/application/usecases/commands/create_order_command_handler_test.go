package commands_test

import (
	"errors"
	"testing"
	"time"

	"ridetrack/internal/core/application/usecases/commands"
	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/order"
	"ridetrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "Central Station", "Airport",
		12.5, 24, decimal.NewFromFloat(18.40), "card", "", nil,
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	riderID := kernel.NewUUID()

	tests := []struct {
		name    string
		build   func() (commands.CreateOrderCommand, error)
		wantErr error
	}{
		{
			name: "missing rider",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(kernel.UUID{}, "A", "B", 1, 1, decimal.Zero, "", "", nil)
			},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "missing pickup",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(riderID, "", "B", 1, 1, decimal.Zero, "", "", nil)
			},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "zero distance",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(riderID, "A", "B", 0, 1, decimal.Zero, "", "", nil)
			},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "negative fare",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(riderID, "A", "B", 1, 1, decimal.NewFromInt(-1), "", "", nil)
			},
			wantErr: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.StatusPending, created.Status())
	assert.Equal(t, order.PaymentPending, created.PaymentStatus())
	assert.Equal(t, "card", created.PaymentMethod())
	assert.Regexp(t, `^RIDE\d{6}-\d{4}$`, created.Number().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnNumberCollision(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	duplicate := errs.NewDuplicateIdentifierError("orderNumber", "RIDE202608-0001")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	// First attempt collides, second succeeds with a fresh number.
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(duplicate).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_GivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	duplicate := errs.NewDuplicateIdentifierError("orderNumber", "RIDE202608-0001")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("OrderRepository").Return(repo).Times(3)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(duplicate).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateIdentifier)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NonRetryableErrorStops(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("connection lost")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AppliesScheduledTime(t *testing.T) {
	ctx := t.Context()
	scheduled := time.Now().Add(2 * time.Hour)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "A", "B", 1, 1, decimal.Zero, "", "pick me up at the gate", &scheduled,
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created.ScheduledTime())
	assert.True(t, created.ScheduledTime().Equal(scheduled))
	assert.Equal(t, "pick me up at the gate", created.Notes())
}
