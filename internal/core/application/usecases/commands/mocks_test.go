package commands_test

import (
	"context"
	"math/rand"
	"time"

	"ridetrack/internal/core/application/usecases/commands"
	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/order"
	"ridetrack/internal/core/domain/model/tracking"
	"ridetrack/internal/core/domain/model/user"
	"ridetrack/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllDueScheduled(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, t *tracking.Tracking) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackingRepository) Update(ctx context.Context, t *tracking.Tracking) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackingRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Tracking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Tracking), args.Error(1)
}

func (m *MockTrackingRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Tracking), args.Error(1)
}

func (m *MockTrackingRepository) GetByNumber(ctx context.Context, number tracking.Number) (*tracking.Tracking, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Tracking), args.Error(1)
}

type MockTrackingHistoryRepository struct{ mock.Mock }

func (m *MockTrackingHistoryRepository) Append(ctx context.Context, event *tracking.HistoryEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingHistoryRepository) ListFor(ctx context.Context, trackingID kernel.UUID) ([]*tracking.HistoryEvent, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.HistoryEvent), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// MockUoW implements every unit-of-work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) TrackingHistoryRepository() ports.TrackingHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingHistoryRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockCreateTrackingUoWFactory struct{ mock.Mock }

func (m *MockCreateTrackingUoWFactory) Create() commands.CreateTrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateTrackingUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

func newStoredOrder(t interface{ Fatalf(string, ...any) }) *order.Order {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateNumber(time.Now(), rnd),
		kernel.NewUUID(),
		"Central Station",
		"Airport",
		12.5,
		24,
		decimal.NewFromFloat(18.40),
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("newStoredOrder: %v", err)
	}
	return aggregate
}

func newStoredTracking(t interface{ Fatalf(string, ...any) }, orderID kernel.UUID) *tracking.Tracking {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	aggregate, err := tracking.NewTracking(
		kernel.NewUUID(),
		tracking.GenerateNumber(time.Now(), rnd),
		orderID,
		"",
		"Depot",
		nil,
		"",
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("newStoredTracking: %v", err)
	}
	return aggregate
}

func timeNow() time.Time {
	return time.Now().UTC()
}
