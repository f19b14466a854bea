package userrepo_test

import (
	"context"
	"testing"
	"time"

	"ridetrack/internal/adapters/out/postgres/userrepo"
	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/user"
	"ridetrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite verifies user persistence behavior
// against a real PostgreSQL container.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) createTestUser(email string) *user.User {
	aggregate, err := user.NewUser(
		kernel.NewUUID(),
		"Ada", "Lovelace",
		email,
		"$2a$10$abcdefghijklmnopqrstuv",
		"+15550100", "12 Analytical Row",
		user.RoleCustomer,
		time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_And_Get() {
	ctx := context.Background()
	aggregate := suite.createTestUser("ada@example.com")

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(aggregate))
	suite.Equal("ada@example.com", retrieved.Email())
	suite.Equal(user.RoleCustomer, retrieved.Role())
	suite.True(retrieved.IsActive())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsDuplicateIdentifierError() {
	ctx := context.Background()

	first := suite.createTestUser("ada@example.com")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestUser("ada@example.com")
	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrDuplicateIdentifier)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail() {
	ctx := context.Background()
	aggregate := suite.createTestUser("ada@example.com")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	retrieved, err := suite.repository.GetByEmail(ctx, "ada@example.com")
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(aggregate))

	_, err = suite.repository.GetByEmail(ctx, "nobody@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByEmail(ctx, "")
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_PersistsDeactivation() {
	ctx := context.Background()
	aggregate := suite.createTestUser("ada@example.com")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	aggregate.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())
	suite.tracker.AssertExpectations(suite.T())
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
