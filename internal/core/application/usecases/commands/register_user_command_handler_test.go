package commands_test

import (
	"testing"

	"ridetrack/internal/core/application/usecases/commands"
	"ridetrack/internal/core/domain/model/user"
	"ridetrack/internal/pkg/auth"
	"ridetrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegisterUserCommand(t *testing.T) commands.RegisterUserCommand {
	t.Helper()
	cmd, err := commands.NewRegisterUserCommand(
		"Ada", "Lovelace", "ada@example.com", "s3cret!", "+15550100", "12 Analytical Row", "",
	)
	require.NoError(t, err)
	return cmd
}

func TestNewRegisterUserCommand_Validation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (commands.RegisterUserCommand, error)
		wantErr error
	}{
		{
			name: "missing email",
			build: func() (commands.RegisterUserCommand, error) {
				return commands.NewRegisterUserCommand("Ada", "Lovelace", "", "s3cret!", "", "", "")
			},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "malformed email",
			build: func() (commands.RegisterUserCommand, error) {
				return commands.NewRegisterUserCommand("Ada", "Lovelace", "not-an-email", "s3cret!", "", "", "")
			},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "short password",
			build: func() (commands.RegisterUserCommand, error) {
				return commands.NewRegisterUserCommand("Ada", "Lovelace", "ada@example.com", "abc", "", "", "")
			},
			wantErr: errs.ErrValueIsOutOfRange,
		},
		{
			name: "unknown role",
			build: func() (commands.RegisterUserCommand, error) {
				return commands.NewRegisterUserCommand("Ada", "Lovelace", "ada@example.com", "s3cret!", "", "", user.Role("root"))
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

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterUserCommand(t)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, user.RoleCustomer, created.Role())
	assert.True(t, created.IsActive())
	// The stored credential is a hash of the submitted password, never the password.
	assert.NotEqual(t, "s3cret!", created.PasswordHash())
	assert.True(t, auth.CheckPassword(created.PasswordHash(), "s3cret!"))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd := validRegisterUserCommand(t)

	duplicate := errs.NewDuplicateIdentifierError("email", "ada@example.com")

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(duplicate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateIdentifier)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
