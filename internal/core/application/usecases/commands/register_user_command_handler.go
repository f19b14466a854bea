package commands

import (
	"context"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/user"
	"ridetrack/internal/pkg/auth"
)

// RegisterUserCommandHandler creates new accounts.
// The email's unique constraint surfaces a duplicate registration as a
// duplicate-identifier error; this one is not retryable.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle hashes the password, builds the aggregate and persists it.
// Returns the created user.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(
		kernel.NewUUID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		passwordHash,
		cmd.PhoneNumber(),
		cmd.Address(),
		cmd.Role(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
