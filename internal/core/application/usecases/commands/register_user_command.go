package commands

import (
	"errors"
	"net/mail"

	"ridetrack/internal/core/domain/model/user"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit
)

// RegisterUserCommand represents a request to create a new account.
// It carries the plaintext password; the handler hashes it before anything
// touches storage.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	firstName   string
	lastName    string
	email       string
	password    string
	phoneNumber string
	address     string
	role        user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
// An empty role defaults to customer at the aggregate level.
func NewRegisterUserCommand(
	firstName string,
	lastName string,
	email string,
	password string,
	phoneNumber string,
	address string,
	role user.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phoneNumber: phoneNumber,
		address:     address,
		role:        role,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.validateRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) FirstName() string { return c.firstName }
func (c RegisterUserCommand) LastName() string { return c.lastName }
func (c RegisterUserCommand) Email() string { return c.email }
func (c RegisterUserCommand) Password() string { return c.password }
func (c RegisterUserCommand) PhoneNumber() string { return c.phoneNumber }
func (c RegisterUserCommand) Address() string { return c.address }
func (c RegisterUserCommand) Role() user.Role { return c.role }

func (c *RegisterUserCommand) setFirstName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	c.firstName = name
	return nil
}

func (c *RegisterUserCommand) setLastName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.lastName = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, maxPasswordLength)
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) validateRole(role user.Role) error {
	if role == "" {
		return nil
	}
	return role.Validate()
}
