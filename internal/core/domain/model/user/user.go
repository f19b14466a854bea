package user

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

func errValueOutsideVocabulary(v string) error {
	return fmt.Errorf("%q is not in the allowed set", v)
}

// User is an account that can request trips (customer), fulfil them (driver)
// or administer the system (admin). The password hash is stored, never the
// password itself; read models must not expose it.
type User struct {
	id           kernel.UUID
	firstName    string
	lastName     string
	email        string
	passwordHash string
	phoneNumber  string
	address      string
	role         Role
	isActive     bool
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates an active user. An empty role defaults to customer.
// The passwordHash must already be hashed by the caller.
func NewUser(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	passwordHash string,
	phoneNumber string,
	address string,
	role Role,
	createdAt time.Time,
) (*User, error) {
	if role == "" {
		role = RoleCustomer
	}

	u := &User{
		phoneNumber:   phoneNumber,
		address:       address,
		isActive:      true,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setFirstName(firstName),
		u.setLastName(lastName),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	passwordHash string,
	phoneNumber string,
	address string,
	role Role,
	isActive bool,
	createdAt time.Time,
) (*User, error) {
	u, err := NewUser(id, firstName, lastName, email, passwordHash, phoneNumber, address, role, createdAt)
	if err != nil {
		return nil, err
	}
	u.isActive = isActive
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string { return u.lastName }
func (u *User) Email() string { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) PhoneNumber() string { return u.phoneNumber }
func (u *User) Address() string { return u.address }
func (u *User) Role() Role { return u.role }
func (u *User) IsActive() bool { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Deactivate marks the account as inactive. Inactive users cannot log in.
func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setFirstName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	u.firstName = name
	return nil
}

func (u *User) setLastName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	u.lastName = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
