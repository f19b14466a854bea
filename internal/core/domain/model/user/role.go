package user

import "ridetrack/internal/pkg/errs"

// Role classifies what a user may do in the system.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", errValueOutsideVocabulary(string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
