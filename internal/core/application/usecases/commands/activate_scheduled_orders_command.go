package commands

import (
	"errors"

	"ridetrack/internal/pkg/guard"
)

var ErrActivateScheduledOrdersCommandIsNotConstructed = errors.New(
	"ActivateScheduledOrdersCommand must be created via NewActivateScheduledOrdersCommand constructor",
)

// ActivateScheduledOrdersCommand promotes pending orders whose scheduled
// pickup time has arrived to the searching status. Issued periodically by
// the scheduled-order job.
type ActivateScheduledOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewActivateScheduledOrdersCommand creates the activation command.
func NewActivateScheduledOrdersCommand() (ActivateScheduledOrdersCommand, error) {
	return ActivateScheduledOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateScheduledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrActivateScheduledOrdersCommandIsNotConstructed)
}
