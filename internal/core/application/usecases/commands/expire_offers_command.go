package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrExpireOffersCommandIsNotConstructed = errors.New(
	"ExpireOffersCommand must be created via NewExpireOffersCommand constructor",
)

// ExpireOffersCommand triggers the offer bookkeeping sweep: offers past
// their deadline become expired, and offers still live on jobs that left
// the requested status become superseded.
type ExpireOffersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireOffersCommand creates a command to run the sweep.
func NewExpireOffersCommand() ExpireOffersCommand {
	return ExpireOffersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireOffersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOffersCommandIsNotConstructed)
}
