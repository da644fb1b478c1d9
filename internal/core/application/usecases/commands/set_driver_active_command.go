package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrSetDriverActiveCommandIsNotConstructed = errors.New(
	"SetDriverActiveCommand must be created via NewSetDriverActiveCommand constructor",
)

// SetDriverActiveCommand approves (active=true) or deactivates a driver.
type SetDriverActiveCommand struct { //nolint:recvcheck //using for validation
	actor    *account.Account
	driverID kernel.UUID
	active   bool

	guard guard.ConstructorGuard
}

func NewSetDriverActiveCommand(actor *account.Account, driverID kernel.UUID, active bool) (SetDriverActiveCommand, error) {
	var driverErr error
	if err := driverID.Validate(); err != nil {
		driverErr = errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}

	if err := errors.Join(validateActor(actor), driverErr); err != nil {
		return SetDriverActiveCommand{}, err
	}

	return SetDriverActiveCommand{
		actor:    actor,
		driverID: driverID,
		active:   active,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetDriverActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverActiveCommandIsNotConstructed)
}

func (c SetDriverActiveCommand) Actor() *account.Account {
	return c.actor
}

func (c SetDriverActiveCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c SetDriverActiveCommand) Active() bool {
	return c.active
}
