package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand binds a driver to a shipment on an administrator's behalf.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(admin, shipmentID, driverID)
//	if err != nil {
//	    return err
//	}
//	assigned, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // shipment or driver does not exist
//	case errors.Is(err, account.ErrDriverIsInactive):
//	    // driver must be approved first
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	actor      *account.Account
	shipmentID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(actor *account.Account, shipmentID, driverID kernel.UUID) (AssignDriverCommand, error) {
	var driverErr error
	if err := driverID.Validate(); err != nil {
		driverErr = errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}

	if err := errors.Join(validateActor(actor), validateShipmentID(shipmentID), driverErr); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		actor:      actor,
		shipmentID: shipmentID,
		driverID:   driverID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) Actor() *account.Account {
	return c.actor
}

func (c AssignDriverCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
