package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand withdraws a PENDING shipment. Only the customer who
// booked it may cancel.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      *account.Account
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelShipmentCommand(actor *account.Account, shipmentID kernel.UUID) (CancelShipmentCommand, error) {
	if err := errors.Join(validateActor(actor), validateShipmentID(shipmentID)); err != nil {
		return CancelShipmentCommand{}, err
	}

	return CancelShipmentCommand{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

func (c CancelShipmentCommand) Actor() *account.Account {
	return c.actor
}

func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
