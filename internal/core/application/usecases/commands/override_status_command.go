package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrOverrideStatusCommandIsNotConstructed = errors.New(
	"OverrideStatusCommand must be created via NewOverrideStatusCommand constructor",
)

// OverrideStatusCommand forces a shipment into any known status. The raw status
// is parsed here, so an unknown value fails before anything is loaded, with an
// error that lists the legal values.
type OverrideStatusCommand struct { //nolint:recvcheck //using for validation
	actor      *account.Account
	shipmentID kernel.UUID
	status     shipment.Status

	guard guard.ConstructorGuard
}

func NewOverrideStatusCommand(actor *account.Account, shipmentID kernel.UUID, rawStatus string) (OverrideStatusCommand, error) {
	status, statusErr := shipment.ParseStatus(rawStatus)

	if err := errors.Join(validateActor(actor), validateShipmentID(shipmentID), statusErr); err != nil {
		return OverrideStatusCommand{}, err
	}

	return OverrideStatusCommand{
		actor:      actor,
		shipmentID: shipmentID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c OverrideStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideStatusCommandIsNotConstructed)
}

func (c OverrideStatusCommand) Actor() *account.Account {
	return c.actor
}

func (c OverrideStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c OverrideStatusCommand) Status() shipment.Status {
	return c.status
}
