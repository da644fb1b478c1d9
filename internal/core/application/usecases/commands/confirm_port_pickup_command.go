package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrConfirmPortPickupCommandIsNotConstructed = errors.New(
	"ConfirmPortPickupCommand must be created via NewConfirmPortPickupCommand constructor",
)

// ConfirmPortPickupCommand picks up cargo at a port, airport or warehouse. The
// location is free text and becomes the ledger entry's location name.
type ConfirmPortPickupCommand struct { //nolint:recvcheck //using for validation
	driverTarget

	portLocation string
	notes        string

	guard guard.ConstructorGuard
}

func NewConfirmPortPickupCommand(
	actor *account.Account,
	shipmentID kernel.UUID,
	portLocation string,
	notes string,
) (ConfirmPortPickupCommand, error) {
	target, targetErr := newDriverTarget(actor, shipmentID)

	portLocation = strings.TrimSpace(portLocation)
	var locationErr error
	if portLocation == "" {
		locationErr = errs.NewValueIsRequiredError("port location")
	}

	if err := errors.Join(targetErr, locationErr); err != nil {
		return ConfirmPortPickupCommand{}, err
	}

	return ConfirmPortPickupCommand{
		driverTarget: target,
		portLocation: portLocation,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPortPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPortPickupCommandIsNotConstructed)
}

func (c ConfirmPortPickupCommand) PortLocation() string {
	return c.portLocation
}

func (c ConfirmPortPickupCommand) Notes() string {
	return c.notes
}
