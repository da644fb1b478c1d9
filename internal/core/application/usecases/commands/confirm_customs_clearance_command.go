package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrConfirmCustomsClearanceCommandIsNotConstructed = errors.New(
	"ConfirmCustomsClearanceCommand must be created via NewConfirmCustomsClearanceCommand constructor",
)

// ConfirmCustomsClearanceCommand records that an international shipment cleared customs.
type ConfirmCustomsClearanceCommand struct { //nolint:recvcheck //using for validation
	driverTarget

	notes string

	guard guard.ConstructorGuard
}

func NewConfirmCustomsClearanceCommand(
	actor *account.Account,
	shipmentID kernel.UUID,
	notes string,
) (ConfirmCustomsClearanceCommand, error) {
	target, err := newDriverTarget(actor, shipmentID)
	if err != nil {
		return ConfirmCustomsClearanceCommand{}, err
	}

	return ConfirmCustomsClearanceCommand{
		driverTarget: target,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmCustomsClearanceCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCustomsClearanceCommandIsNotConstructed)
}

func (c ConfirmCustomsClearanceCommand) Notes() string {
	return c.notes
}
