package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrFailShipmentCommandIsNotConstructed = errors.New(
	"FailShipmentCommand must be created via NewFailShipmentCommand constructor",
)

// FailShipmentCommand records a failed delivery attempt. The reason must be one
// of shipment.FailureReasons.
type FailShipmentCommand struct { //nolint:recvcheck //using for validation
	driverTarget

	reason shipment.FailureReason
	notes  string

	guard guard.ConstructorGuard
}

func NewFailShipmentCommand(
	actor *account.Account,
	shipmentID kernel.UUID,
	rawReason string,
	notes string,
) (FailShipmentCommand, error) {
	target, targetErr := newDriverTarget(actor, shipmentID)
	reason, reasonErr := shipment.ParseFailureReason(rawReason)

	if err := errors.Join(targetErr, reasonErr); err != nil {
		return FailShipmentCommand{}, err
	}

	return FailShipmentCommand{
		driverTarget: target,
		reason:       reason,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c FailShipmentCommand) Validate() error {
	return c.guard.Validate(ErrFailShipmentCommandIsNotConstructed)
}

func (c FailShipmentCommand) Reason() shipment.FailureReason {
	return c.reason
}

func (c FailShipmentCommand) Notes() string {
	return c.notes
}
