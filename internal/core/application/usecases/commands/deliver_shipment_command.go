package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrDeliverShipmentCommandIsNotConstructed = errors.New(
	"DeliverShipmentCommand must be created via NewDeliverShipmentCommand constructor",
)

// DeliverShipmentCommand completes a delivery with the recipient's proof.
type DeliverShipmentCommand struct { //nolint:recvcheck //using for validation
	driverTarget

	proof shipment.DeliveryProof

	guard guard.ConstructorGuard
}

func NewDeliverShipmentCommand(
	actor *account.Account,
	shipmentID kernel.UUID,
	proof shipment.DeliveryProof,
) (DeliverShipmentCommand, error) {
	target, err := newDriverTarget(actor, shipmentID)
	if err != nil {
		return DeliverShipmentCommand{}, err
	}

	return DeliverShipmentCommand{
		driverTarget: target,
		proof:        proof,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeliverShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeliverShipmentCommandIsNotConstructed)
}

func (c DeliverShipmentCommand) Proof() shipment.DeliveryProof {
	return c.proof
}
