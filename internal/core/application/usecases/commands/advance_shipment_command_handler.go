package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

// AdvanceShipmentCommandHandler applies pickup, in-transit and
// out-for-delivery steps for the assigned driver. Each accepted step writes one
// ledger entry.
type AdvanceShipmentCommandHandler struct {
	runner driverActionRunner
}

func NewAdvanceShipmentCommandHandler(uowFactory ShipmentUoWFactory) AdvanceShipmentCommandHandler {
	return AdvanceShipmentCommandHandler{runner: newDriverActionRunner(uowFactory)}
}

func (h AdvanceShipmentCommandHandler) Handle(ctx context.Context, command AdvanceShipmentCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.run(ctx, command.driverTarget, command.Action(), func(s *shipment.Shipment, at time.Time) error {
		switch command.Action() {
		case shipment.ActionPickUp:
			return s.MarkPickedUp(command.Notes(), at)
		case shipment.ActionStartTransit:
			return s.MarkInTransit(command.Notes(), at)
		default:
			return s.MarkOutForDelivery(command.Notes(), at)
		}
	})
}
