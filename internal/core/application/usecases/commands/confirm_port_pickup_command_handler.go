package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

// ConfirmPortPickupCommandHandler performs the pickup transition for cargo
// collected at a port.
type ConfirmPortPickupCommandHandler struct {
	runner driverActionRunner
}

func NewConfirmPortPickupCommandHandler(uowFactory ShipmentUoWFactory) ConfirmPortPickupCommandHandler {
	return ConfirmPortPickupCommandHandler{runner: newDriverActionRunner(uowFactory)}
}

func (h ConfirmPortPickupCommandHandler) Handle(ctx context.Context, command ConfirmPortPickupCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.run(ctx, command.driverTarget, shipment.ActionPickUp, func(s *shipment.Shipment, at time.Time) error {
		return s.ConfirmPortPickup(command.PortLocation(), command.Notes(), at)
	})
}
