package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

type FailShipmentCommandHandler struct {
	runner driverActionRunner
}

func NewFailShipmentCommandHandler(uowFactory ShipmentUoWFactory) FailShipmentCommandHandler {
	return FailShipmentCommandHandler{runner: newDriverActionRunner(uowFactory)}
}

// Handle moves a non-terminal shipment to FAILED.
func (h FailShipmentCommandHandler) Handle(ctx context.Context, command FailShipmentCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.run(ctx, command.driverTarget, shipment.ActionFail, func(s *shipment.Shipment, at time.Time) error {
		return s.MarkFailed(command.Reason(), command.Notes(), at)
	})
}
