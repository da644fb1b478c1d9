package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

type ConfirmCustomsClearanceCommandHandler struct {
	runner driverActionRunner
}

func NewConfirmCustomsClearanceCommandHandler(uowFactory ShipmentUoWFactory) ConfirmCustomsClearanceCommandHandler {
	return ConfirmCustomsClearanceCommandHandler{runner: newDriverActionRunner(uowFactory)}
}

func (h ConfirmCustomsClearanceCommandHandler) Handle(
	ctx context.Context,
	command ConfirmCustomsClearanceCommand,
) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.run(ctx, command.driverTarget, shipment.ActionConfirmCustoms, func(s *shipment.Shipment, at time.Time) error {
		return s.ConfirmCustomsClearance(command.Notes(), at)
	})
}
