package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

type CollectCODCommandHandler struct {
	runner driverActionRunner
}

func NewCollectCODCommandHandler(uowFactory ShipmentUoWFactory) CollectCODCommandHandler {
	return CollectCODCommandHandler{runner: newDriverActionRunner(uowFactory)}
}

// Handle marks the COD collected. Non-COD shipments, a mismatched amount and a
// second collection are validation errors.
func (h CollectCODCommandHandler) Handle(ctx context.Context, command CollectCODCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.run(ctx, command.driverTarget, shipment.ActionCollectCOD, func(s *shipment.Shipment, at time.Time) error {
		return s.CollectCOD(command.Amount(), at)
	})
}
