package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

// DeliverShipmentCommandHandler marks the shipment DELIVERED. Of two concurrent
// deliveries the second waits on the row lock, then fails with
// *errs.InvalidTransitionError.
type DeliverShipmentCommandHandler struct {
	runner driverActionRunner
}

func NewDeliverShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeliverShipmentCommandHandler {
	return DeliverShipmentCommandHandler{runner: newDriverActionRunner(uowFactory)}
}

func (h DeliverShipmentCommandHandler) Handle(ctx context.Context, command DeliverShipmentCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.runner.run(ctx, command.driverTarget, shipment.ActionDeliver, func(s *shipment.Shipment, at time.Time) error {
		return s.MarkDelivered(command.Proof(), at)
	})
}
