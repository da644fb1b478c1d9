package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

type CancelShipmentCommandHandler struct {
	uowFactory  ShipmentUoWFactory
	accessGuard services.AccessGuard
}

func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle cancels the shipment. A shipment past PENDING yields an
// *errs.InvalidTransitionError; another customer's shipment an *errs.ForbiddenError.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, command CancelShipmentCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return applyShipmentAction(ctx, uow, command.ShipmentID(),
		func(s *shipment.Shipment) error {
			return h.accessGuard.AuthorizeCustomer(command.Actor(), s, shipment.ActionCancel.String())
		},
		func(s *shipment.Shipment) error {
			return s.Cancel(time.Now().UTC())
		},
	)
}
