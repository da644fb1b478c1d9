package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// OverrideStatusCommandHandler applies an administrator's status override. It
// bypasses the transition table; only the status value itself is validated.
type OverrideStatusCommandHandler struct {
	uowFactory  ShipmentUoWFactory
	accessGuard services.AccessGuard
}

func NewOverrideStatusCommandHandler(uowFactory ShipmentUoWFactory) OverrideStatusCommandHandler {
	return OverrideStatusCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

func (h OverrideStatusCommandHandler) Handle(ctx context.Context, command OverrideStatusCommand) (*shipment.Shipment, error) {
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
		func(*shipment.Shipment) error {
			return h.accessGuard.AuthorizeAdmin(command.Actor(), "override status")
		},
		func(s *shipment.Shipment) error {
			return s.OverrideStatus(command.Status(), time.Now().UTC())
		},
	)
}
