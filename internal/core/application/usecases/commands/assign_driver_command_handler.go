package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// AssignDriverCommandHandler dispatches a shipment to a driver.
//
// Re-assigning an in-progress shipment swaps the driver and keeps the status;
// a terminal shipment rejects the assignment with *errs.InvalidTransitionError.
type AssignDriverCommandHandler struct {
	uowFactory  UoWFactory
	accessGuard services.AccessGuard
	dispatcher  services.ShipmentDispatcher
}

func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
		dispatcher:  services.NewShipmentDispatcher(),
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if err := h.accessGuard.AuthorizeAdmin(command.Actor(), shipment.ActionAssign.String()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driver, err := uow.AccountRepository().Get(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	return applyShipmentAction(ctx, uow, command.ShipmentID(),
		func(*shipment.Shipment) error { return nil },
		func(s *shipment.Shipment) error {
			return h.dispatcher.Dispatch(s, driver, time.Now().UTC())
		},
	)
}
