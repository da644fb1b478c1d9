package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// driverTarget is the part every driver command shares: who acts on which shipment.
type driverTarget struct {
	actor      *account.Account
	shipmentID kernel.UUID
}

func newDriverTarget(actor *account.Account, shipmentID kernel.UUID) (driverTarget, error) {
	if err := errors.Join(validateActor(actor), validateShipmentID(shipmentID)); err != nil {
		return driverTarget{}, err
	}
	return driverTarget{actor: actor, shipmentID: shipmentID}, nil
}

func (t driverTarget) Actor() *account.Account {
	return t.actor
}

func (t driverTarget) ShipmentID() kernel.UUID {
	return t.shipmentID
}

// driverActionRunner executes an action the assigned driver takes on a shipment.
type driverActionRunner struct {
	uowFactory  ShipmentUoWFactory
	accessGuard services.AccessGuard
}

func newDriverActionRunner(uowFactory ShipmentUoWFactory) driverActionRunner {
	return driverActionRunner{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

func (r driverActionRunner) run(
	ctx context.Context,
	target driverTarget,
	action shipment.Action,
	act func(s *shipment.Shipment, at time.Time) error,
) (*shipment.Shipment, error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return applyShipmentAction(ctx, uow, target.ShipmentID(),
		func(s *shipment.Shipment) error {
			return r.accessGuard.AuthorizeDriver(target.Actor(), s, action.String())
		},
		func(s *shipment.Shipment) error {
			return act(s, time.Now().UTC())
		},
	)
}
