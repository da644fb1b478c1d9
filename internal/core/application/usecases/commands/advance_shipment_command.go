package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceShipmentCommandIsNotConstructed = errors.New(
	"AdvanceShipmentCommand must be created via NewAdvanceShipmentCommand constructor",
)

// AdvanceShipmentCommand moves a shipment one step along the delivery route:
// pickup, departure into transit, or dispatch for final delivery.
//
// Example:
//
//	cmd, err := NewAdvanceShipmentCommand(driver, shipmentID, shipment.ActionPickUp, "2 boxes, sealed")
//	if err != nil {
//	    return err
//	}
//	picked, err := handler.Handle(ctx, cmd)
type AdvanceShipmentCommand struct { //nolint:recvcheck //using for validation
	driverTarget

	action shipment.Action
	notes  string

	guard guard.ConstructorGuard
}

func AdvanceActions() []shipment.Action {
	return []shipment.Action{shipment.ActionPickUp, shipment.ActionStartTransit, shipment.ActionOutForDelivery}
}

func NewAdvanceShipmentCommand(
	actor *account.Account,
	shipmentID kernel.UUID,
	action shipment.Action,
	notes string,
) (AdvanceShipmentCommand, error) {
	target, targetErr := newDriverTarget(actor, shipmentID)

	var actionErr error
	switch action {
	case shipment.ActionPickUp, shipment.ActionStartTransit, shipment.ActionOutForDelivery:
	default:
		actionErr = errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q does not advance a shipment", action))
	}

	if err := errors.Join(targetErr, actionErr); err != nil {
		return AdvanceShipmentCommand{}, err
	}

	return AdvanceShipmentCommand{
		driverTarget: target,
		action:       action,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentCommandIsNotConstructed)
}

func (c AdvanceShipmentCommand) Action() shipment.Action {
	return c.action
}

func (c AdvanceShipmentCommand) Notes() string {
	return c.notes
}
