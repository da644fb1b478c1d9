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

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand books a new shipment on behalf of a customer.
// The price is computed by the handler; distanceKm of 0 means the route
// distance is unknown and the default distance is priced.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(customer, kernel.NewUUID(), shipment.Details{
//	    PickupAddress:   "12 MG Road, Pune",
//	    DeliveryAddress: "4 Park Street, Kolkata",
//	    Weight:          12.5,
//	    Type:            shipment.Domestic,
//	}, 0)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      *account.Account
	shipmentID kernel.UUID
	details    shipment.Details
	distanceKm float64

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(
	actor *account.Account,
	shipmentID kernel.UUID,
	details shipment.Details,
	distanceKm float64,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setShipmentID(shipmentID),
		cmd.setDistance(distanceKm),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Actor() *account.Account {
	return c.actor
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

// DistanceKm returns the route distance, 0 when unknown.
func (c CreateShipmentCommand) DistanceKm() float64 {
	return c.distanceKm
}

func (c *CreateShipmentCommand) setActor(actor *account.Account) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := validateShipmentID(id); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setDistance(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%.2f is negative", distanceKm))
	}
	c.distanceKm = distanceKm
	return nil
}
