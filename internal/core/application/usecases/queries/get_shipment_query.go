package queries

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery reads one shipment on behalf of an actor. Customers see
// their own bookings, drivers the shipments bound to them, administrators all.
type GetShipmentQuery struct {
	actor      *account.Account
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShipmentQuery(actor *account.Account, shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := errors.Join(validateActor(actor), validateID("shipment id", shipmentID)); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

func (q GetShipmentQuery) Actor() *account.Account {
	return q.actor
}

func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}
