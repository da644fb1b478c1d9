package queries

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery reads the whole ledger of a shipment, newest first.
// Visibility follows GetShipmentQuery.
type GetTrackingHistoryQuery struct {
	actor      *account.Account
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTrackingHistoryQuery(actor *account.Account, shipmentID kernel.UUID) (GetTrackingHistoryQuery, error) {
	if err := errors.Join(validateActor(actor), validateID("shipment id", shipmentID)); err != nil {
		return GetTrackingHistoryQuery{}, err
	}

	return GetTrackingHistoryQuery{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

func (q GetTrackingHistoryQuery) Actor() *account.Account {
	return q.actor
}

func (q GetTrackingHistoryQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}
