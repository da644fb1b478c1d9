package queries

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetLastPositionQueryIsNotConstructed = errors.New(
	"GetLastPositionQuery must be created via NewGetLastPositionQuery constructor",
)

// GetLastPositionQuery reads the most recent ledger entry of a shipment.
type GetLastPositionQuery struct {
	actor      *account.Account
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLastPositionQuery(actor *account.Account, shipmentID kernel.UUID) (GetLastPositionQuery, error) {
	if err := errors.Join(validateActor(actor), validateID("shipment id", shipmentID)); err != nil {
		return GetLastPositionQuery{}, err
	}

	return GetLastPositionQuery{
		actor:      actor,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetLastPositionQuery) Validate() error {
	return q.guard.Validate(ErrGetLastPositionQueryIsNotConstructed)
}

func (q GetLastPositionQuery) Actor() *account.Account {
	return q.actor
}

func (q GetLastPositionQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}
