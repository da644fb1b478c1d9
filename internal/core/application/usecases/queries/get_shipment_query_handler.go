package queries

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads a shipment without taking a row lock.
//
// Example:
//
//	query, err := NewGetShipmentQuery(actor, shipmentID)
//	if err != nil {
//	    return err
//	}
//	snap, err := handler.Handle(ctx, query)
type GetShipmentQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db, accessGuard: services.NewAccessGuard()}
}

// Handle returns an *errs.ObjectNotFoundError for an unknown shipment and an
// *errs.ForbiddenError when the actor may not see it.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (shipment.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return shipment.Snapshot{}, err
	}

	snap, err := loadShipment(ctx, h.db, query.ShipmentID())
	if err != nil {
		return shipment.Snapshot{}, err
	}

	if err = authorizeView(h.accessGuard, query.Actor(), snap); err != nil {
		return shipment.Snapshot{}, err
	}

	return snap, nil
}
