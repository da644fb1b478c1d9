package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetLastPositionQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

func NewGetLastPositionQueryHandler(db *gorm.DB) GetLastPositionQueryHandler {
	return GetLastPositionQueryHandler{db: db, accessGuard: services.NewAccessGuard()}
}

// Handle returns nil without error when nothing has been recorded yet.
func (h GetLastPositionQueryHandler) Handle(ctx context.Context, query GetLastPositionQuery) (*TrackingEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snap, err := loadShipment(ctx, h.db, query.ShipmentID())
	if err != nil {
		return nil, err
	}
	if err = authorizeView(h.accessGuard, query.Actor(), snap); err != nil {
		return nil, err
	}

	return lastEntry(ctx, h.db, query.ShipmentID())
}

func lastEntry(ctx context.Context, db *gorm.DB, shipmentID kernel.UUID) (*TrackingEntryResponse, error) {
	var row trackingRow
	result := db.WithContext(ctx).Raw(latestEntriesSQL+" LIMIT 1", shipmentID.Bytes()).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	entry, err := row.toResponse()
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
