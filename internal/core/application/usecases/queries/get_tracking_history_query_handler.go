package queries

import (
	"context"

	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetTrackingHistoryQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db, accessGuard: services.NewAccessGuard()}
}

// Handle checks the shipment exists and is visible to the actor before reading
// its ledger. A shipment with no entries yields an empty slice.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]TrackingEntryResponse, error) {
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

	rows, err := h.db.WithContext(ctx).Raw(latestEntriesSQL, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]TrackingEntryResponse, 0)
	for rows.Next() {
		var row trackingRow
		if err = rows.Scan(
			&row.ID,
			&row.ShipmentID,
			&row.Latitude,
			&row.Longitude,
			&row.LocationName,
			&row.Note,
			&row.RecordedAt,
		); err != nil {
			return nil, err
		}

		entry, convErr := row.toResponse()
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
