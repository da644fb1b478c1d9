package queries

import (
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TrackingEntryResponse is one ledger entry. Status-change entries carry the
// placeholder position (0,0).
type TrackingEntryResponse struct {
	ID           kernel.UUID
	ShipmentID   kernel.UUID
	Latitude     float64
	Longitude    float64
	LocationName string
	Note         string
	RecordedAt   time.Time
}

type trackingRow struct {
	ID           uuid.UUID
	ShipmentID   uuid.UUID
	Latitude     float64
	Longitude    float64
	LocationName string
	Note         string
	RecordedAt   time.Time
}

func (r trackingRow) toResponse() (TrackingEntryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return TrackingEntryResponse{}, err
	}
	shipmentID, err := kernel.UUIDFromBytes(r.ShipmentID[:])
	if err != nil {
		return TrackingEntryResponse{}, err
	}

	return TrackingEntryResponse{
		ID:           id,
		ShipmentID:   shipmentID,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		LocationName: r.LocationName,
		Note:         r.Note,
		RecordedAt:   r.RecordedAt.UTC(),
	}, nil
}

// latestEntriesSQL selects the entries of a shipment newest first. Ties on
// recorded_at go to the later write.
const latestEntriesSQL = `
	SELECT id, shipment_id, latitude, longitude, location_name, note, recorded_at
	FROM tracking_entries
	WHERE shipment_id = ?
	ORDER BY recorded_at DESC, seq DESC
`
