// Package trackingrepo persists the append-only tracking ledger.
package trackingrepo

import (
	"time"

	"logistics/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EntryDTO is the row of the tracking_entries table. Seq is assigned by the
// database in insertion order and breaks ties between equal timestamps.
type EntryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq          int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	ShipmentID   uuid.UUID `gorm:"type:uuid;not null;index:idx_tracking_shipment_recorded,priority:1"`
	Latitude     float64   `gorm:"not null"`
	Longitude    float64   `gorm:"not null"`
	LocationName string
	Note         string
	RecordedAt   time.Time `gorm:"not null;index:idx_tracking_shipment_recorded,priority:2,sort:desc"`
}

func (EntryDTO) TableName() string {
	return "tracking_entries"
}

func fromDomain(e *tracking.Entry) EntryDTO {
	return EntryDTO{
		ID:           e.ID().Bytes(),
		ShipmentID:   e.ShipmentID().Bytes(),
		Latitude:     e.Position().Latitude(),
		Longitude:    e.Position().Longitude(),
		LocationName: e.LocationName(),
		Note:         e.Note(),
		RecordedAt:   e.RecordedAt(),
	}
}
