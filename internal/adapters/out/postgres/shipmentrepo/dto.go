// Package shipmentrepo maps shipment aggregates to the shipments table.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the row of the shipments table. Read models in the queries
// package select from the same columns.
type ShipmentDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number     string     `gorm:"size:16;not null;uniqueIndex"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID   *uuid.UUID `gorm:"type:uuid;index"`

	PickupAddress   string  `gorm:"not null"`
	DeliveryAddress string  `gorm:"not null"`
	HomePickup      bool
	HomeDelivery    bool
	PackageType     string  `gorm:"size:64"`
	Weight          float64
	Dimensions      string  `gorm:"size:64"`
	Description     string
	Type            string  `gorm:"size:16;not null"`
	TransportMode   string  `gorm:"size:16"`
	Port            string  `gorm:"size:32"`
	IsCOD           bool    `gorm:"column:is_cod"`
	CODAmount       float64 `gorm:"column:cod_amount"`
	Express         bool

	Price PriceDTO `gorm:"embedded;embeddedPrefix:price_"`

	Status        string `gorm:"size:32;not null;index"`
	CustomsStatus string `gorm:"size:32"`
	CODStatus     string `gorm:"column:cod_status;size:32"`
	FailureReason string `gorm:"size:32"`
	FailureNotes  string
	DelayReason   string `gorm:"size:32"`
	DelayNotes    string
	Signature     string
	PhotoURL      string `gorm:"column:photo_url"`

	EstimatedDelivery   time.Time
	ActualDelivery      *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false"`
	PickupCompletedAt   *time.Time
	DeliveryAttemptedAt *time.Time
	CustomsClearedAt    *time.Time
	CODCollectedAt      *time.Time `gorm:"column:cod_collected_at"`
	DelayReportedAt     *time.Time
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PriceDTO is the embedded price breakdown, stored as price_* columns.
type PriceDTO struct {
	Base          float64
	WeightCharge  float64
	ModeSurcharge float64
	FuelSurcharge float64
	ExpressCharge float64
	Total         float64
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	snap := s.Snapshot()

	var driverID *uuid.UUID
	if snap.DriverID != nil {
		raw := snap.DriverID.Bytes()
		driverID = &raw
	}

	d := snap.Details
	return ShipmentDTO{
		ID:                  snap.ID.Bytes(),
		Number:              snap.Number,
		CustomerID:          snap.CustomerID.Bytes(),
		DriverID:            driverID,
		PickupAddress:       d.PickupAddress,
		DeliveryAddress:     d.DeliveryAddress,
		HomePickup:          d.HomePickup,
		HomeDelivery:        d.HomeDelivery,
		PackageType:         d.PackageType,
		Weight:              d.Weight,
		Dimensions:          d.Dimensions,
		Description:         d.Description,
		Type:                string(d.Type),
		TransportMode:       string(d.TransportMode),
		Port:                string(d.Port),
		IsCOD:               d.IsCOD,
		CODAmount:           d.CODAmount,
		Express:             d.Express,
		Price:               PriceDTO(snap.Price),
		Status:              string(snap.Status),
		CustomsStatus:       string(snap.CustomsStatus),
		CODStatus:           string(snap.CODStatus),
		FailureReason:       string(snap.FailureReason),
		FailureNotes:        snap.FailureNotes,
		DelayReason:         string(snap.DelayReason),
		DelayNotes:          snap.DelayNotes,
		Signature:           snap.Signature,
		PhotoURL:            snap.PhotoURL,
		EstimatedDelivery:   snap.EstimatedDelivery,
		ActualDelivery:      snap.ActualDelivery,
		CreatedAt:           snap.CreatedAt,
		UpdatedAt:           snap.UpdatedAt,
		PickupCompletedAt:   snap.PickupCompletedAt,
		DeliveryAttemptedAt: snap.DeliveryAttemptedAt,
		CustomsClearedAt:    snap.CustomsClearedAt,
		CODCollectedAt:      snap.CODCollectedAt,
		DelayReportedAt:     snap.DelayReportedAt,
	}
}

// toSnapshot converts a row into the aggregate's persisted state.
func toSnapshot(dto ShipmentDTO) (shipment.Snapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shipment.Snapshot{}, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return shipment.Snapshot{}, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return shipment.Snapshot{}, driverErr
		}
		driverID = &dID
	}

	return shipment.Snapshot{
		ID:         id,
		Number:     dto.Number,
		CustomerID: customerID,
		DriverID:   driverID,
		Details: shipment.Details{
			PickupAddress:   dto.PickupAddress,
			DeliveryAddress: dto.DeliveryAddress,
			HomePickup:      dto.HomePickup,
			HomeDelivery:    dto.HomeDelivery,
			PackageType:     dto.PackageType,
			Weight:          dto.Weight,
			Dimensions:      dto.Dimensions,
			Description:     dto.Description,
			Type:            shipment.Type(dto.Type),
			TransportMode:   shipment.TransportMode(dto.TransportMode),
			Port:            shipment.Port(dto.Port),
			IsCOD:           dto.IsCOD,
			CODAmount:       dto.CODAmount,
			Express:         dto.Express,
		},
		Price:               shipment.Price(dto.Price),
		Status:              shipment.Status(dto.Status),
		CustomsStatus:       shipment.CustomsStatus(dto.CustomsStatus),
		CODStatus:           shipment.CODStatus(dto.CODStatus),
		FailureReason:       shipment.FailureReason(dto.FailureReason),
		FailureNotes:        dto.FailureNotes,
		DelayReason:         shipment.DelayReason(dto.DelayReason),
		DelayNotes:          dto.DelayNotes,
		Signature:           dto.Signature,
		PhotoURL:            dto.PhotoURL,
		EstimatedDelivery:   dto.EstimatedDelivery.UTC(),
		ActualDelivery:      utc(dto.ActualDelivery),
		CreatedAt:           dto.CreatedAt.UTC(),
		UpdatedAt:           dto.UpdatedAt.UTC(),
		PickupCompletedAt:   utc(dto.PickupCompletedAt),
		DeliveryAttemptedAt: utc(dto.DeliveryAttemptedAt),
		CustomsClearedAt:    utc(dto.CustomsClearedAt),
		CODCollectedAt:      utc(dto.CODCollectedAt),
		DelayReportedAt:     utc(dto.DelayReportedAt),
	}, nil
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	snap, err := toSnapshot(dto)
	if err != nil {
		return nil, err
	}
	return shipment.RestoreShipment(snap)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
