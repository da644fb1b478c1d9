package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// shipmentRow is the read shape of the shipments table.
type shipmentRow struct {
	ID         uuid.UUID
	Number     string
	CustomerID uuid.UUID
	DriverID   *uuid.UUID

	PickupAddress   string
	DeliveryAddress string
	HomePickup      bool
	HomeDelivery    bool
	PackageType     string
	Weight          float64
	Dimensions      string
	Description     string
	Type            string
	TransportMode   string
	Port            string
	IsCOD           bool    `gorm:"column:is_cod"`
	CODAmount       float64 `gorm:"column:cod_amount"`
	Express         bool

	PriceBase          float64
	PriceWeightCharge  float64
	PriceModeSurcharge float64
	PriceFuelSurcharge float64
	PriceExpressCharge float64
	PriceTotal         float64

	Status        string
	CustomsStatus string
	CODStatus     string `gorm:"column:cod_status"`
	FailureReason string
	FailureNotes  string
	DelayReason   string
	DelayNotes    string
	Signature     string
	PhotoURL      string `gorm:"column:photo_url"`

	EstimatedDelivery   time.Time
	ActualDelivery      *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	PickupCompletedAt   *time.Time
	DeliveryAttemptedAt *time.Time
	CustomsClearedAt    *time.Time
	CODCollectedAt      *time.Time `gorm:"column:cod_collected_at"`
	DelayReportedAt     *time.Time
}

func (r shipmentRow) toSnapshot() (shipment.Snapshot, error) {
	id, idErr := kernel.UUIDFromBytes(r.ID[:])
	customerID, customerErr := kernel.UUIDFromBytes(r.CustomerID[:])
	if err := errors.Join(idErr, customerErr); err != nil {
		return shipment.Snapshot{}, err
	}

	var driverID *kernel.UUID
	if r.DriverID != nil {
		parsed, err := kernel.UUIDFromBytes(r.DriverID[:])
		if err != nil {
			return shipment.Snapshot{}, err
		}
		driverID = &parsed
	}

	return shipment.Snapshot{
		ID:         id,
		Number:     r.Number,
		CustomerID: customerID,
		DriverID:   driverID,
		Details: shipment.Details{
			PickupAddress:   r.PickupAddress,
			DeliveryAddress: r.DeliveryAddress,
			HomePickup:      r.HomePickup,
			HomeDelivery:    r.HomeDelivery,
			PackageType:     r.PackageType,
			Weight:          r.Weight,
			Dimensions:      r.Dimensions,
			Description:     r.Description,
			Type:            shipment.Type(r.Type),
			TransportMode:   shipment.TransportMode(r.TransportMode),
			Port:            shipment.Port(r.Port),
			IsCOD:           r.IsCOD,
			CODAmount:       r.CODAmount,
			Express:         r.Express,
		},
		Price: shipment.Price{
			Base:          r.PriceBase,
			WeightCharge:  r.PriceWeightCharge,
			ModeSurcharge: r.PriceModeSurcharge,
			FuelSurcharge: r.PriceFuelSurcharge,
			ExpressCharge: r.PriceExpressCharge,
			Total:         r.PriceTotal,
		},
		Status:              shipment.Status(r.Status),
		CustomsStatus:       shipment.CustomsStatus(r.CustomsStatus),
		CODStatus:           shipment.CODStatus(r.CODStatus),
		FailureReason:       shipment.FailureReason(r.FailureReason),
		FailureNotes:        r.FailureNotes,
		DelayReason:         shipment.DelayReason(r.DelayReason),
		DelayNotes:          r.DelayNotes,
		Signature:           r.Signature,
		PhotoURL:            r.PhotoURL,
		EstimatedDelivery:   r.EstimatedDelivery.UTC(),
		ActualDelivery:      utc(r.ActualDelivery),
		CreatedAt:           r.CreatedAt.UTC(),
		UpdatedAt:           r.UpdatedAt.UTC(),
		PickupCompletedAt:   utc(r.PickupCompletedAt),
		DeliveryAttemptedAt: utc(r.DeliveryAttemptedAt),
		CustomsClearedAt:    utc(r.CustomsClearedAt),
		CODCollectedAt:      utc(r.CODCollectedAt),
		DelayReportedAt:     utc(r.DelayReportedAt),
	}, nil
}

func toSnapshots(rows []shipmentRow) ([]shipment.Snapshot, error) {
	snapshots := make([]shipment.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := row.toSnapshot()
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func statusStrings(statuses []shipment.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
