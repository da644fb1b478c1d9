// Package events publishes shipment events outside the process: to Kafka, to
// the log, or both through a metrics-counting decorator.
package events

import (
	"time"

	"logistics/internal/core/domain/model/shipment"
)

// ShipmentChangedMessage is the JSON value written for every shipment event.
// The message key is the shipment id, so events of one shipment keep their
// order within a partition.
type ShipmentChangedMessage struct {
	EventID      string    `json:"event_id"`
	Kind         string    `json:"kind"`
	ShipmentID   string    `json:"shipment_id"`
	Number       string    `json:"shipment_number"`
	Status       string    `json:"status"`
	DriverID     *string   `json:"driver_id,omitempty"`
	Note         string    `json:"note,omitempty"`
	LocationName string    `json:"location_name,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func newShipmentChangedMessage(e shipment.Event) ShipmentChangedMessage {
	msg := ShipmentChangedMessage{
		EventID:      e.ID.String(),
		Kind:         string(e.Kind),
		ShipmentID:   e.ShipmentID.String(),
		Number:       e.Number,
		Status:       e.Status.String(),
		Note:         e.Note,
		LocationName: e.LocationName,
		OccurredAt:   e.OccurredAt.UTC(),
	}
	if e.DriverID != nil {
		driverID := e.DriverID.String()
		msg.DriverID = &driverID
	}
	return msg
}
