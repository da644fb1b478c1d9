package shipment

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// EventKind names what happened to a shipment.
type EventKind string

const (
	EventCreated          EventKind = "shipment.created"
	EventDriverAssigned   EventKind = "shipment.driver_assigned"
	EventPickedUp         EventKind = "shipment.picked_up"
	EventInTransit        EventKind = "shipment.in_transit"
	EventOutForDelivery   EventKind = "shipment.out_for_delivery"
	EventDelivered        EventKind = "shipment.delivered"
	EventFailed           EventKind = "shipment.failed"
	EventCancelled        EventKind = "shipment.cancelled"
	EventStatusOverridden EventKind = "shipment.status_overridden"
	EventCODCollected     EventKind = "shipment.cod_collected"
	EventCustomsCleared   EventKind = "shipment.customs_cleared"
	EventDelayReported    EventKind = "shipment.delay_reported"
)

// Event is raised by the aggregate for every accepted action.
//
// Driver actions, cancellation and overrides carry a Note and are written to
// the tracking ledger in the same transaction as the status change. Creation
// and assignment carry none. Every event is published after commit.
type Event struct {
	ID           kernel.UUID
	Kind         EventKind
	ShipmentID   kernel.UUID
	Number       string
	Status       Status
	DriverID     *kernel.UUID
	Note         string
	LocationName string
	OccurredAt   time.Time
}

// Tracked reports whether the event must be appended to the tracking ledger.
func (e Event) Tracked() bool {
	return e.Note != ""
}
