// Package tracking provides the immutable Entry appended to a shipment's
// tracking ledger.
package tracking

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is one fact in the ledger: where a shipment was, or what happened to
// it, at a point in time. Entries are never updated or deleted.
type Entry struct {
	id           kernel.UUID
	shipmentID   kernel.UUID
	position     kernel.GeoPoint
	locationName string
	note         string
	recordedAt   time.Time

	isConstructed bool
}

// NewEntry builds an entry. Use kernel.UnknownGeoPoint for status-change
// entries that carry no GPS fix.
func NewEntry(
	id kernel.UUID,
	shipmentID kernel.UUID,
	position kernel.GeoPoint,
	locationName string,
	note string,
	recordedAt time.Time,
) (*Entry, error) {
	e := &Entry{
		locationName:  strings.TrimSpace(locationName),
		note:          strings.TrimSpace(note),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setShipment(shipmentID),
		e.setPosition(position),
		e.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) ShipmentID() kernel.UUID {
	return e.shipmentID
}

func (e *Entry) Position() kernel.GeoPoint {
	return e.position
}

func (e *Entry) LocationName() string {
	return e.locationName
}

func (e *Entry) Note() string {
	return e.note
}

func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setShipment(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipment", err)
	}
	e.shipmentID = id
	return nil
}

func (e *Entry) setPosition(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}
	e.position = p
	return nil
}

func (e *Entry) setRecordedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("recorded at")
	}
	e.recordedAt = at
	return nil
}
