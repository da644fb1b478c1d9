package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRecordLocationCommandIsNotConstructed = errors.New(
	"RecordLocationCommand must be created via NewRecordLocationCommand constructor",
)

// RecordLocationCommand appends a live GPS fix to a shipment's ledger.
// Coordinates are validated here, before anything is written.
//
// Example:
//
//	cmd, err := NewRecordLocationCommand(driver, shipmentID, 18.5204, 73.8567, "Pune bypass", "")
//	if errors.Is(err, errs.ErrValueIsOutOfRange) {
//	    // bad fix from the device
//	}
type RecordLocationCommand struct { //nolint:recvcheck //using for validation
	driverTarget

	position     kernel.GeoPoint
	locationName string
	note         string

	guard guard.ConstructorGuard
}

func NewRecordLocationCommand(
	actor *account.Account,
	shipmentID kernel.UUID,
	latitude float64,
	longitude float64,
	locationName string,
	note string,
) (RecordLocationCommand, error) {
	target, targetErr := newDriverTarget(actor, shipmentID)
	position, positionErr := kernel.NewGeoPoint(latitude, longitude)

	if err := errors.Join(targetErr, positionErr); err != nil {
		return RecordLocationCommand{}, err
	}

	return RecordLocationCommand{
		driverTarget: target,
		position:     position,
		locationName: locationName,
		note:         note,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RecordLocationCommand) Validate() error {
	return c.guard.Validate(ErrRecordLocationCommandIsNotConstructed)
}

func (c RecordLocationCommand) Position() kernel.GeoPoint {
	return c.position
}

func (c RecordLocationCommand) LocationName() string {
	return c.locationName
}

func (c RecordLocationCommand) Note() string {
	return c.note
}
