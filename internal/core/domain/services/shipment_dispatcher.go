package services

import (
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// ShipmentDispatcher binds drivers to shipments.
//
// Business rules:
//   - the target account must have the DRIVER role (account.ErrUserIsNotDriver)
//   - the driver must be active (account.ErrDriverIsInactive)
//   - PENDING shipments advance to ASSIGNED, further advanced ones keep their status
//   - terminal shipments are rejected with an InvalidTransitionError, before
//     the driver is looked at
//
// Example usage:
//
//	dispatcher := services.NewShipmentDispatcher()
//	if err := dispatcher.Dispatch(s, driver, time.Now()); err != nil {
//	    return err
//	}
type ShipmentDispatcher struct{}

func NewShipmentDispatcher() ShipmentDispatcher {
	return ShipmentDispatcher{}
}

// Dispatch validates the driver and assigns it to the shipment.
func (d ShipmentDispatcher) Dispatch(s *shipment.Shipment, driver *account.Account, at time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.Status().Allows(shipment.ActionAssign) {
		return errs.NewInvalidTransitionError(s.Status(), shipment.ActionAssign)
	}
	if err := driver.Validate(); err != nil {
		return err
	}
	if err := driver.EnsureAssignableDriver(); err != nil {
		return err
	}

	return s.AssignDriver(driver.ID(), at)
}
