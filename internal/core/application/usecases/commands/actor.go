package commands

import (
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

func validateActor(actor *account.Account) error {
	if err := actor.Validate(); err != nil {
		return errs.NewUnauthenticatedError(err)
	}
	return nil
}

func validateShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipment id", err)
	}
	return nil
}
