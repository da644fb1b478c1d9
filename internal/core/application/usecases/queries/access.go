package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

const actionViewShipment = "view shipment"

func validateActor(actor *account.Account) error {
	if err := actor.Validate(); err != nil {
		return errs.NewUnauthenticatedError(err)
	}
	return nil
}

func validateID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}

// loadShipment reads one shipment without locking it.
func loadShipment(ctx context.Context, db *gorm.DB, id kernel.UUID) (shipment.Snapshot, error) {
	var row shipmentRow
	err := db.WithContext(ctx).Table("shipments").Where("id = ?", id.Bytes()).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shipment.Snapshot{}, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return shipment.Snapshot{}, err
	}

	return row.toSnapshot()
}

// authorizeView admits the owning customer, the assigned driver and active
// administrators.
func authorizeView(g services.AccessGuard, actor *account.Account, snap shipment.Snapshot) error {
	s, err := shipment.RestoreShipment(snap)
	if err != nil {
		return err
	}

	switch actor.Role() {
	case account.RoleCustomer:
		return g.AuthorizeCustomer(actor, s, actionViewShipment)
	case account.RoleDriver:
		return g.AuthorizeDriver(actor, s, actionViewShipment)
	default:
		return g.AuthorizeAdmin(actor, actionViewShipment)
	}
}
