package queries

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
)

const actionListShipments = "list shipments"

type ListShipmentsQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db, accessGuard: services.NewAccessGuard()}
}

// Handle returns an empty, non-nil slice when nothing matches. Inactive drivers
// and administrators are forbidden.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]shipment.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := h.accessGuard.AuthorizeRole(actor, actor.Role(), actionListShipments); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("shipments")
	switch actor.Role() {
	case account.RoleCustomer:
		tx = tx.Where("customer_id = ?", actor.ID().Bytes())
	case account.RoleDriver:
		tx = tx.Where("driver_id = ? AND status IN ?", actor.ID().Bytes(), statusStrings(shipment.ActiveStatuses()))
	}
	if query.Status() != shipment.Unknown {
		tx = tx.Where("status = ?", string(query.Status()))
	}

	rows := make([]shipmentRow, 0)
	if err := tx.Order("created_at DESC").Order("number").Find(&rows).Error; err != nil {
		return nil, err
	}

	return toSnapshots(rows)
}
