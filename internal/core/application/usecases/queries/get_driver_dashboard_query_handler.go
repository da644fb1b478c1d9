package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const actionViewDashboard = "view dashboard"

type GetDriverDashboardQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

func NewGetDriverDashboardQueryHandler(db *gorm.DB) GetDriverDashboardQueryHandler {
	return GetDriverDashboardQueryHandler{db: db, accessGuard: services.NewAccessGuard()}
}

// Handle counts in one statement, then loads the current shipment and its
// last recorded position.
func (h GetDriverDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDriverDashboardQuery,
) (GetDriverDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverDashboardQueryResponse{}, err
	}

	driver := query.Actor()
	if err := h.accessGuard.AuthorizeRole(driver, account.RoleDriver, actionViewDashboard); err != nil {
		return GetDriverDashboardQueryResponse{}, err
	}

	dayStart := query.Now().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)
	driverID := driver.ID().Bytes()

	var resp GetDriverDashboardQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ? AND actual_delivery >= ? AND actual_delivery < ?),
			COUNT(*) FILTER (WHERE status IN ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM shipments
		WHERE driver_id = ?
	`,
		string(shipment.Delivered), dayStart, dayEnd,
		statusStrings(shipment.ActiveStatuses()),
		string(shipment.Delivered),
		string(shipment.Failed),
		driverID,
	).Row().Scan(&resp.DeliveriesToday, &resp.ActiveShipments, &resp.CompletedCount, &resp.FailedCount)
	if err != nil {
		return GetDriverDashboardQueryResponse{}, err
	}

	current, err := h.currentShipment(ctx, driverID)
	if err != nil {
		return GetDriverDashboardQueryResponse{}, err
	}
	if current == nil {
		return resp, nil
	}
	resp.CurrentShipment = current

	if resp.LastKnownLocation, err = lastEntry(ctx, h.db, current.ID); err != nil {
		return GetDriverDashboardQueryResponse{}, err
	}

	return resp, nil
}

func (h GetDriverDashboardQueryHandler) currentShipment(ctx context.Context, driverID uuid.UUID) (*CurrentShipmentResponse, error) {
	var row struct {
		ID              uuid.UUID
		Number          string
		PickupAddress   string
		DeliveryAddress string
		Status          string
	}

	result := h.db.WithContext(ctx).
		Table("shipments").
		Select("id", "number", "pickup_address", "delivery_address", "status").
		Where("driver_id = ? AND status IN ?", driverID, statusStrings(shipment.ActiveStatuses())).
		Order("created_at").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}

	return &CurrentShipmentResponse{
		ID:              id,
		Number:          row.Number,
		PickupAddress:   row.PickupAddress,
		DeliveryAddress: row.DeliveryAddress,
		Status:          row.Status,
	}, nil
}
