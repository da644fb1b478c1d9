package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

const actionViewDriver = "view driver"

type GetDriverQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db, accessGuard: services.NewAccessGuard()}
}

// Handle treats an account of another role as not found.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}
	if err := h.accessGuard.AuthorizeAdmin(query.Actor(), actionViewDriver); err != nil {
		return AccountResponse{}, err
	}

	var row accountRow
	err := h.db.WithContext(ctx).
		Table("accounts").
		Select(accountColumns).
		Where("id = ? AND role = ?", query.DriverID().Bytes(), account.RoleDriver.String()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
		}
		return AccountResponse{}, err
	}

	return row.toResponse()
}
