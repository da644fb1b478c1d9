package queries

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/services"

	"gorm.io/gorm"
)

const actionListDrivers = "list drivers"

type ListDriversQueryHandler struct {
	db          *gorm.DB
	accessGuard services.AccessGuard
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db, accessGuard: services.NewAccessGuard()}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.accessGuard.AuthorizeAdmin(query.Actor(), actionListDrivers); err != nil {
		return nil, err
	}

	rows := make([]accountRow, 0)
	err := h.db.WithContext(ctx).
		Table("accounts").
		Select(accountColumns).
		Where("role = ?", account.RoleDriver.String()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]AccountResponse, 0, len(rows))
	for _, row := range rows {
		driver, convErr := row.toResponse()
		if convErr != nil {
			return nil, convErr
		}
		drivers = append(drivers, driver)
	}

	return drivers, nil
}
