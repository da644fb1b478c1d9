package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FindShipmentByNumberQueryHandler struct {
	db *gorm.DB
}

func NewFindShipmentByNumberQueryHandler(db *gorm.DB) FindShipmentByNumberQueryHandler {
	return FindShipmentByNumberQueryHandler{db: db}
}

// Handle does not check access; callers pass the id on to a guarded command.
func (h FindShipmentByNumberQueryHandler) Handle(ctx context.Context, query FindShipmentByNumberQuery) (kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var id uuid.UUID
	err := h.db.WithContext(ctx).
		Table("shipments").
		Select("id").
		Where("number = ?", query.Number()).
		Row().
		Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("shipment number", query.Number())
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(id[:])
}
