package trackingrepo

import (
	"context"

	"logistics/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements ports.TrackingRepository. It only ever
// inserts; there is no update or delete path.
type GormTrackingRepository struct {
	db *gorm.DB
}

func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Append inserts the entries in one statement.
func (r *GormTrackingRepository) Append(ctx context.Context, entries ...*tracking.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
