package ports

import (
	"context"

	"logistics/internal/core/domain/model/tracking"
)

// TrackingRepository is the append-only tracking ledger. Entries are never
// updated or deleted; reads (last position, history) go through queries.
type TrackingRepository interface {
	Append(ctx context.Context, entries ...*tracking.Entry) error
}
