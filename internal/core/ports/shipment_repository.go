// Package ports defines the contracts between the logistics core and its
// adapters: persistence, event fan-out, credentials and speech.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a newly booked shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists the aggregate's current state. The shipment must exist.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get loads a shipment without locking it.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate loads a shipment and holds its row lock until the
	// transaction ends. Every state-changing command loads through it, so
	// concurrent actions on one shipment serialise and the later one observes
	// the earlier one's result.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
