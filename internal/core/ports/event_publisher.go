package ports

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// EventPublisher fans shipment events out to other systems once the change that
// raised them is committed. Delivery is at most once.
type EventPublisher interface {
	Publish(ctx context.Context, events ...shipment.Event) error
}
