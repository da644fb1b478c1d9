package events

import (
	"context"

	"logistics/internal/core/domain/model/shipment"

	"go.uber.org/zap"
)

// LogPublisher records events in the application log. It is used when no
// broker is configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With(zap.String("component", "shipment_events"))}
}

func (p *LogPublisher) Publish(_ context.Context, events ...shipment.Event) error {
	for _, e := range events {
		p.logger.Info("shipment event",
			zap.String("kind", string(e.Kind)),
			zap.String("shipment_id", e.ShipmentID.String()),
			zap.String("shipment_number", e.Number),
			zap.String("status", e.Status.String()),
			zap.Time("occurred_at", e.OccurredAt),
		)
	}
	return nil
}
