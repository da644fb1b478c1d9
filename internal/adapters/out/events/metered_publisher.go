package events

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// MeteredPublisher counts events by kind and resulting status before handing
// them to the next publisher, and counts the batches that publisher rejects.
type MeteredPublisher struct {
	next     ports.EventPublisher
	events   *prometheus.CounterVec
	failures prometheus.Counter
}

// NewMeteredPublisher registers its collectors with reg.
func NewMeteredPublisher(next ports.EventPublisher, reg prometheus.Registerer) *MeteredPublisher {
	p := &MeteredPublisher{
		next: next,
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logistics",
			Name:      "shipment_events_total",
			Help:      "Shipment events raised by committed changes.",
		}, []string{"kind", "status"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logistics",
			Name:      "shipment_event_publish_failures_total",
			Help:      "Batches of shipment events that could not be published.",
		}),
	}
	reg.MustRegister(p.events, p.failures)
	return p
}

func (p *MeteredPublisher) Publish(ctx context.Context, events ...shipment.Event) error {
	for _, e := range events {
		p.events.WithLabelValues(string(e.Kind), e.Status.String()).Inc()
	}

	if err := p.next.Publish(ctx, events...); err != nil {
		p.failures.Inc()
		return err
	}
	return nil
}
