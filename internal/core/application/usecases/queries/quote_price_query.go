package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrQuotePriceQueryIsNotConstructed = errors.New(
	"QuotePriceQuery must be created via NewQuotePriceQuery constructor",
)

// QuotePriceQuery prices a prospective shipment without booking it.
//
// Example:
//
//	query, err := NewQuotePriceQuery(250, 12, "international", "air", true, 0)
//	if err != nil {
//	    return err
//	}
//	price, err := handler.Handle(query)
type QuotePriceQuery struct {
	input services.PriceInput

	guard guard.ConstructorGuard
}

// NewQuotePriceQuery parses the shipment type and, for international
// shipments, the transport mode. A fuel price of 0 means "use the configured
// price".
func NewQuotePriceQuery(
	distanceKm float64,
	weightKg float64,
	shipmentType string,
	mode string,
	express bool,
	fuelPricePerLitre float64,
) (QuotePriceQuery, error) {
	t, typeErr := shipment.ParseType(shipmentType)

	var m shipment.TransportMode
	var modeErr error
	if t == shipment.International || strings.TrimSpace(mode) != "" {
		m, modeErr = shipment.ParseTransportMode(mode)
	}

	if err := errors.Join(typeErr, modeErr); err != nil {
		return QuotePriceQuery{}, err
	}

	return QuotePriceQuery{
		input: services.PriceInput{
			DistanceKm:        distanceKm,
			WeightKg:          weightKg,
			Type:              t,
			Mode:              m,
			Express:           express,
			FuelPricePerLitre: fuelPricePerLitre,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q QuotePriceQuery) Validate() error {
	return q.guard.Validate(ErrQuotePriceQueryIsNotConstructed)
}

func (q QuotePriceQuery) Input() services.PriceInput {
	return q.input
}
