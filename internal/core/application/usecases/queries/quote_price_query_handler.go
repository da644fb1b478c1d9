package queries

import (
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

type QuotePriceQueryHandler struct {
	pricing           services.PriceCalculator
	fuelPricePerLitre float64
}

// NewQuotePriceQueryHandler takes the configured fuel price; a non-positive
// value falls back to services.DefaultFuelPricePerLitre.
func NewQuotePriceQueryHandler(fuelPricePerLitre float64) QuotePriceQueryHandler {
	if fuelPricePerLitre <= 0 {
		fuelPricePerLitre = services.DefaultFuelPricePerLitre
	}
	return QuotePriceQueryHandler{
		pricing:           services.NewPriceCalculator(),
		fuelPricePerLitre: fuelPricePerLitre,
	}
}

// Handle rejects non-positive distance or weight with validation errors.
func (h QuotePriceQueryHandler) Handle(query QuotePriceQuery) (shipment.Price, error) {
	if err := query.Validate(); err != nil {
		return shipment.Price{}, err
	}

	in := query.Input()
	if in.FuelPricePerLitre == 0 {
		in.FuelPricePerLitre = h.fuelPricePerLitre
	}

	return h.pricing.Calculate(in)
}
