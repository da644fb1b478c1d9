package services

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

const (
	baseRateDomestic           = 15.0
	baseRateInternationalAir   = 50.0
	baseRateInternationalSea   = 30.0
	baseRateInternationalTruck = 20.0

	weightRatePerKgKm     = 2.0
	airSurchargeRatio     = 0.25
	expressSurchargeRatio = 0.30
	kmPerLitre            = 8.0

	// DefaultDistanceKm is used when the booking carries no route distance.
	DefaultDistanceKm = 100.0
	// DefaultFuelPricePerLitre is used when no fuel price is configured.
	DefaultFuelPricePerLitre = 100.0
)

// PriceInput carries every factor the price depends on.
type PriceInput struct {
	DistanceKm        float64
	WeightKg          float64
	Type              shipment.Type
	Mode              shipment.TransportMode
	Express           bool
	FuelPricePerLitre float64
}

// PriceCalculator computes itemised shipment prices. It is a pure function of
// its input.
//
// Components:
//   - base: per-km rate by type and mode (domestic 15, air 50, sea 30, truck 20)
//   - weight: weight × 2 × distance
//   - mode surcharge: 25% of base for international air
//   - fuel: distance / 8 km per litre × fuel price
//   - express: 30% of base + weight
//
// Every component and the total are rounded to two decimals.
type PriceCalculator struct{}

func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// BaseRate returns the per-km rate applied to the input.
func (c PriceCalculator) BaseRate(t shipment.Type, mode shipment.TransportMode) float64 {
	if t != shipment.International {
		return baseRateDomestic
	}
	switch mode {
	case shipment.ModeAir:
		return baseRateInternationalAir
	case shipment.ModeSea:
		return baseRateInternationalSea
	case shipment.ModeTruck:
		return baseRateInternationalTruck
	default:
		return baseRateDomestic
	}
}

// Calculate rejects non-positive distance or weight and a negative fuel price.
func (c PriceCalculator) Calculate(in PriceInput) (shipment.Price, error) {
	var problems []error
	if in.DistanceKm <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"distance", fmt.Errorf("%.2f is not greater than 0", in.DistanceKm)))
	}
	if in.WeightKg <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%.2f is not greater than 0", in.WeightKg)))
	}
	if in.FuelPricePerLitre < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"fuel price", fmt.Errorf("%.2f is negative", in.FuelPricePerLitre)))
	}
	if err := errors.Join(problems...); err != nil {
		return shipment.Price{}, err
	}

	base := c.BaseRate(in.Type, in.Mode) * in.DistanceKm
	weight := in.WeightKg * weightRatePerKgKm * in.DistanceKm

	var mode float64
	if in.Type == shipment.International && in.Mode == shipment.ModeAir {
		mode = base * airSurchargeRatio
	}

	fuel := in.DistanceKm / kmPerLitre * in.FuelPricePerLitre

	var express float64
	if in.Express {
		express = (base + weight) * expressSurchargeRatio
	}

	return shipment.Price{
		Base:          round2(base),
		WeightCharge:  round2(weight),
		ModeSurcharge: round2(mode),
		FuelSurcharge: round2(fuel),
		ExpressCharge: round2(express),
		Total:         round2(base + weight + mode + fuel + express),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
