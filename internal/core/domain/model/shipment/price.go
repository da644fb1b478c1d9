package shipment

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// Price is the breakdown of a shipment's charges. Total is the sum of the components.
type Price struct {
	Base          float64
	WeightCharge  float64
	ModeSurcharge float64
	FuelSurcharge float64
	ExpressCharge float64
	Total         float64
}

func (p Price) Validate() error {
	check := func(name string, v float64) error {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%.2f is negative", v))
		}
		return nil
	}

	return errors.Join(
		check("base price", p.Base),
		check("weight charge", p.WeightCharge),
		check("mode surcharge", p.ModeSurcharge),
		check("fuel surcharge", p.FuelSurcharge),
		check("express charge", p.ExpressCharge),
		check("total price", p.Total),
	)
}
