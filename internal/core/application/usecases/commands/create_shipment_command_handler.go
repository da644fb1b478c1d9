package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// CreateShipmentCommandHandler prices and books a shipment. The shipment starts
// PENDING without a driver; no ledger entry is written for the booking.
type CreateShipmentCommandHandler struct {
	uowFactory        ShipmentUoWFactory
	accessGuard       services.AccessGuard
	pricing           services.PriceCalculator
	fuelPricePerLitre float64
}

// NewCreateShipmentCommandHandler creates the handler. fuelPricePerLitre is the
// configured fuel price; a non-positive value falls back to
// services.DefaultFuelPricePerLitre.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, fuelPricePerLitre float64) CreateShipmentCommandHandler {
	if fuelPricePerLitre <= 0 {
		fuelPricePerLitre = services.DefaultFuelPricePerLitre
	}
	return CreateShipmentCommandHandler{
		uowFactory:        uowFactory,
		accessGuard:       services.NewAccessGuard(),
		pricing:           services.NewPriceCalculator(),
		fuelPricePerLitre: fuelPricePerLitre,
	}
}

func (h CreateShipmentCommandHandler) Handle(ctx context.Context, command CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	actor := command.Actor()
	if err := h.accessGuard.AuthorizeRole(actor, account.RoleCustomer, "create shipment"); err != nil {
		return nil, err
	}

	details := command.Details()
	distance := command.DistanceKm()
	if distance == 0 {
		distance = services.DefaultDistanceKm
	}

	price, err := h.pricing.Calculate(services.PriceInput{
		DistanceKm:        distance,
		WeightKg:          details.Weight,
		Type:              details.Type,
		Mode:              details.TransportMode,
		Express:           details.Express,
		FuelPricePerLitre: h.fuelPricePerLitre,
	})
	if err != nil {
		return nil, err
	}

	created, err := shipment.NewShipment(command.ShipmentID(), actor.ID(), details, price, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
