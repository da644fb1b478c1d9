package http

import (
	"net/http"
	"strings"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// listShipments is scoped by the caller's role: customers see their own,
// drivers their active assignments, administrators everything.
func (s *Server) listShipments(c echo.Context) error {
	query, err := queries.NewListShipmentsQuery(actorFrom(c), queryStatus(c))
	if err != nil {
		return err
	}

	snaps, err := s.h.ListShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponses(snaps))
}

func (s *Server) getShipment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentQuery(actorFrom(c), id)
	if err != nil {
		return err
	}

	snap, err := s.h.GetShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(snap))
}

func (s *Server) createShipment(c echo.Context) error {
	var req CreateShipmentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	details, err := req.details()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateShipmentCommand(actorFrom(c), s.newID(), details, req.DistanceKm)
	if err != nil {
		return err
	}

	created, err := s.h.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toShipmentResponse(created.Snapshot()))
}

// details parses the enumerations; transport mode and port are read only when
// given, and the aggregate decides whether they are required.
func (r CreateShipmentRequest) details() (shipment.Details, error) {
	d := shipment.Details{
		PickupAddress:   r.PickupLocation,
		DeliveryAddress: r.DeliveryLocation,
		HomePickup:      r.IsHomePickup,
		HomeDelivery:    true,
		PackageType:     r.CargoType,
		Weight:          r.Weight,
		Dimensions:      r.Dimensions,
		Description:     r.Description,
		Type:            shipment.Domestic,
		IsCOD:           r.IsCOD,
		CODAmount:       r.CODAmount,
		Express:         r.IsExpress,
	}
	if r.IsHomeDelivery != nil {
		d.HomeDelivery = *r.IsHomeDelivery
	}

	var err error
	if r.ShipmentType != "" {
		if d.Type, err = shipment.ParseType(r.ShipmentType); err != nil {
			return shipment.Details{}, err
		}
	}
	if r.TransportMode != "" {
		if d.TransportMode, err = shipment.ParseTransportMode(r.TransportMode); err != nil {
			return shipment.Details{}, err
		}
	}
	if strings.TrimSpace(r.PortOfEntry) != "" {
		if d.Port, err = shipment.ParsePort(r.PortOfEntry); err != nil {
			return shipment.Details{}, err
		}
	}
	return d, nil
}

func (s *Server) cancelShipment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelShipmentCommand(actorFrom(c), id)
	if err != nil {
		return err
	}

	cancelled, err := s.h.CancelShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(cancelled.Snapshot()))
}

func (s *Server) trackingHistory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetTrackingHistoryQuery(actorFrom(c), id)
	if err != nil {
		return err
	}

	entries, err := s.h.GetTrackingHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	resp := make([]TrackingEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = fromTrackingView(e)
	}
	return c.JSON(http.StatusOK, resp)
}

// lastPosition answers 204 until the first fix is recorded.
func (s *Server) lastPosition(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetLastPositionQuery(actorFrom(c), id)
	if err != nil {
		return err
	}

	entry, err := s.h.GetLastPosition.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if entry == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, fromTrackingView(*entry))
}

func (s *Server) quotePrice(c echo.Context) error {
	var req QuoteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	query, err := queries.NewQuotePriceQuery(req.DistanceKm, req.WeightKg, req.ShipmentType,
		req.TransportMode, req.IsExpress, req.FuelPricePerLitre)
	if err != nil {
		return err
	}

	price, err := s.h.QuotePrice.Handle(query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPriceResponse(price))
}
