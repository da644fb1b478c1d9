package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

func (s *Server) dashboard(c echo.Context) error {
	query, err := queries.NewGetDriverDashboardQuery(actorFrom(c), s.now())
	if err != nil {
		return err
	}

	d, err := s.h.GetDashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(d))
}

// driverAction binds the shipment id and a request body, then runs the
// command built from them. Every driver action answers with the updated
// shipment.
func driverAction[Req any, C any](
	handler shipmentCommand[C],
	build func(actor *account.Account, id kernel.UUID, req Req) (C, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathUUID(c, "id")
		if err != nil {
			return err
		}

		var req Req
		if err = bindBody(c, &req); err != nil {
			return err
		}

		cmd, err := build(actorFrom(c), id, req)
		if err != nil {
			return err
		}

		updated, err := handler.Handle(c.Request().Context(), cmd)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toShipmentResponse(updated.Snapshot()))
	}
}

func (s *Server) advance(action shipment.Action) echo.HandlerFunc {
	return driverAction(s.h.AdvanceShipment,
		func(actor *account.Account, id kernel.UUID, req NotesRequest) (commands.AdvanceShipmentCommand, error) {
			return commands.NewAdvanceShipmentCommand(actor, id, action, req.Notes)
		})
}

func (s *Server) deliver() echo.HandlerFunc {
	return driverAction(s.h.DeliverShipment,
		func(actor *account.Account, id kernel.UUID, req DeliverRequest) (commands.DeliverShipmentCommand, error) {
			return commands.NewDeliverShipmentCommand(actor, id, shipment.DeliveryProof{
				Signature: req.Signature,
				PhotoURL:  req.PhotoProof,
				Notes:     req.Notes,
			})
		})
}

func (s *Server) fail() echo.HandlerFunc {
	return driverAction(s.h.FailShipment,
		func(actor *account.Account, id kernel.UUID, req FailRequest) (commands.FailShipmentCommand, error) {
			return commands.NewFailShipmentCommand(actor, id, req.FailureReason, req.Notes)
		})
}

func (s *Server) collectCOD() echo.HandlerFunc {
	return driverAction(s.h.CollectCOD,
		func(actor *account.Account, id kernel.UUID, req CODRequest) (commands.CollectCODCommand, error) {
			return commands.NewCollectCODCommand(actor, id, req.AmountCollected)
		})
}

func (s *Server) confirmCustoms() echo.HandlerFunc {
	return driverAction(s.h.ConfirmCustoms,
		func(actor *account.Account, id kernel.UUID, req CustomsClearanceRequest) (commands.ConfirmCustomsClearanceCommand, error) {
			return commands.NewConfirmCustomsClearanceCommand(actor, id, req.ClearanceNotes)
		})
}

func (s *Server) confirmPortPickup() echo.HandlerFunc {
	return driverAction(s.h.ConfirmPortPickup,
		func(actor *account.Account, id kernel.UUID, req PortPickupRequest) (commands.ConfirmPortPickupCommand, error) {
			return commands.NewConfirmPortPickupCommand(actor, id, req.PortLocation, req.Notes)
		})
}

func (s *Server) reportDelay() echo.HandlerFunc {
	return driverAction(s.h.ReportDelay,
		func(actor *account.Account, id kernel.UUID, req DelayRequest) (commands.ReportDelayCommand, error) {
			return commands.NewReportDelayCommand(actor, id, req.Reason, req.Notes)
		})
}

func (s *Server) recordLocation(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req LocationRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRecordLocationCommand(actorFrom(c), id,
		req.Latitude, req.Longitude, req.LocationName, req.Note)
	if err != nil {
		return err
	}

	entry, err := s.h.RecordLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTrackingEntryResponse(entry))
}
