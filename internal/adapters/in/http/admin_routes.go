package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) assignDriver(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req AssignRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver_id", err)
	}

	cmd, err := commands.NewAssignDriverCommand(actorFrom(c), id, driverID)
	if err != nil {
		return err
	}

	assigned, err := s.h.AssignDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(assigned.Snapshot()))
}

// overrideStatus rejects unknown statuses with a message listing the legal
// values before anything is loaded.
func (s *Server) overrideStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req OverrideStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewOverrideStatusCommand(actorFrom(c), id, req.Status)
	if err != nil {
		return err
	}

	updated, err := s.h.OverrideStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(updated.Snapshot()))
}

func (s *Server) listDrivers(c echo.Context) error {
	query, err := queries.NewListDriversQuery(actorFrom(c))
	if err != nil {
		return err
	}

	drivers, err := s.h.ListDrivers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	resp := make([]AccountResponse, len(drivers))
	for i, d := range drivers {
		resp[i] = fromAccountView(d)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) getDriver(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetDriverQuery(actorFrom(c), id)
	if err != nil {
		return err
	}

	driver, err := s.h.GetDriver.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fromAccountView(driver))
}

// setDriverActive serves both approve (active) and deactivate.
func (s *Server) setDriverActive(active bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathUUID(c, "id")
		if err != nil {
			return err
		}

		cmd, err := commands.NewSetDriverActiveCommand(actorFrom(c), id, active)
		if err != nil {
			return err
		}

		driver, err := s.h.SetDriverActive.Handle(c.Request().Context(), cmd)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toAccountResponse(driver))
	}
}
