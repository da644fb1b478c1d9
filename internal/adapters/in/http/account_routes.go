package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"

	"github.com/labstack/echo/v4"
)

// register signs up an account of the portal's role.
func (s *Server) register(role account.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterRequest
		if err := bindBody(c, &req); err != nil {
			return err
		}

		cmd, err := commands.NewRegisterAccountCommand(s.newID(), req.Email, req.Password, req.FullName, req.Phone, role)
		if err != nil {
			return err
		}

		created, err := s.h.Register.Handle(c.Request().Context(), cmd)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, toAccountResponse(created))
	}
}

// login exchanges credentials for a bearer token valid on the portal.
func (s *Server) login(portal account.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := bindBody(c, &req); err != nil {
			return err
		}

		cmd, err := commands.NewLoginCommand(req.Email, req.Password, portal)
		if err != nil {
			return err
		}

		result, err := s.h.Login.Handle(c.Request().Context(), cmd)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, TokenResponse{
			AccessToken: result.Credential.Token,
			TokenType:   "bearer",
			ExpiresAt:   result.Credential.ExpiresAt,
			Account:     toAccountResponse(result.Account),
		})
	}
}
