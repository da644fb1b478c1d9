package http

import (
	"net/http"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v1"

// RouterOptions carries the cross-cutting pieces of the HTTP stack.
type RouterOptions struct {
	Logger   *zap.Logger
	Registry *prometheus.Registry
	API      *APIDocument
}

// NewRouter builds the echo instance with every portal mounted.
func NewRouter(s *Server, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// echo's own logger only reports recovered panics.
	e.Logger.SetLevel(gommonlog.ERROR)
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(opts.Logger)

	metrics := NewMetrics(opts.Registry)
	e.Use(
		middleware.RequestID(),
		RequestLogger(opts.Logger),
		metrics.Middleware(),
		middleware.Recover(),
		middleware.BodyLimit("30M"),
	)

	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	if opts.API != nil {
		e.GET("/openapi.json", opts.API.serve)
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group(apiPrefix)
	s.mountCustomer(api.Group("/customer"))
	s.mountDriver(api.Group("/driver"))
	s.mountAdmin(api.Group("/admin"))

	return e
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

func (s *Server) mountCustomer(g *echo.Group) {
	g.POST("/register", s.register(account.RoleCustomer))
	g.POST("/login", s.login(account.RoleCustomer))

	auth := g.Group("", Authenticate(s.credentials, s.accounts, account.RoleCustomer))
	auth.POST("/shipments", s.createShipment)
	auth.GET("/shipments", s.listShipments)
	auth.GET("/shipments/:id", s.getShipment)
	auth.GET("/shipments/:id/tracking", s.trackingHistory)
	auth.GET("/shipments/:id/tracking/latest", s.lastPosition)
	auth.POST("/shipments/:id/cancel", s.cancelShipment)
	auth.POST("/pricing/quote", s.quotePrice)
}

func (s *Server) mountDriver(g *echo.Group) {
	g.POST("/register", s.register(account.RoleDriver))
	g.POST("/login", s.login(account.RoleDriver))

	auth := g.Group("", Authenticate(s.credentials, s.accounts, account.RoleDriver))
	auth.GET("/dashboard", s.dashboard)
	auth.GET("/shipments", s.listShipments)
	auth.GET("/shipments/:id", s.getShipment)
	auth.POST("/shipments/:id/pickup", s.advance(shipment.ActionPickUp))
	auth.POST("/shipments/:id/in-transit", s.advance(shipment.ActionStartTransit))
	auth.POST("/shipments/:id/out-for-delivery", s.advance(shipment.ActionOutForDelivery))
	auth.POST("/shipments/:id/deliver", s.deliver())
	auth.POST("/shipments/:id/fail", s.fail())
	auth.POST("/shipments/:id/cod", s.collectCOD())
	auth.POST("/shipments/:id/customs-clearance", s.confirmCustoms())
	auth.POST("/shipments/:id/port-pickup", s.confirmPortPickup())
	auth.POST("/shipments/:id/delay", s.reportDelay())
	auth.POST("/shipments/:id/location", s.recordLocation)
	auth.POST("/pricing/quote", s.quotePrice)
	auth.POST("/voice/command", s.voiceCommand)
	auth.POST("/voice/speech", s.synthesizeSpeech)
	auth.GET("/voice/commands", s.voiceCommands)
}

func (s *Server) mountAdmin(g *echo.Group) {
	g.POST("/login", s.login(account.RoleAdmin))

	auth := g.Group("", Authenticate(s.credentials, s.accounts, account.RoleAdmin))
	auth.GET("/shipments", s.listShipments)
	auth.GET("/shipments/:id", s.getShipment)
	auth.POST("/shipments/:id/assign", s.assignDriver)
	auth.PUT("/shipments/:id/status", s.overrideStatus)
	auth.GET("/drivers", s.listDrivers)
	auth.GET("/drivers/:id", s.getDriver)
	auth.POST("/drivers/:id/approve", s.setDriverActive(true))
	auth.POST("/drivers/:id/deactivate", s.setDriverActive(false))
}
