package http

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const actorKey = "actor"

// AccountLoader re-reads the token holder on every request, so deactivation
// and role changes apply to tokens already issued.
type AccountLoader interface {
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)
}

// Authenticate admits bearers of a valid token whose account still exists,
// still has the token's role and belongs to the portal.
func Authenticate(credentials ports.CredentialService, accounts AccountLoader, portal account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return errs.NewUnauthenticatedError(errors.New("bearer token is missing"))
			}

			claims, err := credentials.Verify(token)
			if err != nil {
				return err
			}

			acc, err := accounts.Get(c.Request().Context(), claims.AccountID)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewUnauthenticatedError(errors.New("account no longer exists"))
			}
			if err != nil {
				return err
			}
			if acc.Role() != claims.Role {
				return errs.NewUnauthenticatedError(errors.New("token role is stale"))
			}
			if acc.Role() != portal {
				return errs.NewForbiddenError("use the "+portal.String()+" portal",
					"account is a "+acc.Role().String())
			}

			c.Set(actorKey, acc)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// actorFrom returns the authenticated account. Routes without Authenticate
// get nil, which every command and query rejects as unauthenticated.
func actorFrom(c echo.Context) *account.Account {
	acc, _ := c.Get(actorKey).(*account.Account)
	return acc
}

// RequestLogger logs one line per request with its outcome.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("route", c.Path()),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("remote_ip", c.RealIP()),
			}
			switch {
			case status >= 500:
				logger.Error("request", fields...)
			case status >= 400:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}

// Metrics counts requests and observes their latency per route pattern.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logistics",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "logistics",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.requests, m.latency)
	return m
}

// Middleware renders handler errors itself, so the recorded status is the one
// sent to the client.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.requests.WithLabelValues(c.Request().Method, route, strconv.Itoa(c.Response().Status)).Inc()
			m.latency.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
