package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testNow = time.Date(2026, 7, 21, 11, 0, 0, 0, time.UTC)

type handlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f handlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// stubCredentials verifies only the tokens it was given.
type stubCredentials map[string]ports.Claims

func (s stubCredentials) Issue(*account.Account) (ports.Credential, error) {
	return ports.Credential{}, errors.New("not used")
}

func (s stubCredentials) Verify(token string) (ports.Claims, error) {
	claims, ok := s[token]
	if !ok {
		return ports.Claims{}, errs.NewUnauthenticatedError(errors.New("unknown token"))
	}
	return claims, nil
}

type stubAccounts map[kernel.UUID]*account.Account

func (s stubAccounts) Get(_ context.Context, id kernel.UUID) (*account.Account, error) {
	acc, ok := s[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("account", id.String())
	}
	return acc, nil
}

type harness struct {
	t           *testing.T
	e           *echo.Echo
	server      *Server
	api         *APIDocument
	registry    *prometheus.Registry
	logs        *observer.ObservedLogs
	credentials stubCredentials
	accounts    stubAccounts

	customer *account.Account
	driver   *account.Account
	admin    *account.Account
}

func newTestAccount(t *testing.T, email string, role account.Role) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(kernel.NewUUID(), email, "hash", "Test "+role.String(), "", role, testNow)
	require.NoError(t, err)
	return acc
}

// newHarness wires a router whose bearer tokens are "<role>-token".
func newHarness(t *testing.T, h Handlers) *harness {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	hs := &harness{
		t:           t,
		registry:    prometheus.NewRegistry(),
		logs:        logs,
		credentials: stubCredentials{},
		accounts:    stubAccounts{},
		customer:    newTestAccount(t, "asha@example.com", account.RoleCustomer),
		driver:      newTestAccount(t, "ravi@example.com", account.RoleDriver),
		admin:       newTestAccount(t, "ops@example.com", account.RoleAdmin),
	}

	for _, acc := range []*account.Account{hs.customer, hs.driver, hs.admin} {
		hs.credentials[acc.Role().String()+"-token"] = ports.Claims{AccountID: acc.ID(), Role: acc.Role()}
		hs.accounts[acc.ID()] = acc
	}

	api, err := LoadAPIDocument(context.Background())
	require.NoError(t, err)
	hs.api = api

	hs.server = NewServer(h, hs.credentials, hs.accounts)
	hs.server.now = func() time.Time { return testNow }
	hs.e = NewRouter(hs.server, RouterOptions{Logger: zap.New(core), Registry: hs.registry, API: api})
	return hs
}

func (hs *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	hs.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(hs.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	hs.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func newTestShipment(t *testing.T, customerID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), customerID, shipment.Details{
		PickupAddress:   "12 MG Road, Pune",
		DeliveryAddress: "4 Park Street, Kolkata",
		HomeDelivery:    true,
		Weight:          12.5,
		Type:            shipment.Domestic,
	}, shipment.Price{Base: 5000, WeightCharge: 250, FuelSurcharge: 1575, Total: 6825}, testNow)
	require.NoError(t, err)
	return s
}

