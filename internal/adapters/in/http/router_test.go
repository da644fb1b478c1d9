package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isOpsRoute(r *echo.Route) bool {
	return r.Method == echo.RouteNotFound ||
		r.Path == "/metrics" || r.Path == "/openapi.json" || strings.HasPrefix(r.Path, "/swagger")
}

func TestRouter_EveryRouteIsDocumented(t *testing.T) {
	hs := newHarness(t, Handlers{})

	for _, r := range hs.e.Routes() {
		if isOpsRoute(r) {
			continue
		}
		assert.True(t, hs.api.HasOperation(r.Method, r.Path), "%s %s is not in openapi.yaml", r.Method, r.Path)
	}
}

func TestRouter_EveryDocumentedOperationIsRouted(t *testing.T) {
	hs := newHarness(t, Handlers{})

	routed := make(map[string]bool)
	for _, r := range hs.e.Routes() {
		routed[r.Method+" "+toOpenAPIPath(r.Path)] = true
	}

	for path, item := range hs.api.doc.Paths.Map() {
		for method := range item.Operations() {
			assert.True(t, routed[method+" "+path], "%s %s has no route", method, path)
		}
	}
}

func TestToOpenAPIPath(t *testing.T) {
	tests := map[string]string{
		"/health":                          "/health",
		"/api/v1/admin/shipments/:id":      "/api/v1/admin/shipments/{id}",
		"/api/v1/driver/shipments/:id/cod": "/api/v1/driver/shipments/{id}/cod",
		"/a/:x/b/:y":                       "/a/{x}/b/{y}",
	}
	for in, want := range tests {
		assert.Equal(t, want, toOpenAPIPath(in))
	}
}

func TestRouter_OpsEndpoints(t *testing.T) {
	hs := newHarness(t, Handlers{})

	t.Run("health", func(t *testing.T) {
		rec := hs.do(http.MethodGet, "/health", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", decode[HealthResponse](t, rec).Status)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("openapi_document", func(t *testing.T) {
		rec := hs.do(http.MethodGet, "/openapi.json", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		doc := decode[map[string]any](t, rec)
		assert.Equal(t, "3.0.3", doc["openapi"])
	})

	t.Run("metrics_count_requests_by_route", func(t *testing.T) {
		hs.do(http.MethodGet, "/api/v1/admin/shipments/not-a-uuid", "", nil)

		rec := hs.do(http.MethodGet, "/metrics", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(),
			`logistics_http_requests_total{method="GET",route="/api/v1/admin/shipments/:id",status="401"} 1`)
	})
}
