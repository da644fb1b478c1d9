package http

import (
	"context"
	"net/http"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	listDrivers := handlerFunc[queries.ListDriversQuery, []queries.AccountResponse](
		func(_ context.Context, _ queries.ListDriversQuery) ([]queries.AccountResponse, error) {
			return []queries.AccountResponse{}, nil
		})

	t.Run("admits_token_of_portal_role", func(t *testing.T) {
		hs := newHarness(t, Handlers{ListDrivers: listDrivers})

		rec := hs.do(http.MethodGet, "/api/v1/admin/drivers", "admin-token", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing_token_is_unauthorized", func(t *testing.T) {
		hs := newHarness(t, Handlers{ListDrivers: listDrivers})

		rec := hs.do(http.MethodGet, "/api/v1/admin/drivers", "", nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode[Error](t, rec)
		assert.Equal(t, http.StatusUnauthorized, body.Code)
	})

	t.Run("invalid_token_is_unauthorized", func(t *testing.T) {
		hs := newHarness(t, Handlers{ListDrivers: listDrivers})

		rec := hs.do(http.MethodGet, "/api/v1/admin/drivers", "forged", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("other_portal_is_forbidden", func(t *testing.T) {
		hs := newHarness(t, Handlers{ListDrivers: listDrivers})

		rec := hs.do(http.MethodGet, "/api/v1/admin/drivers", "driver-token", nil)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, decode[Error](t, rec).Message, "admin portal")
	})

	t.Run("deleted_account_is_unauthorized", func(t *testing.T) {
		hs := newHarness(t, Handlers{ListDrivers: listDrivers})
		hs.credentials["ghost-token"] = ports.Claims{AccountID: kernel.NewUUID(), Role: account.RoleAdmin}

		rec := hs.do(http.MethodGet, "/api/v1/admin/drivers", "ghost-token", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("stale_role_is_unauthorized", func(t *testing.T) {
		hs := newHarness(t, Handlers{ListDrivers: listDrivers})
		hs.credentials["old-token"] = ports.Claims{AccountID: hs.driver.ID(), Role: account.RoleAdmin}

		rec := hs.do(http.MethodGet, "/api/v1/admin/drivers", "old-token", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer   abc ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer  ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}
