package auth

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var issuedAt = time.Date(2026, 7, 21, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, now time.Time) *JWTCredentialService {
	t.Helper()
	svc, err := NewJWTCredentialService(testSecret, time.Hour)
	require.NoError(t, err)
	svc.now = func() time.Time { return now }
	return svc
}

func newDriver(t *testing.T) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(kernel.NewUUID(), "ravi@example.com", "hash",
		"Ravi Kumar", "+91-9000000000", account.RoleDriver, issuedAt)
	require.NoError(t, err)
	return acc
}

func TestNewJWTCredentialService(t *testing.T) {
	t.Run("rejects_short_secret", func(t *testing.T) {
		_, err := NewJWTCredentialService("short", time.Hour)
		require.ErrorIs(t, err, ErrSecretIsTooShort)
	})

	t.Run("rejects_non_positive_ttl", func(t *testing.T) {
		_, err := NewJWTCredentialService(testSecret, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestJWTCredentialService_IssueAndVerify(t *testing.T) {
	// Given
	driver := newDriver(t)
	svc := newTestService(t, issuedAt)

	// When
	cred, err := svc.Issue(driver)
	require.NoError(t, err)
	claims, err := svc.Verify(cred.Token)

	// Then
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), cred.ExpiresAt)
	assert.True(t, claims.AccountID.IsEqual(driver.ID()))
	assert.Equal(t, account.RoleDriver, claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(cred.ExpiresAt))
}

func TestJWTCredentialService_Verify(t *testing.T) {
	driver := newDriver(t)

	t.Run("rejects_expired_token", func(t *testing.T) {
		// Given
		cred, err := newTestService(t, issuedAt).Issue(driver)
		require.NoError(t, err)
		later := newTestService(t, issuedAt.Add(2*time.Hour))

		// When
		_, err = later.Verify(cred.Token)

		// Then
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("rejects_token_signed_with_another_secret", func(t *testing.T) {
		// Given
		other, err := NewJWTCredentialService(strings.Repeat("x", 32), time.Hour)
		require.NoError(t, err)
		other.now = func() time.Time { return issuedAt }
		cred, err := other.Issue(driver)
		require.NoError(t, err)

		// When
		_, err = newTestService(t, issuedAt).Verify(cred.Token)

		// Then
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("rejects_unsigned_token", func(t *testing.T) {
		// Given
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Subject:   driver.ID().String(),
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		// When
		_, err = newTestService(t, issuedAt).Verify(token)

		// Then
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		// Given
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
			Role: "dispatcher",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Subject:   driver.ID().String(),
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		// When
		_, err = newTestService(t, issuedAt).Verify(token)

		// Then
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("rejects_malformed_and_empty_tokens", func(t *testing.T) {
		svc := newTestService(t, issuedAt)

		_, err := svc.Verify("not-a-token")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)

		_, err = svc.Verify("")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
