// Package auth issues bearer tokens and hashes passwords for the three portals.
package auth

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "logistics"

var ErrSecretIsTooShort = errors.New("token secret must be at least 32 bytes")

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTCredentialService signs HS256 tokens whose subject is the account id.
type JWTCredentialService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTCredentialService(secret string, ttl time.Duration) (*JWTCredentialService, error) {
	if len(secret) < 32 {
		return nil, ErrSecretIsTooShort
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}
	return &JWTCredentialService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *JWTCredentialService) Issue(acc *account.Account) (ports.Credential, error) {
	if acc == nil {
		return ports.Credential{}, errs.NewValueIsRequiredError("account")
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)
	claims := tokenClaims{
		Role: acc.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   acc.ID().String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return ports.Credential{}, err
	}
	return ports.Credential{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *JWTCredentialService) Verify(token string) (ports.Claims, error) {
	if token == "" {
		return ports.Claims{}, errs.NewUnauthenticatedError(errors.New("token is missing"))
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ports.Claims{}, errs.NewUnauthenticatedError(err)
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.Claims{}, errs.NewUnauthenticatedError(err)
	}
	role, err := account.ParseRole(claims.Role)
	if err != nil {
		return ports.Claims{}, errs.NewUnauthenticatedError(err)
	}

	return ports.Claims{
		AccountID: accountID,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
