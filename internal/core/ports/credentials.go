package ports

import (
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
)

// Claims is what a verified bearer token says about its holder. The account is
// re-read on every request, so claims never substitute for account state.
type Claims struct {
	AccountID kernel.UUID
	Role      account.Role
	ExpiresAt time.Time
}

// Credential is an issued bearer token.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// CredentialService issues and verifies bearer tokens.
type CredentialService interface {
	Issue(acc *account.Account) (Credential, error)

	// Verify returns an *errs.UnauthenticatedError for malformed, forged or
	// expired tokens.
	Verify(token string) (Claims, error)
}

// PasswordHasher hashes passwords at registration and compares them at login.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns an error when password does not match hash.
	Compare(hash, password string) error
}
