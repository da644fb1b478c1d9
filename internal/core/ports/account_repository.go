package ports

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for accounts of every role.
type AccountRepository interface {
	// Add persists a new account. A duplicate email is reported as a
	// validation error.
	Add(ctx context.Context, aggregate *account.Account) error

	Update(ctx context.Context, aggregate *account.Account) error

	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail matches the normalised (trimmed, lower-case) address.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
