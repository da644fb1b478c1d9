package queries

import (
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountResponse is the public view of an account. The password hash is never
// selected.
type AccountResponse struct {
	ID        kernel.UUID
	Email     string
	FullName  string
	Phone     string
	Role      account.Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type accountRow struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Phone     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

var accountColumns = []string{"id", "email", "full_name", "phone", "role", "is_active", "created_at", "updated_at"}

func (r accountRow) toResponse() (AccountResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return AccountResponse{}, err
	}

	return AccountResponse{
		ID:        id,
		Email:     r.Email,
		FullName:  r.FullName,
		Phone:     r.Phone,
		Role:      account.Role(r.Role),
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}, nil
}
