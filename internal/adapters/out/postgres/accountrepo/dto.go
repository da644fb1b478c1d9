// Package accountrepo maps customer, driver and admin accounts to the accounts table.
package accountrepo

import (
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO is the row of the accounts table.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:320;not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"not null"`
	Phone        string    `gorm:"size:32"`
	Role         string    `gorm:"size:16;not null;index"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:           a.ID().Bytes(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		FullName:     a.FullName(),
		Phone:        a.Phone(),
		Role:         string(a.Role()),
		IsActive:     a.IsActive(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.FullName,
		dto.Phone,
		account.Role(dto.Role),
		dto.IsActive,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
