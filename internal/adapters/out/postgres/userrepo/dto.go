// Package userrepo provides persistence for user aggregates.
package userrepo

import (
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the database structure for persisting user aggregates.
// Email carries a unique index; removal is a soft delete so historical orders
// keep a resolvable rider/driver reference.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string
	LastName     string
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string
	PhoneNumber  string
	Address      string
	Role         string `gorm:"size:32"`
	IsActive     bool
	CreatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		PhoneNumber:  aggregate.PhoneNumber(),
		Address:      aggregate.Address(),
		Role:         aggregate.Role().String(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.PasswordHash,
		dto.PhoneNumber,
		dto.Address,
		user.Role(dto.Role),
		dto.IsActive,
		dto.CreatedAt,
	)
}
