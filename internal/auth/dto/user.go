package dto

import (
	"time"

	"github.com/bgarnr/hekacms/internal/auth/domain"
)

// UserOutput is the public view of a user record. The password hash and the
// stored refresh token never appear here.
type UserOutput struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role.String(),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
