package domain

import "time"

// Role is the closed set of authorization roles. Anything else is rejected
// at the registration boundary rather than at authorization time.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole validates a raw role string. An empty string maps to the
// default role.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case "":
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	// RefreshToken is the single currently-valid refresh token for this
	// user, or empty when logged out. Overwritten on every login/refresh.
	RefreshToken string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}
