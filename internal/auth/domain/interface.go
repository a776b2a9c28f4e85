package domain

//go:generate mockgen -destination=../../mocks/mock_credential_store.go -package=mocks github.com/bgarnr/hekacms/internal/auth/domain CredentialStore

import "context"

// CredentialStore persists user credential records. FindByEmail and FindByID
// return (nil, nil) when no record exists so callers can distinguish absence
// from storage failure.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	Save(ctx context.Context, user *User) error
}
