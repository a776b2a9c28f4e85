package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bgarnr/hekacms/internal/auth/domain"
	"github.com/bgarnr/hekacms/internal/auth/dto"
	"github.com/bgarnr/hekacms/internal/auth/password"
	autherror "github.com/bgarnr/hekacms/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserService orchestrates the session lifecycle: login issues a pair and
// persists the refresh token, refresh rotates it, logout clears it. At most
// one refresh token is live per user at any time.
type UserService struct {
	store  domain.CredentialStore
	tokens TokenGenerator
	hasher *password.Hasher
}

func NewUserService(store domain.CredentialStore, tokens TokenGenerator, hasher *password.Hasher) *UserService {
	return &UserService{store: store, tokens: tokens, hasher: hasher}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, autherror.ErrMissingFields
	}

	role, ok := domain.ParseRole(input.Role)
	if !ok {
		return nil, autherror.ErrInvalidRole
	}

	existing, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("new user registered: %s with role %s", user.Email, user.Role)

	out := dto.NewUserOutput(user)

	return &out, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, autherror.ErrMissingFields
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password must be indistinguishable.
	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		log.Printf("failed login attempt for %s", email)
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := time.Now()
	user.RefreshToken = refreshToken
	user.LastLoginAt = &now
	user.UpdatedAt = now

	if err := s.store.Save(ctx, user); err != nil {
		return nil, err
	}

	return &dto.LoginOutput{
		UserOutput:   dto.NewUserOutput(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh rotates the caller's token pair. Validation is two explicit
// steps: the cryptographic check against the refresh secret, then the
// equality check against the stored token. The second step is what revokes
// tokens invalidated by a later login, refresh or logout.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenPair, error) {
	if input.RefreshToken == "" {
		return nil, autherror.ErrMissingRefreshToken
	}

	claims, err := s.tokens.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrRefreshTokenExpired
		}
		return nil, autherror.ErrInvalidRefreshToken
	}

	user, err := s.store.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if user.RefreshToken != input.RefreshToken {
		// Either superseded by a newer login/refresh or cleared by logout.
		// Reuse of a rotated-out token lands here too.
		return nil, autherror.ErrRefreshTokenMismatch
	}

	accessToken, newRefreshToken, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	user.RefreshToken = newRefreshToken
	user.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("token refreshed for user %s", user.Email)

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

// Logout clears the stored refresh token. Unknown emails and users with no
// session succeed silently so the endpoint cannot leak account existence.
func (s *UserService) Logout(ctx context.Context, email string) error {
	user, err := s.store.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	user.RefreshToken = ""
	user.UpdatedAt = time.Now()

	return s.store.Save(ctx, user)
}

// GetUser returns the public view of a user record by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*dto.UserOutput, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	out := dto.NewUserOutput(user)

	return &out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
