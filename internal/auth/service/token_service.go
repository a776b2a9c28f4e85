package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/bgarnr/hekacms/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/bgarnr/hekacms/internal/auth/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenGenerator mints and verifies the access/refresh token pair. Tokens
// are stateless at this layer; refresh revocation happens in UserService
// against the stored token.
type TokenGenerator interface {
	Generate(user *domain.User) (accessToken, refreshToken string, err error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error)
}

// TokenService signs HS256 tokens with two separate secrets so a leaked
// access-token secret cannot be used to forge refresh tokens.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

// Generate issues a fresh access/refresh pair for the given user. Both
// tokens carry {sub, email, role}; only the expiry and signing secret
// differ.
func (ts *TokenService) Generate(user *domain.User) (string, string, error) {
	now := time.Now()

	accessToken, err := ts.sign(user, now, ts.AccessTokenExpiry, ts.AccessTokenSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := ts.sign(user, now, ts.RefreshTokenExpiry, ts.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (ts *TokenService) sign(user *domain.User, now time.Time, expiry time.Duration, secret string) (string, error) {
	claims := JWTCustomClaims{
		Email: user.Email,
		Role:  user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID,
			// A unique jti keeps pairs minted within the same second distinct,
			// which rotation relies on.
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates an access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

// VerifyRefreshToken parses and validates a refresh token string. This is
// only the cryptographic half of refresh validation; the caller still has
// to compare against the stored token.
func (ts *TokenService) VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.RefreshTokenSecret)
}

func (ts *TokenService) verify(tokenString, secret string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
