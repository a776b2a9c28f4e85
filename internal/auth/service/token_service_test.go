package service

import (
	"testing"
	"time"

	"github.com/bgarnr/hekacms/internal/auth/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		accessSecret   string
		refreshSecret  string
		accessMinutes  int
		refreshMinutes int
	}{
		{
			name:           "valid parameters",
			accessSecret:   "access-secret-key",
			refreshSecret:  "refresh-secret-key",
			accessMinutes:  15,
			refreshMinutes: 10080,
		},
		{
			name:           "empty secrets",
			accessSecret:   "",
			refreshSecret:  "",
			accessMinutes:  30,
			refreshMinutes: 2880,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.accessSecret, tt.refreshSecret, tt.accessMinutes, tt.refreshMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.accessSecret, ts.AccessTokenSecret)
			assert.Equal(t, tt.refreshSecret, ts.RefreshTokenSecret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, time.Duration(tt.refreshMinutes)*time.Minute, ts.RefreshTokenExpiry)
		})
	}
}

func TestTokenService_Generate(t *testing.T) {
	user := &domain.User{
		ID:    "user-123",
		Email: "test@example.com",
		Role:  domain.RoleAdmin,
	}

	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	before := time.Now()
	accessToken, refreshToken, err := ts.Generate(user)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := ts.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", accessClaims.Subject)
	assert.Equal(t, "test@example.com", accessClaims.Email)
	assert.Equal(t, "admin", accessClaims.Role)
	assert.NotEmpty(t, accessClaims.ID)

	refreshClaims, err := ts.VerifyRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", refreshClaims.Subject)
	assert.Equal(t, "test@example.com", refreshClaims.Email)
	assert.Equal(t, "admin", refreshClaims.Role)

	// Refresh tokens outlive access tokens.
	assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
	assert.True(t, accessClaims.ExpiresAt.After(before))
}

func TestTokenService_Generate_DistinctPairs(t *testing.T) {
	user := &domain.User{ID: "user-123", Email: "test@example.com", Role: domain.RoleUser}
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	_, first, err := ts.Generate(user)
	require.NoError(t, err)
	_, second, err := ts.Generate(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenService_KeySeparation(t *testing.T) {
	user := &domain.User{ID: "user-123", Email: "test@example.com", Role: domain.RoleUser}
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	accessToken, refreshToken, err := ts.Generate(user)
	require.NoError(t, err)

	// A refresh token must not verify as an access token, and vice versa.
	_, err = ts.VerifyAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = ts.VerifyRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestTokenService_VerifyAccessToken_Failures(t *testing.T) {
	user := &domain.User{ID: "user-123", Email: "test@example.com", Role: domain.RoleUser}
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	t.Run("malformed token", func(t *testing.T) {
		_, err := ts.VerifyAccessToken("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("different-secret", "refresh-secret", 15, 10080)
		token, _, err := other.Generate(user)
		require.NoError(t, err)

		_, err = ts.VerifyAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenService("access-secret", "refresh-secret", -1, 10080)
		token, _, err := expired.Generate(user)
		require.NoError(t, err)

		_, err = ts.VerifyAccessToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong signing method", func(t *testing.T) {
		// alg=none tokens must be rejected outright.
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTCustomClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-123"},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ts.VerifyAccessToken(unsigned)
		assert.Error(t, err)
	})
}

func TestTokenService_VerifyRefreshToken_Expired(t *testing.T) {
	user := &domain.User{ID: "user-123", Email: "test@example.com", Role: domain.RoleUser}
	ts := NewTokenService("access-secret", "refresh-secret", 15, -1)

	_, refreshToken, err := ts.Generate(user)
	require.NoError(t, err)

	_, err = ts.VerifyRefreshToken(refreshToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
