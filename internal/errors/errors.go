package errors

import (
	"errors"
	"net/http"
)

var (
	ErrMissingFields        = errors.New("email and password are required")
	ErrInvalidCredentials   = errors.New("email or password is incorrect")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrInvalidRole          = errors.New("invalid role")
	ErrMissingRefreshToken  = errors.New("refresh token is required")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired")
	ErrRefreshTokenMismatch = errors.New("refresh token does not match active session")
	ErrUserNotFound         = errors.New("user not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
)

// HTTPStatus maps a domain error to the status code the client should see.
// Anything unrecognized is treated as a storage failure.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrEmailAlreadyInUse),
		errors.Is(err, ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, ErrMissingRefreshToken),
		errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidRefreshToken),
		errors.Is(err, ErrRefreshTokenExpired),
		errors.Is(err, ErrRefreshTokenMismatch),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
