package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or missing token")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrAccountNotFound     = errors.New("administrator account not found")
	ErrOAuthNotConfigured  = errors.New("google sign-in is not configured")
	ErrOAuthEmailMismatch  = errors.New("google account does not match the administrator email")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
)
