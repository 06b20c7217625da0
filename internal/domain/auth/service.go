package auth

import "context"

type Service interface {
	// Login checks the credential against the stored bcrypt hash and issues
	// an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (TokenPair, error)

	// Refresh exchanges a valid refresh token for a new pair and revokes
	// the old one.
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// ChangePassword verifies the current password and stores a new hash.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// LoginWithGoogle completes the OAuth code exchange and issues tokens
	// when the Google account email matches the administrator account.
	LoginWithGoogle(ctx context.Context, code string) (TokenPair, error)

	// EnsureAccount seeds the administrator account from configuration when
	// no account exists yet.
	EnsureAccount(ctx context.Context, email, password string) error
}
