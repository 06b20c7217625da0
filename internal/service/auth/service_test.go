package auth

import (
	"context"
	"testing"

	"github.com/storetrack/attendance-backend-go/internal/domain/auth"
	"github.com/storetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/storetrack/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "super-secret"
)

func newAuthEnv(t *testing.T) (auth.Service, *memory.AdminAccountRepository) {
	t.Helper()

	accountRepo := memory.NewAdminAccountRepository()
	jwtService := jwt.NewJWTService("test-secret-key", "1h", "24h")
	svc := NewAuthService(accountRepo, jwtService, nil)

	require.NoError(t, svc.EnsureAccount(context.Background(), testEmail, testPassword))
	return svc, accountRepo
}

func TestEnsureAccountIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo := newAuthEnv(t)

	before, err := accountRepo.Get(ctx)
	require.NoError(t, err)

	// A second call with a different password must not replace the account.
	require.NoError(t, svc.EnsureAccount(ctx, testEmail, "other-password"))

	after, err := accountRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestEnsureAccountStoresHashOnly(t *testing.T) {
	ctx := context.Background()
	_, accountRepo := newAuthEnv(t)

	account, err := accountRepo.Get(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, testPassword, account.PasswordHash)
	assert.NotContains(t, account.PasswordHash, testPassword)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthEnv(t)

	pair, err := svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Greater(t, pair.AccessExpiresAt, int64(0))
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthEnv(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "Admin@Example.COM", Password: testPassword})
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthEnv(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "somebody@example.com", Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthEnv(t)

	pair, err := svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	// The exchanged token is revoked and cannot be used again.
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthEnv(t)

	_, err := svc.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthEnv(t)

	pair, err := svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthEnv(t)

	pair, err := svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.RefreshToken))

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthEnv(t)

	err := svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "short",
	})
	assert.Error(t, err)

	require.NoError(t, svc.ChangePassword(ctx, auth.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "new-password",
	}))

	_, err = svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: "new-password"})
	assert.NoError(t, err)
}

func TestLoginWithGoogleUnconfigured(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthEnv(t)

	_, err := svc.LoginWithGoogle(ctx, "some-code")
	assert.ErrorIs(t, err, auth.ErrOAuthNotConfigured)
}
