package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/storetrack/attendance-backend-go/internal/domain/auth"
	"github.com/storetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/storetrack/attendance-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	accountRepo auth.AccountRepository
	jwtService  jwt.Service
	google      oauth.GoogleService // nil when Google sign-in is not configured
}

func NewAuthService(accountRepo auth.AccountRepository, jwtService jwt.Service, google oauth.GoogleService) auth.Service {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		google:      google,
	}
}

// EnsureAccount implements auth.Service. It is called once at startup; an
// existing account always wins over the configured bootstrap credential.
func (a *AuthServiceImpl) EnsureAccount(ctx context.Context, email, password string) error {
	_, err := a.accountRepo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auth.ErrAccountNotFound) {
		return fmt.Errorf("failed to look up administrator account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	if _, err := a.accountRepo.Create(ctx, auth.Account{
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("failed to create administrator account: %w", err)
	}

	slog.Info("Administrator account seeded", "email", email)
	return nil
}

// Login implements auth.Service.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPair{}, err
	}

	account, err := a.accountRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return auth.TokenPair{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPair{}, fmt.Errorf("failed to load administrator account: %w", err)
	}

	if !strings.EqualFold(account.Email, req.Email) {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(account)
}

// Refresh implements auth.Service. The old refresh token is revoked so each
// token can be exchanged at most once.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenPair{}, auth.ErrRefreshTokenRevoked
	}

	accountID, err := a.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	account, err := a.accountRepo.Get(ctx)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to load administrator account: %w", err)
	}
	if account.ID != accountID {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	a.jwtService.RevokeToken(refreshToken)
	return a.issueTokens(account)
}

// Logout implements auth.Service.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// ChangePassword implements auth.Service.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	account, err := a.accountRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load administrator account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := a.accountRepo.UpdatePassword(ctx, account.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	slog.Info("Administrator password changed")
	return nil
}

// LoginWithGoogle implements auth.Service.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenPair, error) {
	if a.google == nil {
		return auth.TokenPair{}, auth.ErrOAuthNotConfigured
	}

	token, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}

	account, err := a.accountRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return auth.TokenPair{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPair{}, fmt.Errorf("failed to load administrator account: %w", err)
	}

	if !strings.EqualFold(account.Email, info.Email) {
		return auth.TokenPair{}, auth.ErrOAuthEmailMismatch
	}

	return a.issueTokens(account)
}

func (a *AuthServiceImpl) issueTokens(account auth.Account) (auth.TokenPair, error) {
	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}
