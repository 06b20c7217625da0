package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/auth"
	"github.com/storetrack/attendance-backend-go/internal/handler/http/response"
	"github.com/storetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/storetrack/attendance-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService   auth.Service
	jwtService    jwt.Service
	googleService oauth.GoogleService // nil when Google sign-in is not configured
}

func NewAuthHandler(authService auth.Service, jwtService jwt.Service, googleService oauth.GoogleService) AuthHandler {
	return &authHandlerImpl{
		authService:   authService,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login implements AuthHandler. The refresh token travels only in an
// HTTP-only cookie; the JSON body carries the access token.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	pair, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.SuccessWithMessage(w, "Login successful", pair)
}

// Refresh implements AuthHandler.
func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	pair, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.SuccessWithMessage(w, "Token refreshed", pair)
}

// Logout implements AuthHandler.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	response.SuccessWithMessage(w, "Logout successful", nil)
}

// ChangePassword implements AuthHandler.
func (h *authHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed", nil)
}

// LoginWithGoogle implements AuthHandler. Starts the OAuth flow by
// redirecting the browser to Google's consent screen.
func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if h.googleService == nil {
		response.HandleError(w, auth.ErrOAuthNotConfigured)
		return
	}

	state := h.googleService.GenerateState()
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/api/v1/auth",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	if h.googleService == nil {
		response.HandleError(w, auth.ErrOAuthNotConfigured)
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" {
		response.Unauthorized(w, "Missing OAuth state")
		return
	}
	if r.URL.Query().Get("state") != stateCookie.Value {
		response.Unauthorized(w, "OAuth state mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	pair, err := h.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.SuccessWithMessage(w, "Login successful", pair)
}
