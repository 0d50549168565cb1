package auth

import (
	"context"
	"net/http"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
	"github.com/haatbazar/storefront/internal/storefront/platform/httpx"
	"github.com/haatbazar/storefront/internal/storefront/platform/sessioncookie"
)

// authService defines the service operations used by auth handlers.
type authService interface {
	login(ctx context.Context, email, password string) (sessionGrant, error)
	signup(ctx context.Context, input SignupInput) (sessionGrant, error)
	current(ctx context.Context, sessionID string) (UserView, bool, error)
	logout(ctx context.Context, sessionID string) error
}

type handlers struct {
	service authService
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	var input SignupInput
	if err := httpx.ReadJSON(r, &input); err != nil {
		httpx.WriteError(w, err)
		return
	}
	grant, err := h.service.signup(httpx.RequestContext(r), input)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	sessioncookie.Write(w, r, sessioncookie.SessionName, grant.sessionID)
	_ = httpx.WriteJSON(w, http.StatusCreated, map[string]any{"user": grant.user})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := httpx.ReadJSON(r, &input); err != nil {
		httpx.WriteError(w, err)
		return
	}
	grant, err := h.service.login(httpx.RequestContext(r), input.Email, input.Password)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	sessioncookie.Write(w, r, sessioncookie.SessionName, grant.sessionID)
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"user": grant.user})
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessioncookie.Read(r, sessioncookie.SessionName)
	if err := h.service.logout(httpx.RequestContext(r), sessionID); err != nil {
		httpx.WriteError(w, err)
		return
	}
	sessioncookie.Clear(w, r, sessioncookie.SessionName)
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) handleSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessioncookie.Read(r, sessioncookie.SessionName)
	if !ok {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnauthorized, "not signed in"))
		return
	}
	user, found, err := h.service.current(httpx.RequestContext(r), sessionID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if !found {
		sessioncookie.Clear(w, r, sessioncookie.SessionName)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnauthorized, "not signed in"))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}
