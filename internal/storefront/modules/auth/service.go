// Package auth signs buyers in against the backend and owns the server
// session: a uuid-keyed row holding the backend token and a snapshot of
// the user profile, surfaced to the browser as the session cookie.
package auth

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// sessionTTL bounds a session when the backend token carries no usable
// expiry claim.
const sessionTTL = 24 * time.Hour

// UserView is the signed-in buyer as returned to the browser.
type UserView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// AuthGrant is a successful backend authentication: the access token plus
// the authenticated user.
type AuthGrant struct {
	Token string
	User  UserView
}

// SignupInput carries a new account registration.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// AuthGateway authenticates buyers against the backend.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (AuthGrant, error)
	Register(ctx context.Context, input SignupInput) (AuthGrant, error)
}

// sessionGrant is the result of persisting a fresh session.
type sessionGrant struct {
	sessionID string
	user      UserView
	expiresAt time.Time
}

type service struct {
	store   storage.SessionStore
	gateway AuthGateway
	now     func() time.Time
}

func newService(store storage.SessionStore, gateway AuthGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{store: store, gateway: gateway, now: time.Now}
}

func (s service) login(ctx context.Context, email, password string) (sessionGrant, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return sessionGrant{}, apperrors.E(apperrors.KindInvalidInput, "email is required")
	}
	if password == "" {
		return sessionGrant{}, apperrors.E(apperrors.KindInvalidInput, "password is required")
	}
	grant, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return sessionGrant{}, err
	}
	return s.createSession(ctx, grant)
}

func (s service) signup(ctx context.Context, input SignupInput) (sessionGrant, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" {
		return sessionGrant{}, apperrors.E(apperrors.KindInvalidInput, "name is required")
	}
	if input.Email == "" {
		return sessionGrant{}, apperrors.E(apperrors.KindInvalidInput, "email is required")
	}
	if input.Password == "" {
		return sessionGrant{}, apperrors.E(apperrors.KindInvalidInput, "password is required")
	}
	grant, err := s.gateway.Register(ctx, input)
	if err != nil {
		return sessionGrant{}, err
	}
	return s.createSession(ctx, grant)
}

func (s service) createSession(ctx context.Context, grant AuthGrant) (sessionGrant, error) {
	if s.store == nil {
		return sessionGrant{}, apperrors.E(apperrors.KindUnavailable, "session store is not configured")
	}
	if strings.TrimSpace(grant.User.ID) == "" {
		return sessionGrant{}, apperrors.E(apperrors.KindUnknown, "authentication grant carries no user")
	}

	userJSON, err := json.Marshal(grant.User)
	if err != nil {
		return sessionGrant{}, apperrors.E(apperrors.KindUnknown, "serialize user snapshot")
	}

	now := s.now().UTC()
	expiresAt, ok := tokenExpiry(grant.Token)
	if !ok || !expiresAt.After(now) {
		expiresAt = now.Add(sessionTTL)
	}

	session := storage.Session{
		ID:        uuid.NewString(),
		UserID:    grant.User.ID,
		UserJSON:  userJSON,
		Token:     grant.Token,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := s.store.PutSession(ctx, session); err != nil {
		return sessionGrant{}, err
	}
	return sessionGrant{sessionID: session.ID, user: grant.User, expiresAt: expiresAt}, nil
}

// current resolves the signed-in user for a session id. Expired sessions
// are reaped on sight.
func (s service) current(ctx context.Context, sessionID string) (UserView, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || s.store == nil {
		return UserView{}, false, nil
	}
	session, found, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return UserView{}, false, err
	}
	if !found {
		return UserView{}, false, nil
	}
	if !session.ExpiresAt.IsZero() && !session.ExpiresAt.After(s.now().UTC()) {
		_ = s.store.DeleteSession(ctx, sessionID)
		return UserView{}, false, nil
	}

	var user UserView
	if err := json.Unmarshal(session.UserJSON, &user); err != nil || strings.TrimSpace(user.ID) == "" {
		_ = s.store.DeleteSession(ctx, sessionID)
		return UserView{}, false, nil
	}
	return user, true, nil
}

func (s service) logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || s.store == nil {
		return nil
	}
	return s.store.DeleteSession(ctx, sessionID)
}
