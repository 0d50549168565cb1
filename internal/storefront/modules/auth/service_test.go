package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
	"github.com/haatbazar/storefront/internal/storefront/storage/memory"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "b1",
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestLoginCreatesPersistedSession(t *testing.T) {
	t.Parallel()

	store := memory.New()
	svc := newService(store, &fakeGateway{})

	grant, err := svc.login(context.Background(), "buyer@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if grant.sessionID == "" || grant.user.ID != "b1" {
		t.Fatalf("grant = %+v", grant)
	}

	session, found, err := store.GetSession(context.Background(), grant.sessionID)
	if err != nil || !found {
		t.Fatalf("session lookup: found=%t err=%v", found, err)
	}
	if session.UserID != "b1" || session.Token != "token-1" {
		t.Fatalf("session = %+v", session)
	}
}

func TestLoginValidation(t *testing.T) {
	t.Parallel()

	svc := newService(memory.New(), &fakeGateway{})
	ctx := context.Background()

	if _, err := svc.login(ctx, "  ", "secret"); !apperrors.IsKind(err, apperrors.KindInvalidInput) {
		t.Fatalf("blank email: err = %v", err)
	}
	if _, err := svc.login(ctx, "buyer@example.com", ""); !apperrors.IsKind(err, apperrors.KindInvalidInput) {
		t.Fatalf("blank password: err = %v", err)
	}
}

func TestLoginPropagatesBackendRejection(t *testing.T) {
	t.Parallel()

	svc := newService(memory.New(), &fakeGateway{loginErr: errors.New("invalid credentials")})
	if _, err := svc.login(context.Background(), "buyer@example.com", "wrong"); err == nil {
		t.Fatal("expected login failure")
	}
}

func TestSessionExpiryComesFromTokenClaim(t *testing.T) {
	t.Parallel()

	tokenExp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	gateway := &fakeGateway{grant: AuthGrant{
		Token: signedToken(t, tokenExp),
		User:  UserView{ID: "b1", Name: "Test Buyer"},
	}}
	svc := newService(memory.New(), gateway)

	grant, err := svc.login(context.Background(), "buyer@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !grant.expiresAt.Equal(tokenExp) {
		t.Fatalf("expires at = %s, want %s", grant.expiresAt, tokenExp)
	}
}

func TestSessionExpiryFallsBackToFixedTTL(t *testing.T) {
	t.Parallel()

	svc := newService(memory.New(), &fakeGateway{})
	before := time.Now().UTC()

	grant, err := svc.login(context.Background(), "buyer@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	min := before.Add(sessionTTL - time.Minute)
	max := time.Now().UTC().Add(sessionTTL + time.Minute)
	if grant.expiresAt.Before(min) || grant.expiresAt.After(max) {
		t.Fatalf("expires at = %s, want about %s from now", grant.expiresAt, sessionTTL)
	}
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()

	svc := newService(memory.New(), &fakeGateway{})
	ctx := context.Background()

	tests := []struct {
		name  string
		input SignupInput
	}{
		{"missing name", SignupInput{Email: "b@example.com", Password: "secret"}},
		{"missing email", SignupInput{Name: "Buyer", Password: "secret"}},
		{"missing password", SignupInput{Name: "Buyer", Email: "b@example.com"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := svc.signup(ctx, tc.input); !apperrors.IsKind(err, apperrors.KindInvalidInput) {
				t.Fatalf("err = %v, want invalid input", err)
			}
		})
	}
}

func TestCurrentResolvesSignedInUser(t *testing.T) {
	t.Parallel()

	store := memory.New()
	svc := newService(store, &fakeGateway{})
	ctx := context.Background()

	grant, err := svc.login(ctx, "buyer@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	user, found, err := svc.current(ctx, grant.sessionID)
	if err != nil || !found {
		t.Fatalf("current: found=%t err=%v", found, err)
	}
	if user.ID != "b1" || user.Email != "buyer@example.com" {
		t.Fatalf("user = %+v", user)
	}
}

func TestCurrentReapsExpiredSession(t *testing.T) {
	t.Parallel()

	store := memory.New()
	gateway := &fakeGateway{grant: AuthGrant{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		User:  UserView{ID: "b1"},
	}}
	svc := newService(store, gateway)
	ctx := context.Background()

	grant, err := svc.login(ctx, "buyer@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	expired := svc
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, found, err := expired.current(ctx, grant.sessionID); err != nil || found {
		t.Fatalf("expired session: found=%t err=%v", found, err)
	}
	if _, found, _ := store.GetSession(ctx, grant.sessionID); found {
		t.Fatal("expired session should be deleted")
	}
}

func TestCurrentUnknownSession(t *testing.T) {
	t.Parallel()

	svc := newService(memory.New(), &fakeGateway{})
	if _, found, err := svc.current(context.Background(), "missing"); err != nil || found {
		t.Fatalf("unknown session: found=%t err=%v", found, err)
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	t.Parallel()

	store := memory.New()
	svc := newService(store, &fakeGateway{})
	ctx := context.Background()

	grant, err := svc.login(ctx, "buyer@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.logout(ctx, grant.sessionID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, found, _ := store.GetSession(ctx, grant.sessionID); found {
		t.Fatal("session should be gone after logout")
	}
	if err := svc.logout(ctx, ""); err != nil {
		t.Fatalf("blank logout must be a no-op: %v", err)
	}
}

func TestNilSessionStoreIsUnavailable(t *testing.T) {
	t.Parallel()

	svc := newService(nil, &fakeGateway{})
	_, err := svc.login(context.Background(), "buyer@example.com", "secret")
	if !apperrors.IsKind(err, apperrors.KindUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, ok := tokenExpiry(signedToken(t, exp))
	if !ok || !got.Equal(exp) {
		t.Fatalf("expiry = %s ok=%t, want %s", got, ok, exp)
	}
	if _, ok := tokenExpiry("not-a-jwt"); ok {
		t.Fatal("garbage token must not yield an expiry")
	}
	if _, ok := tokenExpiry(""); ok {
		t.Fatal("empty token must not yield an expiry")
	}
}
