package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/haatbazar/storefront/internal/storefront/module"
	"github.com/haatbazar/storefront/internal/storefront/platform/sessioncookie"
	"github.com/haatbazar/storefront/internal/storefront/routepath"
	"github.com/haatbazar/storefront/internal/storefront/storage/memory"
)

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(memory.New(), &fakeGateway{})))
	return mux
}

func sessionCookieFrom(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessioncookie.SessionName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(memory.New(), &fakeGateway{})))
}

func TestLoginSetsSessionCookie(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	req := httptest.NewRequest(http.MethodPost, routepath.AuthLogin, strings.NewReader(`{"email":"buyer@example.com","password":"secret"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}
	cookie := sessionCookieFrom(t, rr)
	if cookie.Value == "" || !cookie.HttpOnly {
		t.Fatalf("cookie = %+v", cookie)
	}
	if !strings.Contains(rr.Body.String(), `"id":"b1"`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestSignupCreatesAccountAndSession(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	body := `{"name":"Test Buyer","email":"buyer@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, routepath.AuthSignup, strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rr.Code, rr.Body.String())
	}
	sessionCookieFrom(t, rr)
}

func TestSessionLifecycleOverRoutes(t *testing.T) {
	t.Parallel()

	mux := newTestMux()

	login := httptest.NewRequest(http.MethodPost, routepath.AuthLogin, strings.NewReader(`{"email":"buyer@example.com","password":"secret"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, login)
	cookie := sessionCookieFrom(t, rr)

	session := httptest.NewRequest(http.MethodGet, routepath.AuthSession, nil)
	session.AddCookie(cookie)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, session)
	if rr.Code != http.StatusOK {
		t.Fatalf("session status = %d body = %s", rr.Code, rr.Body.String())
	}

	logout := httptest.NewRequest(http.MethodPost, routepath.AuthLogout, nil)
	logout.AddCookie(cookie)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, logout)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d", rr.Code)
	}

	again := httptest.NewRequest(http.MethodGet, routepath.AuthSession, nil)
	again.AddCookie(cookie)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, again)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("post-logout session status = %d", rr.Code)
	}
}

func TestSessionWithoutCookieIsUnauthorized(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	req := httptest.NewRequest(http.MethodGet, routepath.AuthSession, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestAuthMethodContracts(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, routepath.AuthLogin},
		{http.MethodGet, routepath.AuthSignup},
		{http.MethodPost, routepath.AuthSession},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s status = %d, want 405", tc.method, tc.path, rr.Code)
		}
	}
}

func TestModuleIDAndHealth(t *testing.T) {
	t.Parallel()

	if got := New(module.Dependencies{}).ID(); got != "auth" {
		t.Fatalf("id = %q", got)
	}
	if New(module.Dependencies{}).Healthy() {
		t.Fatal("module without collaborators should be degraded")
	}
	deps := module.Dependencies{SessionStore: memory.New()}
	if !NewWithGateway(&fakeGateway{}, deps).Healthy() {
		t.Fatal("module with gateway and store should be healthy")
	}
}

func TestMountPrefix(t *testing.T) {
	t.Parallel()

	mount, err := NewWithGateway(&fakeGateway{}, module.Dependencies{SessionStore: memory.New()}).Mount()
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if mount.Prefix != authPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
}
