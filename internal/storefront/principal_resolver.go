package storefront

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/haatbazar/storefront/internal/platform/requestctx"
	"github.com/haatbazar/storefront/internal/storefront/module"
	apperrors "github.com/haatbazar/storefront/internal/storefront/platform/errors"
	"github.com/haatbazar/storefront/internal/storefront/platform/httpx"
	"github.com/haatbazar/storefront/internal/storefront/platform/sessioncookie"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// withSessionPrincipal resolves the session cookie into the request
// context once per request, so modules never touch the session store
// directly. Missing, unknown, or expired sessions leave the request
// anonymous.
func withSessionPrincipal(store storage.SessionStore) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || r == nil {
				next.ServeHTTP(w, r)
				return
			}
			sessionID, ok := sessioncookie.Read(r, sessioncookie.SessionName)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			session, found, err := store.GetSession(r.Context(), sessionID)
			if err != nil || !found {
				next.ServeHTTP(w, r)
				return
			}
			if !session.ExpiresAt.IsZero() && !session.ExpiresAt.After(time.Now().UTC()) {
				next.ServeHTTP(w, r)
				return
			}
			ctx := requestctx.WithUserID(r.Context(), session.UserID)
			ctx = requestctx.WithAuthToken(ctx, session.Token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveRequestUserID(r *http.Request) string {
	if r == nil {
		return ""
	}
	return requestctx.UserIDFromContext(r.Context())
}

func resolveRequestAuthToken(r *http.Request) string {
	if r == nil {
		return ""
	}
	return requestctx.AuthTokenFromContext(r.Context())
}

func resolveCartKey(r *http.Request) (string, bool) {
	return sessioncookie.Read(r, sessioncookie.CartName)
}

// ensureCartKey mints the cart cookie on first write. The minted key is
// also attached to the in-flight request so later reads within the same
// request observe it.
func ensureCartKey(w http.ResponseWriter, r *http.Request) string {
	if key, ok := sessioncookie.Read(r, sessioncookie.CartName); ok {
		return key
	}
	key := uuid.NewString()
	sessioncookie.Write(w, r, sessioncookie.CartName, key)
	if r != nil {
		r.AddCookie(&http.Cookie{Name: sessioncookie.CartName, Value: key})
	}
	return key
}

// requireSignIn rejects anonymous requests to protected module groups.
func requireSignIn(deps module.Dependencies) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if deps.UserID(r) == "" {
				httpx.WriteError(w, apperrors.E(apperrors.KindUnauthorized, "sign in required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
