// Package sessioncookie centralizes storefront cookie behavior.
//
// Two cookies exist: the session cookie identifies a signed-in buyer, and
// the cart cookie identifies the browser-scoped cart. The cart cookie is
// deliberately independent of the session so that signing out (or switching
// accounts) keeps the same cart, matching how the cart follows the browser
// rather than the account.
package sessioncookie

import (
	"net/http"
	"strings"
)

// SessionName is the canonical storefront session cookie name.
const SessionName = "haatbazar_session"

// CartName is the canonical storefront cart cookie name.
const CartName = "haatbazar_cart"

// Read returns the trimmed cookie value when present.
func Read(r *http.Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the named cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, name, value string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the named cookie for the current request context.
func Clear(w http.ResponseWriter, r *http.Request, name string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
