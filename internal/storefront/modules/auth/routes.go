package auth

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthSignup, h.handleSignup)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthLogin, h.handleLogin)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthLogout, h.handleLogout)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthSession, h.handleSession)
}
