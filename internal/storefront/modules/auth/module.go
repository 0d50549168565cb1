package auth

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/module"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// authPrefix anchors all auth routes.
const authPrefix = "/auth"

// Module serves the sign-up, sign-in, and session routes.
type Module struct {
	gateway AuthGateway
	store   storage.SessionStore
	deps    module.Dependencies
}

// New returns an auth module wired to the backend and session store from
// deps.
func New(deps module.Dependencies) Module {
	return NewWithGateway(NewHTTPGateway(deps), deps)
}

// NewWithGateway returns an auth module with an explicit gateway.
func NewWithGateway(gateway AuthGateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, store: deps.SessionStore, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Healthy reports whether sign-in can reach the backend and persist
// sessions.
func (m Module) Healthy() bool {
	if m.gateway == nil || m.store == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires auth route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.store, m.gateway))
	registerRoutes(mux, h)
	return module.Mount{Prefix: authPrefix, Handler: mux}, nil
}
