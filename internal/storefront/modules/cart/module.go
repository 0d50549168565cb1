package cart

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/module"
	"github.com/haatbazar/storefront/internal/storefront/routepath"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// Module serves the browser-scoped cart routes.
type Module struct {
	gateway ProductGateway
	store   storage.CartStore
	deps    module.Dependencies
}

// New returns a cart module wired to the backend and cart store from deps.
func New(deps module.Dependencies) Module {
	return NewWithGateway(NewHTTPGateway(deps), deps)
}

// NewWithGateway returns a cart module with an explicit product gateway.
func NewWithGateway(gateway ProductGateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, store: deps.CartStore, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "cart" }

// Healthy reports whether the cart module can read products and persist
// snapshots.
func (m Module) Healthy() bool {
	if m.gateway == nil || m.store == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires cart route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.store, m.gateway), m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Cart, Handler: mux}, nil
}
