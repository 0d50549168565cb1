package account

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/module"
)

// accountPrefix anchors all account routes.
const accountPrefix = "/account"

// Module serves the authenticated buyer account routes.
type Module struct {
	gateway AccountGateway
	deps    module.Dependencies
}

// New returns an account module wired to the backend from deps.
func New(deps module.Dependencies) Module {
	return NewWithGateway(NewHTTPGateway(deps), deps)
}

// NewWithGateway returns an account module with an explicit gateway.
func NewWithGateway(gateway AccountGateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "account" }

// Healthy reports whether the account module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires account route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: accountPrefix, Handler: mux}, nil
}
