package checkout

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/module"
	"github.com/haatbazar/storefront/internal/storefront/payment"
	"github.com/haatbazar/storefront/internal/storefront/routepath"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// Module serves the authenticated checkout routes.
type Module struct {
	gateway   OrderGateway
	store     storage.CartStore
	processor payment.Processor
	deps      module.Dependencies
}

// New returns a checkout module wired to the backend, cart store, and
// payment processor from deps.
func New(deps module.Dependencies) Module {
	return NewWithGateway(NewHTTPGateway(deps), deps)
}

// NewWithGateway returns a checkout module with an explicit order gateway.
func NewWithGateway(gateway OrderGateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, store: deps.CartStore, processor: deps.Processor, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "checkout" }

// Healthy reports whether checkout can place orders and charge cards.
func (m Module) Healthy() bool {
	if m.gateway == nil || m.store == nil || m.processor == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires checkout route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.store, m.gateway, m.processor), m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Checkout, Handler: mux}, nil
}
