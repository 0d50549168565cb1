package catalog

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/module"
	"github.com/haatbazar/storefront/internal/storefront/routepath"
)

// Module serves the public product browsing routes.
type Module struct {
	gateway CatalogGateway
}

// New returns a catalog module wired to the backend from deps.
func New(deps module.Dependencies) Module {
	return NewWithGateway(NewHTTPGateway(deps))
}

// NewWithGateway returns a catalog module with an explicit gateway.
func NewWithGateway(gateway CatalogGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "catalog" }

// Healthy reports whether the catalog module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires catalog route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Products, Handler: mux}, nil
}
