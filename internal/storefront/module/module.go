// Package module defines the feature contract used by storefront
// composition.
package module

import (
	"net/http"

	"github.com/haatbazar/storefront/internal/storefront/backend"
	"github.com/haatbazar/storefront/internal/storefront/payment"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// ResolveUserID resolves the signed-in buyer id for a request.
type ResolveUserID func(*http.Request) string

// ResolveAuthToken resolves the buyer's backend access token for a request.
type ResolveAuthToken func(*http.Request) string

// ResolveCartKey returns the request's cart key when the cart cookie exists.
type ResolveCartKey func(*http.Request) (string, bool)

// EnsureCartKey returns the request's cart key, minting the cart cookie
// first when absent. Reads never mint; only mutations do.
type EnsureCartKey func(http.ResponseWriter, *http.Request) string

// Dependencies carries the shared collaborators injected into modules at
// composition time.
type Dependencies struct {
	Backend          *backend.Client
	CartStore        storage.CartStore
	SessionStore     storage.SessionStore
	Processor        payment.Processor
	ResolveUserID    ResolveUserID
	ResolveAuthToken ResolveAuthToken
	ResolveCartKey   ResolveCartKey
	EnsureCartKey    EnsureCartKey
}

// UserID resolves the signed-in buyer id, tolerating a nil resolver.
func (d Dependencies) UserID(r *http.Request) string {
	if d.ResolveUserID == nil {
		return ""
	}
	return d.ResolveUserID(r)
}

// AuthToken resolves the backend access token, tolerating a nil resolver.
func (d Dependencies) AuthToken(r *http.Request) string {
	if d.ResolveAuthToken == nil {
		return ""
	}
	return d.ResolveAuthToken(r)
}

// CartKey resolves the request cart key, tolerating a nil resolver.
func (d Dependencies) CartKey(r *http.Request) (string, bool) {
	if d.ResolveCartKey == nil {
		return "", false
	}
	return d.ResolveCartKey(r)
}

// MintCartKey resolves or mints the request cart key, tolerating a nil
// resolver.
func (d Dependencies) MintCartKey(w http.ResponseWriter, r *http.Request) string {
	if d.EnsureCartKey == nil {
		return ""
	}
	return d.EnsureCartKey(w, r)
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by storefront composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report
// their operational availability. Modules with gateway dependencies
// implement this so composition can derive service health without
// centralizing client knowledge.
type HealthReporter interface {
	Healthy() bool
}
