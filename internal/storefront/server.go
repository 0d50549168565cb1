// Package storefront hosts the buyer-facing HTTP surface and lifecycle.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/haatbazar/storefront/internal/platform/timeouts"
	"github.com/haatbazar/storefront/internal/storefront/backend"
	"github.com/haatbazar/storefront/internal/storefront/module"
	"github.com/haatbazar/storefront/internal/storefront/modules"
	"github.com/haatbazar/storefront/internal/storefront/payment"
	"github.com/haatbazar/storefront/internal/storefront/platform/httpx"
	"github.com/haatbazar/storefront/internal/storefront/storage"
)

// Config defines startup inputs for the storefront service.
type Config struct {
	HTTPAddr     string
	Backend      *backend.Client
	CartStore    storage.CartStore
	SessionStore storage.SessionStore
	Processor    payment.Processor
}

// Server hosts the storefront HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry
// groups.
func NewHandler(cfg Config) (http.Handler, error) {
	deps := module.Dependencies{
		Backend:          cfg.Backend,
		CartStore:        cfg.CartStore,
		SessionStore:     cfg.SessionStore,
		Processor:        cfg.Processor,
		ResolveUserID:    resolveRequestUserID,
		ResolveAuthToken: resolveRequestAuthToken,
		ResolveCartKey:   resolveCartKey,
		EnsureCartKey:    ensureCartKey,
	}

	publicModules := modules.Public(deps)
	protectedModules := modules.Protected(deps)

	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range publicModules {
		if err := mountModule(root, feature, seen, nil); err != nil {
			return nil, err
		}
	}
	guard := requireSignIn(deps)
	for _, feature := range protectedModules {
		if err := mountModule(root, feature, seen, guard); err != nil {
			return nil, err
		}
	}

	all := append(append([]module.Module{}, publicModules...), protectedModules...)
	root.HandleFunc(http.MethodGet+" /healthz", healthHandler(all))

	return httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		withSessionPrincipal(cfg.SessionStore),
		httpx.RequestLog(),
	), nil
}

func mountModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap httpx.Middleware) error {
	if feature == nil {
		return fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := strings.TrimRight(strings.TrimSpace(mount.Prefix), "/")
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("mount module %q: prefix %q is invalid", feature.ID(), mount.Prefix)
	}
	if mount.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	// Both the bare prefix and its subtree route into the module mux,
	// which matches against full request paths.
	root.Handle(prefix, handler)
	root.Handle(prefix+"/", handler)
	return nil
}

type moduleHealthView struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

func healthHandler(features []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		view := moduleHealthView{Status: "ok", Modules: make(map[string]bool, len(features))}
		for _, feature := range features {
			healthy := true
			if reporter, ok := feature.(module.HealthReporter); ok {
				healthy = reporter.Healthy()
			}
			view.Modules[feature.ID()] = healthy
			if !healthy {
				view.Status = "degraded"
			}
		}
		_ = httpx.WriteJSON(w, http.StatusOK, view)
	}
}

// NewServer validates config and constructs a storefront server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose storefront handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server
// stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("storefront server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown storefront http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve storefront http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
