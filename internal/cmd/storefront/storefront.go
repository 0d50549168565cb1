// Package storefront wires configuration and dependencies for the
// storefront command.
package storefront

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/haatbazar/storefront/internal/platform/config"
	"github.com/haatbazar/storefront/internal/platform/otel"
	"github.com/haatbazar/storefront/internal/storefront"
	"github.com/haatbazar/storefront/internal/storefront/backend"
	"github.com/haatbazar/storefront/internal/storefront/payment"
	"github.com/haatbazar/storefront/internal/storefront/storage"
	redisstore "github.com/haatbazar/storefront/internal/storefront/storage/redis"
	"github.com/haatbazar/storefront/internal/storefront/storage/sqlite"
)

// Config holds the storefront command configuration. Environment
// variables provide deployment defaults; flags override them.
type Config struct {
	HTTPAddr     string        `env:"HAATBAZAR_STOREFRONT_HTTP_ADDR" envDefault:"localhost:8090"`
	BackendURL   string        `env:"HAATBAZAR_STOREFRONT_BACKEND_URL" envDefault:"http://localhost:8080"`
	DBPath       string        `env:"HAATBAZAR_STOREFRONT_DB_PATH" envDefault:"storefront.db"`
	RedisAddr    string        `env:"HAATBAZAR_STOREFRONT_REDIS_ADDR"`
	RedisCartTTL time.Duration `env:"HAATBAZAR_STOREFRONT_REDIS_CART_TTL" envDefault:"168h"`
}

// ParseConfig parses environment variables and flags into a Config. A
// nil environ reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, environ); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "Marketplace backend base URL")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for shared cart storage (optional)")
	fs.DurationVar(&cfg.RedisCartTTL, "redis-cart-ttl", cfg.RedisCartTTL, "Idle expiry for Redis cart snapshots")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the storefront HTTP server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "storefront")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Printf("flush traces: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	var cartStore storage.CartStore = store
	if cfg.RedisAddr != "" {
		redisStore, err := redisstore.Open(ctx, cfg.RedisAddr, cfg.RedisCartTTL)
		if err != nil {
			return fmt.Errorf("open redis cart storage: %w", err)
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Printf("close redis cart storage: %v", err)
			}
		}()
		cartStore = redisStore
	}

	client, err := backend.NewClient(cfg.BackendURL)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	server, err := storefront.NewServer(storefront.Config{
		HTTPAddr:     cfg.HTTPAddr,
		Backend:      client,
		CartStore:    cartStore,
		SessionStore: store,
		Processor:    payment.NewCardMock(),
	})
	if err != nil {
		return fmt.Errorf("init storefront server: %w", err)
	}
	defer server.Close()

	log.Printf("listening addr=%s backend=%s", cfg.HTTPAddr, cfg.BackendURL)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve storefront: %w", err)
	}
	return nil
}
