// Package redis implements the cart snapshot store on Redis for
// deployments where cart state must be shared across storefront replicas.
// Sessions stay in the primary store; only the hot cart document moves.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	storefrontstorage "github.com/haatbazar/storefront/internal/storefront/storage"
)

const keyPrefix = "haatbazar:cart:"

// Store is a Redis-backed cart snapshot store.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

var _ storefrontstorage.CartStore = (*Store)(nil)

// Open connects to Redis at addr ("host:port" or a redis:// URL) and
// verifies the connection. Snapshots expire after ttl; a zero ttl keeps
// them forever.
func Open(ctx context.Context, addr string, ttl time.Duration) (*Store, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Store{client: client, ttl: ttl}, nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// GetCartSnapshot loads the whole cart document for a cart key.
func (s *Store) GetCartSnapshot(ctx context.Context, cartKey string) ([]byte, bool, error) {
	if s == nil || s.client == nil {
		return nil, false, fmt.Errorf("storage is not configured")
	}
	cartKey = strings.TrimSpace(cartKey)
	if cartKey == "" {
		return nil, false, fmt.Errorf("cart key is required")
	}

	payload, err := s.client.Get(ctx, keyPrefix+cartKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cart snapshot: %w", err)
	}
	return payload, true, nil
}

// PutCartSnapshot overwrites the whole cart document for a cart key.
func (s *Store) PutCartSnapshot(ctx context.Context, cartKey string, payload []byte) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	cartKey = strings.TrimSpace(cartKey)
	if cartKey == "" {
		return fmt.Errorf("cart key is required")
	}
	if len(payload) == 0 {
		return fmt.Errorf("cart payload is required")
	}

	if err := s.client.Set(ctx, keyPrefix+cartKey, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("put cart snapshot: %w", err)
	}
	return nil
}

// DeleteCartSnapshot removes the cart document for a cart key.
func (s *Store) DeleteCartSnapshot(ctx context.Context, cartKey string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	cartKey = strings.TrimSpace(cartKey)
	if cartKey == "" {
		return fmt.Errorf("cart key is required")
	}
	if err := s.client.Del(ctx, keyPrefix+cartKey).Err(); err != nil {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (s *Store) Ping(ctx context.Context) bool {
	if s == nil || s.client == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Ping(pingCtx).Err() == nil
}
