package redis

import (
	"context"
	"testing"
	"time"
)

func TestOpenRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), "  ", 0); err == nil {
		t.Fatal("expected error for blank address")
	}
}

func TestOpenFailsFastWhenRedisUnreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Port 1 is reserved and nothing listens there.
	if _, err := Open(ctx, "127.0.0.1:1", 0); err == nil {
		t.Fatal("expected connection error")
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
	if store.Ping(context.Background()) {
		t.Fatal("nil store should not report healthy")
	}
	if _, _, err := store.GetCartSnapshot(context.Background(), "cart-1"); err == nil {
		t.Fatal("expected error for nil store read")
	}
}
