package memory

import (
	"context"
	"sync"
	"testing"

	storefrontstorage "github.com/haatbazar/storefront/internal/storefront/storage"
)

func TestCartSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	if _, found, err := store.GetCartSnapshot(ctx, "cart-1"); err != nil || found {
		t.Fatalf("missing snapshot: found=%t err=%v", found, err)
	}

	if err := store.PutCartSnapshot(ctx, "cart-1", []byte(`[{"product_id":"p1"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	payload, found, err := store.GetCartSnapshot(ctx, "cart-1")
	if err != nil || !found {
		t.Fatalf("get: found=%t err=%v", found, err)
	}
	if string(payload) != `[{"product_id":"p1"}]` {
		t.Fatalf("payload = %s", payload)
	}

	if err := store.DeleteCartSnapshot(ctx, "cart-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := store.GetCartSnapshot(ctx, "cart-1"); found {
		t.Fatal("expected snapshot gone")
	}
}

func TestGetCartSnapshotReturnsCopy(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()
	if err := store.PutCartSnapshot(ctx, "cart-1", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	payload, _, err := store.GetCartSnapshot(ctx, "cart-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	payload[0] = 'X'

	again, _, err := store.GetCartSnapshot(ctx, "cart-1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if string(again) != "[]" {
		t.Fatalf("stored payload mutated: %s", again)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	session := storefrontstorage.Session{ID: "sess-1", UserID: "buyer-1", Token: "token-1"}
	if err := store.PutSession(ctx, session); err != nil {
		t.Fatalf("put session: %v", err)
	}

	loaded, found, err := store.GetSession(ctx, "sess-1")
	if err != nil || !found {
		t.Fatalf("get session: found=%t err=%v", found, err)
	}
	if loaded.UserID != "buyer-1" || loaded.Token != "token-1" {
		t.Fatalf("session = %+v", loaded)
	}
	if loaded.CreatedAt.IsZero() {
		t.Fatal("expected created at to default")
	}

	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, found, _ := store.GetSession(ctx, "sess-1"); found {
		t.Fatal("expected session gone")
	}
}

func TestValidation(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	if err := store.PutCartSnapshot(ctx, " ", []byte(`[]`)); err == nil {
		t.Fatal("expected error for blank cart key")
	}
	if err := store.PutCartSnapshot(ctx, "cart-1", nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if err := store.PutSession(ctx, storefrontstorage.Session{ID: "sess-1"}); err == nil {
		t.Fatal("expected error for blank user id")
	}
}

func TestConcurrentAccessIsSafe(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.PutCartSnapshot(ctx, "cart-1", []byte(`[]`))
			_, _, _ = store.GetCartSnapshot(ctx, "cart-1")
		}()
	}
	wg.Wait()

	if _, found, err := store.GetCartSnapshot(ctx, "cart-1"); err != nil || !found {
		t.Fatalf("expected snapshot after concurrent writes: found=%t err=%v", found, err)
	}
}
