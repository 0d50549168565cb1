package storage

import (
	"context"
	"time"
)

// Session is one signed-in buyer session. UserJSON holds the backend's
// user object exactly as returned at login so profile pages can render
// without a fresh backend read.
type Session struct {
	ID        string
	UserID    string
	UserJSON  []byte
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// CartStore persists whole-document cart snapshots keyed by cart key.
//
// The snapshot is always read and written as a single JSON document; there
// is no per-item diffing and the last writer wins.
type CartStore interface {
	GetCartSnapshot(ctx context.Context, cartKey string) ([]byte, bool, error)
	PutCartSnapshot(ctx context.Context, cartKey string, payload []byte) error
	DeleteCartSnapshot(ctx context.Context, cartKey string) error
}

// SessionStore persists buyer sessions.
type SessionStore interface {
	PutSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, sessionID string) (Session, bool, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// Store is the full persistence contract for the storefront process.
type Store interface {
	CartStore
	SessionStore
	Close() error
}
