// Package memory implements the storefront storage interfaces in process
// memory. It backs tests and local development where durability across
// restarts is not needed.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	storefrontstorage "github.com/haatbazar/storefront/internal/storefront/storage"
)

// Store is a mutex-guarded in-memory store.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
	sessions  map[string]storefrontstorage.Session
}

var _ storefrontstorage.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		snapshots: make(map[string][]byte),
		sessions:  make(map[string]storefrontstorage.Session),
	}
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }

// GetCartSnapshot loads the whole cart document for a cart key.
func (s *Store) GetCartSnapshot(_ context.Context, cartKey string) ([]byte, bool, error) {
	cartKey = strings.TrimSpace(cartKey)
	if cartKey == "" {
		return nil, false, fmt.Errorf("cart key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, found := s.snapshots[cartKey]
	if !found {
		return nil, false, nil
	}
	copied := make([]byte, len(payload))
	copy(copied, payload)
	return copied, true, nil
}

// PutCartSnapshot overwrites the whole cart document for a cart key.
func (s *Store) PutCartSnapshot(_ context.Context, cartKey string, payload []byte) error {
	cartKey = strings.TrimSpace(cartKey)
	if cartKey == "" {
		return fmt.Errorf("cart key is required")
	}
	if len(payload) == 0 {
		return fmt.Errorf("cart payload is required")
	}

	copied := make([]byte, len(payload))
	copy(copied, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[cartKey] = copied
	return nil
}

// DeleteCartSnapshot removes the cart document for a cart key.
func (s *Store) DeleteCartSnapshot(_ context.Context, cartKey string) error {
	cartKey = strings.TrimSpace(cartKey)
	if cartKey == "" {
		return fmt.Errorf("cart key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, cartKey)
	return nil
}

// PutSession upserts a buyer session.
func (s *Store) PutSession(_ context.Context, session storefrontstorage.Session) error {
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	session.UserID = strings.TrimSpace(session.UserID)
	if session.UserID == "" {
		return fmt.Errorf("session user id is required")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

// GetSession loads a buyer session by id.
func (s *Store) GetSession(_ context.Context, sessionID string) (storefrontstorage.Session, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return storefrontstorage.Session{}, false, fmt.Errorf("session id is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, found := s.sessions[sessionID]
	return session, found, nil
}

// DeleteSession removes a buyer session by id.
func (s *Store) DeleteSession(_ context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
