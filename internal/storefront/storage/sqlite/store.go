package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/haatbazar/storefront/internal/platform/storage/sqlitemigrate"
	storefrontstorage "github.com/haatbazar/storefront/internal/storefront/storage"
	"github.com/haatbazar/storefront/internal/storefront/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for cart snapshots and sessions.
type Store struct {
	sqlDB *sql.DB
}

var _ storefrontstorage.Store = (*Store)(nil)

// Open opens and migrates a storefront SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetCartSnapshot loads the whole cart document for a cart key.
func (s *Store) GetCartSnapshot(ctx context.Context, cartKey string) ([]byte, bool, error) {
	if s == nil || s.sqlDB == nil {
		return nil, false, fmt.Errorf("storage is not configured")
	}
	cartKey = strings.TrimSpace(cartKey)
	if cartKey == "" {
		return nil, false, fmt.Errorf("cart key is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT payload_json FROM cart_snapshots WHERE cart_key = ?`,
		cartKey,
	)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cart snapshot: %w", err)
	}
	return payload, true, nil
}

// PutCartSnapshot overwrites the whole cart document for a cart key.
func (s *Store) PutCartSnapshot(ctx context.Context, cartKey string, payload []byte) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	cartKey = strings.TrimSpace(cartKey)
	if cartKey == "" {
		return fmt.Errorf("cart key is required")
	}
	if len(payload) == 0 {
		return fmt.Errorf("cart payload is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO cart_snapshots (cart_key, payload_json, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(cart_key) DO UPDATE SET
		    payload_json = excluded.payload_json,
		    updated_at = excluded.updated_at`,
		cartKey,
		payload,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put cart snapshot: %w", err)
	}
	return nil
}

// DeleteCartSnapshot removes the cart document for a cart key.
func (s *Store) DeleteCartSnapshot(ctx context.Context, cartKey string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	cartKey = strings.TrimSpace(cartKey)
	if cartKey == "" {
		return fmt.Errorf("cart key is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cart_snapshots WHERE cart_key = ?`, cartKey); err != nil {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}

// PutSession upserts a buyer session.
func (s *Store) PutSession(ctx context.Context, session storefrontstorage.Session) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
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

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sessions (session_id, user_id, user_json, access_token, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		    user_id = excluded.user_id,
		    user_json = excluded.user_json,
		    access_token = excluded.access_token,
		    created_at = excluded.created_at,
		    expires_at = excluded.expires_at`,
		session.ID,
		session.UserID,
		session.UserJSON,
		session.Token,
		timeToUnixMillis(session.CreatedAt),
		timeToUnixMillis(session.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession loads a buyer session by id.
func (s *Store) GetSession(ctx context.Context, sessionID string) (storefrontstorage.Session, bool, error) {
	if s == nil || s.sqlDB == nil {
		return storefrontstorage.Session{}, false, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return storefrontstorage.Session{}, false, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT session_id, user_id, user_json, access_token, created_at, expires_at
		 FROM sessions
		 WHERE session_id = ?`,
		sessionID,
	)

	var session storefrontstorage.Session
	var createdAt int64
	var expiresAt int64
	if err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.UserJSON,
		&session.Token,
		&createdAt,
		&expiresAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return storefrontstorage.Session{}, false, nil
		}
		return storefrontstorage.Session{}, false, fmt.Errorf("get session: %w", err)
	}
	session.CreatedAt = unixMillisToTime(createdAt)
	session.ExpiresAt = unixMillisToTime(expiresAt)
	return session, true, nil
}

// DeleteSession removes a buyer session by id.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
