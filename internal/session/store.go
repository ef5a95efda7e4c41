// Package session provides the namespaced key/value persistence backing
// the wallet session.
package session

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/fnurozcetin/lexStamp/internal/domain"
)

// Store is a sqlite-backed key/value store with two scopes: local entries
// survive restarts, session entries are wiped every time the store opens.
// All session keys share the fixed namespace prefix so logout can bulk
// delete by prefix match.
type Store struct {
	db *sql.DB
}

// NewStore opens (and if needed initializes) the store at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	store := &Store{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS kv (
		scope TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (scope, key)
	);`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to initialize session table: %w", err)
	}

	// Session-scoped entries do not outlive the process that wrote them.
	if _, err := s.db.Exec(`DELETE FROM kv WHERE scope = ?`, domain.ScopeSession); err != nil {
		return fmt.Errorf("failed to clear session scope: %w", err)
	}
	return nil
}

// Set stores a value under a scope and key, replacing any previous value.
func (s *Store) Set(scope, key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (scope, key, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		scope, key, value)
	if err != nil {
		return fmt.Errorf("failed to store %s/%s: %w", scope, key, err)
	}
	return nil
}

// Get returns the value for a scope and key, and whether it exists.
func (s *Store) Get(scope, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE scope = ? AND key = ?`, scope, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s/%s: %w", scope, key, err)
	}
	return value, true, nil
}

// DeleteByPrefix removes every key under the prefix in all scopes.
func (s *Store) DeleteByPrefix(prefix string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key LIKE ? || '%'`, prefix)
	if err != nil {
		return fmt.Errorf("failed to delete keys with prefix %s: %w", prefix, err)
	}
	return nil
}

// Keys lists every key under a prefix across all scopes.
func (s *Store) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key`, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys with prefix %s: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
