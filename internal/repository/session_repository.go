package repository

import (
	"database/sql"
	"fmt"
)

// SessionRepository is a small key/value store for identity and auth state.
// Keys are disjoint; each Set targets one row.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(
		`SELECT value FROM session_values WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get session value %q: %w", key, err)
	}
	return value, nil
}

func (r *SessionRepository) Set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO session_values (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session value %q: %w", key, err)
	}
	return nil
}

func (r *SessionRepository) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM session_values WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete session value %q: %w", key, err)
	}
	return nil
}

func (r *SessionRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM session_values`)
	if err != nil {
		return fmt.Errorf("clear session values: %w", err)
	}
	return nil
}
