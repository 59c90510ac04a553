package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/resolvai/resolvai/internal/db"
	"github.com/resolvai/resolvai/internal/domain"
)

const (
	themeKey        = "theme"
	pendingStudyKey = "pending_study"

	// DefaultTheme is what Theme returns before the user picks one.
	DefaultTheme = "dark"
)

func credentialKey(provider string) string {
	return "credential:" + provider
}

// SQLiteSettingsStore implements SettingsStore over the settings
// key-value table.
type SQLiteSettingsStore struct {
	db db.DBTX
}

func NewSQLiteSettingsStore(conn db.DBTX) *SQLiteSettingsStore {
	return &SQLiteSettingsStore{db: conn}
}

func (r *SQLiteSettingsStore) get(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("setting %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSettingsStore) set(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteSettingsStore) delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting setting %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteSettingsStore) Theme(ctx context.Context) (string, error) {
	theme, err := r.get(ctx, themeKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return DefaultTheme, nil
		}
		return "", err
	}
	return theme, nil
}

func (r *SQLiteSettingsStore) SetTheme(ctx context.Context, theme string) error {
	return r.set(ctx, themeKey, theme)
}

func (r *SQLiteSettingsStore) Credential(ctx context.Context, provider string) (string, error) {
	return r.get(ctx, credentialKey(provider))
}

func (r *SQLiteSettingsStore) SetCredential(ctx context.Context, provider, key string) error {
	return r.set(ctx, credentialKey(provider), key)
}

func (r *SQLiteSettingsStore) RemoveCredential(ctx context.Context, provider string) error {
	return r.delete(ctx, credentialKey(provider))
}

func (r *SQLiteSettingsStore) SetPendingStudy(ctx context.Context, s *domain.Study) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling pending study: %w", err)
	}
	return r.set(ctx, pendingStudyKey, string(data))
}

func (r *SQLiteSettingsStore) TakePendingStudy(ctx context.Context) (*domain.Study, error) {
	data, err := r.get(ctx, pendingStudyKey)
	if err != nil {
		return nil, err
	}
	var s domain.Study
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("unmarshaling pending study: %w", err)
	}
	if err := r.delete(ctx, pendingStudyKey); err != nil {
		return nil, err
	}
	return &s, nil
}
