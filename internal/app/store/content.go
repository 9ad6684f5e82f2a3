package store

import (
	"context"
)

// GetContentValues returns every stored site-content value keyed by field key.
func (s *Store) GetContentValues(ctx context.Context) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, value FROM site_content`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, rows.Err()
}

// UpsertContentValue stores one site-content value, replacing any previous one.
func (s *Store) UpsertContentValue(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO site_content (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	_, err := s.pool.Exec(ctx, q, key, value)
	return err
}

// SeedContentDefaults inserts default values for keys that have never been
// edited. Existing rows are left untouched.
func (s *Store) SeedContentDefaults(ctx context.Context, defaults map[string]string) error {
	const q = `
		INSERT INTO site_content (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO NOTHING`

	for key, value := range defaults {
		if _, err := s.pool.Exec(ctx, q, key, value); err != nil {
			return err
		}
	}
	return nil
}
