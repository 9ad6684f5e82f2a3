package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ZoomLink is one meeting link shown on the church-life page. Password is
// optional and stored as NULL when absent.
type ZoomLink struct {
	ID        int32
	Title     string
	URL       string
	Password  pgtype.Text
	CreatedAt time.Time
}

// CreateZoomLink inserts a zoom link and returns it with the assigned id.
func (s *Store) CreateZoomLink(ctx context.Context, title, url, password string) (ZoomLink, error) {
	const q = `
		INSERT INTO zoom_link (title, url, password)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, title, url, password, created_at`

	var z ZoomLink
	err := s.pool.QueryRow(ctx, q, title, url, password).
		Scan(&z.ID, &z.Title, &z.URL, &z.Password, &z.CreatedAt)
	return z, err
}

// ListZoomLinks returns every zoom link, newest first.
func (s *Store) ListZoomLinks(ctx context.Context) ([]ZoomLink, error) {
	const q = `
		SELECT id, title, url, password, created_at
		FROM zoom_link
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []ZoomLink
	for rows.Next() {
		var z ZoomLink
		if err := rows.Scan(&z.ID, &z.Title, &z.URL, &z.Password, &z.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, z)
	}
	return links, rows.Err()
}

// UpdateZoomLink rewrites a zoom link's title, url, and password.
func (s *Store) UpdateZoomLink(ctx context.Context, id int32, title, url, password string) (ZoomLink, error) {
	const q = `
		UPDATE zoom_link
		SET title = $2, url = $3, password = NULLIF($4, '')
		WHERE id = $1
		RETURNING id, title, url, password, created_at`

	var z ZoomLink
	err := s.pool.QueryRow(ctx, q, id, title, url, password).
		Scan(&z.ID, &z.Title, &z.URL, &z.Password, &z.CreatedAt)
	return z, err
}

// DeleteZoomLink removes a zoom link by id.
func (s *Store) DeleteZoomLink(ctx context.Context, id int32) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM zoom_link WHERE id = $1`, id)
	return err
}
