package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// DefaultCategory is applied when a post is created without a category.
const DefaultCategory = "general"

// Post is one discussion board entry.
type Post struct {
	ID        int32
	Title     string
	Content   string
	Category  string
	CreatedAt time.Time
}

// CreatePost inserts a post and returns it with the assigned id.
func (s *Store) CreatePost(ctx context.Context, title, content, category string) (Post, error) {
	if category == "" {
		category = DefaultCategory
	}

	const q = `
		INSERT INTO post (title, content, category)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, category, created_at`

	var p Post
	err := s.pool.QueryRow(ctx, q, title, content, category).
		Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.CreatedAt)
	return p, err
}

// ListPosts returns posts newest first, optionally filtered by category.
func (s *Store) ListPosts(ctx context.Context, category string) ([]Post, error) {
	const all = `
		SELECT id, title, content, category, created_at
		FROM post
		ORDER BY created_at DESC`
	const filtered = `
		SELECT id, title, content, category, created_at
		FROM post
		WHERE category = $1
		ORDER BY created_at DESC`

	var (
		rows pgx.Rows
		err  error
	)
	if category == "" {
		rows, err = s.pool.Query(ctx, all)
	} else {
		rows, err = s.pool.Query(ctx, filtered, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns one post by id.
func (s *Store) GetPost(ctx context.Context, id int32) (Post, error) {
	const q = `
		SELECT id, title, content, category, created_at
		FROM post
		WHERE id = $1`

	var p Post
	err := s.pool.QueryRow(ctx, q, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.CreatedAt)
	return p, err
}

// UpdatePost rewrites a post's title, content, and category.
func (s *Store) UpdatePost(ctx context.Context, id int32, title, content, category string) (Post, error) {
	if category == "" {
		category = DefaultCategory
	}

	const q = `
		UPDATE post
		SET title = $2, content = $3, category = $4
		WHERE id = $1
		RETURNING id, title, content, category, created_at`

	var p Post
	err := s.pool.QueryRow(ctx, q, id, title, content, category).
		Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.CreatedAt)
	return p, err
}

// DeletePost removes a post by id.
func (s *Store) DeletePost(ctx context.Context, id int32) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM post WHERE id = $1`, id)
	return err
}
