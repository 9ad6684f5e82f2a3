/*
Package store provides the typed database queries for the site's persistent
records: shared files, board posts, contact messages, zoom links, and editable
site content values.

Live chat state is deliberately absent: the relay is in-memory only and chat
history is never persisted.
*/
package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps the connection pool with one query method per operation.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
