package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Message is one contact-form submission in the admin inbox.
type Message struct {
	ID        int32
	Name      string
	Email     pgtype.Text
	Subject   string
	Content   string
	CreatedAt time.Time
	IsRead    bool
}

// CreateMessage inserts a contact message. Email may be empty; it is stored
// as NULL in that case.
func (s *Store) CreateMessage(ctx context.Context, name, email, subject, content string) (Message, error) {
	const q = `
		INSERT INTO message (name, email, subject, content)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING id, name, email, subject, content, created_at, is_read`

	var m Message
	err := s.pool.QueryRow(ctx, q, name, email, subject, content).
		Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Content, &m.CreatedAt, &m.IsRead)
	return m, err
}

// ListMessages returns every inbox message, newest first.
func (s *Store) ListMessages(ctx context.Context) ([]Message, error) {
	const q = `
		SELECT id, name, email, subject, content, created_at, is_read
		FROM message
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Content, &m.CreatedAt, &m.IsRead); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkMessageRead flags a message as read and returns the updated record.
func (s *Store) MarkMessageRead(ctx context.Context, id int32) (Message, error) {
	const q = `
		UPDATE message
		SET is_read = TRUE
		WHERE id = $1
		RETURNING id, name, email, subject, content, created_at, is_read`

	var m Message
	err := s.pool.QueryRow(ctx, q, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Content, &m.CreatedAt, &m.IsRead)
	return m, err
}

// DeleteMessage removes a message by id.
func (s *Store) DeleteMessage(ctx context.Context, id int32) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM message WHERE id = $1`, id)
	return err
}
