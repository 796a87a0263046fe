// Package messages provides the PostgreSQL-backed repository for direct
// messages and conversation reconstruction.
package messages

import (
	"context"
	"fmt"

	"github.com/skillswap/skillswap/internal/dbx"
	"github.com/skillswap/skillswap/internal/server/models"
)

// PostgresRepository implements message storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query :=
		`INSERT INTO messages (id, sender_id, receiver_id, content, is_read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Content, msg.IsRead, msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}

// Conversation returns every message exchanged between userA and userB,
// in either direction, ascending by creation time. The result is identical
// for (A, B) and (B, A).
func (r *PostgresRepository) Conversation(ctx context.Context, userA, userB string) ([]*models.Message, error) {
	query :=
		`SELECT id, sender_id, receiver_id, content, is_read, created_at FROM messages
		 WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content,
			&m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
