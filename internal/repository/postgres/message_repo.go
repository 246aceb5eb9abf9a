package postgres

import (
	"context"
	"fmt"

	"github.com/vedran77/roomchat/internal/domain"
)

type MessageRepo struct {
	q Querier
}

func NewMessageRepo(q Querier) *MessageRepo {
	return &MessageRepo{q: q}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, room, user_id, text)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.q.QueryRow(ctx, query, msg.ID, msg.Room, msg.AuthorID, msg.Text).Scan(&msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert message: %w", mapPgError(err))
	}
	return nil
}

func (r *MessageRepo) ListRecent(ctx context.Context, room string, limit int) ([]domain.RoomMessage, error) {
	query := `
		SELECT m.id, m.room, m.text, m.created_at, u.username, COALESCE(u.avatar, '')
		FROM messages m
		JOIN users u ON u.id = m.user_id
		WHERE m.room = $1
		ORDER BY m.created_at DESC
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, room, limit)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.RoomMessage, 0, limit)
	for rows.Next() {
		var m domain.RoomMessage
		if err := rows.Scan(&m.ID, &m.Room, &m.Text, &m.CreatedAt, &m.Username, &m.Avatar); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}
