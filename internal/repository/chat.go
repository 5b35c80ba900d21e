package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/cashcompass/backend/internal/models"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository создает репозиторий сообщений чата.
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// History возвращает переписку двух пользователей в хронологическом
// порядке.
func (r *ChatRepository) History(ctx context.Context, userID, friendID uuid.UUID) ([]models.ChatMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, from_user, to_user, body, sent_at
		 FROM chat_messages
		 WHERE (from_user = $1 AND to_user = $2)
		    OR (from_user = $2 AND to_user = $1)
		 ORDER BY sent_at`,
		userID, friendID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var message models.ChatMessage
		err := rows.Scan(&message.ID, &message.FromUser, &message.ToUser, &message.Body, &message.SentAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// Send сохраняет сообщение.
func (r *ChatRepository) Send(ctx context.Context, fromUser, toUser uuid.UUID, body string) (models.ChatMessage, error) {
	var message models.ChatMessage

	err := r.db.QueryRow(ctx,
		`INSERT INTO chat_messages (from_user, to_user, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, from_user, to_user, body, sent_at`,
		fromUser, toUser, body,
	).Scan(&message.ID, &message.FromUser, &message.ToUser, &message.Body, &message.SentAt)
	if err != nil {
		return message, err
	}

	return message, nil
}
