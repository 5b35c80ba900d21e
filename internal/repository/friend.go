package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/cashcompass/backend/internal/models"
)

type FriendRepository struct {
	db *pgxpool.Pool
}

// FriendRequestInfo несет заявку вместе с данными второй стороны.
type FriendRequestInfo struct {
	ID        uuid.UUID                  `json:"id"`
	Status    models.FriendRequestStatus `json:"status"`
	CreatedAt time.Time                  `json:"created_at"`
	UserID    uuid.UUID                  `json:"user_id"`
	Username  string                     `json:"username"`
	Email     string                     `json:"email"`
}

// Friend представляет запись списка друзей.
type Friend struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// NewFriendRepository создает репозиторий дружеских связей.
func NewFriendRepository(db *pgxpool.Pool) *FriendRepository {
	return &FriendRepository{db: db}
}

// AreFriends сообщает, являются ли пользователи друзьями.
func (r *FriendRepository) AreFriends(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM user_friends WHERE user_id = $1 AND friend_id = $2
		 )`,
		userID, otherID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// CreateRequest создает исходящую заявку. Повторная pending-заявка к
// тому же пользователю считается конфликтом.
func (r *FriendRepository) CreateRequest(ctx context.Context, fromUser, toUser uuid.UUID) (models.FriendRequest, error) {
	var request models.FriendRequest

	var pending bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE from_user = $1 AND to_user = $2 AND status = 'pending'
		 )`,
		fromUser, toUser,
	).Scan(&pending)
	if err != nil {
		return request, err
	}
	if pending {
		return request, ErrConflict
	}

	err = r.db.QueryRow(ctx,
		`INSERT INTO friend_requests (from_user, to_user)
		 VALUES ($1, $2)
		 RETURNING id, from_user, to_user, status, created_at, responded_at`,
		fromUser, toUser,
	).Scan(&request.ID, &request.FromUser, &request.ToUser, &request.Status, &request.CreatedAt, &request.RespondedAt)
	if err != nil {
		return request, err
	}

	return request, nil
}

// ListPending возвращает исходящие и входящие pending-заявки
// пользователя с данными второй стороны.
func (r *FriendRepository) ListPending(ctx context.Context, userID uuid.UUID) (sent, received []FriendRequestInfo, err error) {
	sent, err = r.listPendingSide(ctx,
		`SELECT fr.id, fr.status, fr.created_at, u.id, u.username, u.email
		 FROM friend_requests fr
		 JOIN users u ON u.id = fr.to_user
		 WHERE fr.from_user = $1 AND fr.status = 'pending'
		 ORDER BY fr.created_at`,
		userID,
	)
	if err != nil {
		return nil, nil, err
	}

	received, err = r.listPendingSide(ctx,
		`SELECT fr.id, fr.status, fr.created_at, u.id, u.username, u.email
		 FROM friend_requests fr
		 JOIN users u ON u.id = fr.from_user
		 WHERE fr.to_user = $1 AND fr.status = 'pending'
		 ORDER BY fr.created_at`,
		userID,
	)
	if err != nil {
		return nil, nil, err
	}

	return sent, received, nil
}

// Accept принимает входящую заявку и связывает пользователей в обе
// стороны одной транзакцией.
func (r *FriendRepository) Accept(ctx context.Context, requestID, toUser uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var fromUser uuid.UUID
	err = tx.QueryRow(ctx,
		`UPDATE friend_requests
		 SET status = 'accepted', responded_at = NOW()
		 WHERE id = $1 AND to_user = $2 AND status = 'pending'
		 RETURNING from_user`,
		requestID, toUser,
	).Scan(&fromUser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO user_friends (user_id, friend_id)
		 VALUES ($1, $2), ($2, $1)
		 ON CONFLICT DO NOTHING`,
		toUser, fromUser,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Decline отклоняет входящую заявку.
func (r *FriendRepository) Decline(ctx context.Context, requestID, toUser uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE friend_requests
		 SET status = 'declined', responded_at = NOW()
		 WHERE id = $1 AND to_user = $2 AND status = 'pending'`,
		requestID, toUser,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ListFriends возвращает друзей пользователя.
func (r *FriendRepository) ListFriends(ctx context.Context, userID uuid.UUID) ([]Friend, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.username, u.email
		 FROM user_friends uf
		 JOIN users u ON u.id = uf.friend_id
		 WHERE uf.user_id = $1
		 ORDER BY u.username`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	friends := make([]Friend, 0)
	for rows.Next() {
		var friend Friend
		if err := rows.Scan(&friend.ID, &friend.Username, &friend.Email); err != nil {
			return nil, err
		}
		friends = append(friends, friend)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return friends, nil
}

func (r *FriendRepository) listPendingSide(ctx context.Context, query string, userID uuid.UUID) ([]FriendRequestInfo, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]FriendRequestInfo, 0)
	for rows.Next() {
		var info FriendRequestInfo
		err := rows.Scan(&info.ID, &info.Status, &info.CreatedAt, &info.UserID, &info.Username, &info.Email)
		if err != nil {
			return nil, err
		}
		requests = append(requests, info)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
