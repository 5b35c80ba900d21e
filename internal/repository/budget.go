package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/cashcompass/backend/internal/models"
)

type BudgetRepository struct {
	db *pgxpool.Pool
}

// NewBudgetRepository создает репозиторий бюджетов.
func NewBudgetRepository(db *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Get возвращает бюджет пользователя.
func (r *BudgetRepository) Get(ctx context.Context, userID uuid.UUID) (models.Budget, error) {
	var budget models.Budget

	err := r.db.QueryRow(ctx,
		`SELECT user_id, limit_cents, notified, updated_at
		 FROM budgets
		 WHERE user_id = $1`,
		userID,
	).Scan(&budget.UserID, &budget.LimitCents, &budget.Notified, &budget.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return budget, ErrNotFound
		}
		return budget, err
	}

	return budget, nil
}

// Upsert устанавливает потолок бюджета. Смена потолка всегда сбрасывает
// флаг уведомления.
func (r *BudgetRepository) Upsert(ctx context.Context, userID uuid.UUID, limitCents int64) (models.Budget, error) {
	var budget models.Budget

	err := r.db.QueryRow(ctx,
		`INSERT INTO budgets (user_id, limit_cents, notified)
		 VALUES ($1, $2, false)
		 ON CONFLICT (user_id) DO UPDATE
		 SET limit_cents = EXCLUDED.limit_cents,
		     notified = false,
		     updated_at = NOW()
		 RETURNING user_id, limit_cents, notified, updated_at`,
		userID, limitCents,
	).Scan(&budget.UserID, &budget.LimitCents, &budget.Notified, &budget.UpdatedAt)
	if err != nil {
		return budget, err
	}

	return budget, nil
}

// MarkNotified взводит флаг уведомления. Возвращает true, если флаг
// был взведен именно этим вызовом, чтобы при конкурентных запросах
// уведомление не ушло дважды.
func (r *BudgetRepository) MarkNotified(ctx context.Context, userID uuid.UUID) (bool, error) {
	cmd, err := r.db.Exec(ctx,
		`UPDATE budgets
		 SET notified = true
		 WHERE user_id = $1 AND NOT notified`,
		userID,
	)
	if err != nil {
		return false, err
	}

	return cmd.RowsAffected() == 1, nil
}
