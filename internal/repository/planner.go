package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/cashcompass/backend/internal/models"
)

type PlannerRepository struct {
	db *pgxpool.Pool
}

// NewPlannerRepository создает репозиторий недельного плана.
func NewPlannerRepository(db *pgxpool.Pool) *PlannerRepository {
	return &PlannerRepository{db: db}
}

const plannerColumns = `id, user_id, category, icon, planned_cents, actual_cents, notes, created_at, updated_at`

// ListByUser возвращает строки плана пользователя по категориям.
func (r *PlannerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WeeklyPlanLine, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+plannerColumns+`
		 FROM weekly_plan_lines
		 WHERE user_id = $1
		 ORDER BY category`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]models.WeeklyPlanLine, 0)
	for rows.Next() {
		var line models.WeeklyPlanLine
		err := rows.Scan(&line.ID, &line.UserID, &line.Category, &line.Icon,
			&line.PlannedCents, &line.ActualCents, &line.Notes, &line.CreatedAt, &line.UpdatedAt)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// UpsertLines сохраняет пачку строк плана одной транзакцией: строка
// находится по паре (пользователь, категория) и перезаписывается без
// версионирования; иконка задается только при первом создании.
func (r *PlannerRepository) UpsertLines(ctx context.Context, userID uuid.UUID, lines []models.WeeklyPlanLine) ([]models.WeeklyPlanLine, error) {
	if len(lines) == 0 {
		return nil, ErrInvalid
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	saved := make([]models.WeeklyPlanLine, 0, len(lines))
	for _, line := range lines {
		var row models.WeeklyPlanLine
		err := tx.QueryRow(ctx,
			`INSERT INTO weekly_plan_lines (user_id, category, icon, planned_cents, actual_cents, notes)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (user_id, category) DO UPDATE
			 SET planned_cents = EXCLUDED.planned_cents,
			     actual_cents = EXCLUDED.actual_cents,
			     notes = EXCLUDED.notes,
			     updated_at = NOW()
			 RETURNING `+plannerColumns,
			userID, line.Category, line.Icon, line.PlannedCents, line.ActualCents, line.Notes,
		).Scan(&row.ID, &row.UserID, &row.Category, &row.Icon,
			&row.PlannedCents, &row.ActualCents, &row.Notes, &row.CreatedAt, &row.UpdatedAt)
		if err != nil {
			return nil, err
		}
		saved = append(saved, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
