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

type EntryRepository struct {
	db *pgxpool.Pool
}

// NewEntryRepository создает репозиторий записей доходов и расходов.
func NewEntryRepository(db *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{db: db}
}

const entryColumns = `id, user_id, kind, category, amount_cents, note, occurs_on, recurrence_period, created_at, updated_at`

// CreateBatch сохраняет партию записей одной транзакцией: либо вся
// раскладка повторения попадает в базу, либо ничего.
func (r *EntryRepository) CreateBatch(ctx context.Context, entries []models.Entry) ([]models.Entry, error) {
	if len(entries) == 0 {
		return nil, ErrInvalid
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	created := make([]models.Entry, 0, len(entries))
	for _, entry := range entries {
		var row models.Entry
		err := tx.QueryRow(ctx,
			`INSERT INTO entries (user_id, kind, category, amount_cents, note, occurs_on, recurrence_period)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING `+entryColumns,
			entry.UserID, entry.Kind, entry.Category, entry.AmountCents, entry.Note, entry.OccursOn, entry.Recurrence,
		).Scan(scanEntry(&row)...)
		if err != nil {
			return nil, err
		}
		created = append(created, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// ListByUser возвращает записи пользователя, новые даты первыми.
func (r *EntryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+entryColumns+`
		 FROM entries
		 WHERE user_id = $1
		 ORDER BY occurs_on DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListByUserBetween возвращает записи пользователя в полуинтервале
// [from, to) по дате.
func (r *EntryRepository) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+entryColumns+`
		 FROM entries
		 WHERE user_id = $1 AND occurs_on >= $2 AND occurs_on < $3
		 ORDER BY occurs_on DESC, created_at DESC`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

// SumExpenseCents суммирует расходы пользователя. Ненулевые границы
// ограничивают сумму полуинтервалом [from, to).
func (r *EntryRepository) SumExpenseCents(ctx context.Context, userID uuid.UUID, from, to *time.Time) (int64, error) {
	var total int64

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0)
		 FROM entries
		 WHERE user_id = $1
		   AND kind = 'expense'
		   AND ($2::date IS NULL OR occurs_on >= $2::date)
		   AND ($3::date IS NULL OR occurs_on < $3::date)`,
		userID, from, to,
	).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

// Update заменяет редактируемые поля записи владельца.
func (r *EntryRepository) Update(ctx context.Context, userID, entryID uuid.UUID, kind models.EntryKind, category string, amountCents int64, note string, occursOn time.Time) (models.Entry, error) {
	var entry models.Entry

	err := r.db.QueryRow(ctx,
		`UPDATE entries
		 SET kind = $3,
		     category = $4,
		     amount_cents = $5,
		     note = $6,
		     occurs_on = $7,
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+entryColumns,
		entryID, userID, kind, category, amountCents, note, occursOn,
	).Scan(scanEntry(&entry)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entry, ErrNotFound
		}
		return entry, err
	}

	return entry, nil
}

// Delete удаляет запись владельца.
func (r *EntryRepository) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM entries WHERE id = $1 AND user_id = $2`,
		entryID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanEntry(entry *models.Entry) []any {
	return []any{
		&entry.ID, &entry.UserID, &entry.Kind, &entry.Category, &entry.AmountCents,
		&entry.Note, &entry.OccursOn, &entry.Recurrence, &entry.CreatedAt, &entry.UpdatedAt,
	}
}

func collectEntries(rows pgx.Rows) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	for rows.Next() {
		var entry models.Entry
		if err := rows.Scan(scanEntry(&entry)...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
