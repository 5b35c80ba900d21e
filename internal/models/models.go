package models

import (
	"time"

	"github.com/google/uuid"
)

type EntryKind string

type RecurrencePeriod string

type FriendRequestStatus string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"

	RecurrenceMonthly RecurrencePeriod = "monthly"
	RecurrenceYearly  RecurrencePeriod = "yearly"

	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestDeclined FriendRequestStatus = "declined"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Entry struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Kind        EntryKind         `json:"kind"`
	Category    string            `json:"category"`
	AmountCents int64             `json:"amount_cents"`
	Note        string            `json:"note,omitempty"`
	OccursOn    time.Time         `json:"occurs_on"`
	Recurrence  *RecurrencePeriod `json:"recurrence,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Notified взводится один раз при пересечении порога и сбрасывается
// только при изменении потолка.
type Budget struct {
	UserID     uuid.UUID `json:"user_id"`
	LimitCents int64     `json:"limit_cents"`
	Notified   bool      `json:"notified"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WeeklyPlanLine уникальна по паре (пользователь, категория).
type WeeklyPlanLine struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Category     string    `json:"category"`
	Icon         string    `json:"icon"`
	PlannedCents int64     `json:"planned_cents"`
	ActualCents  int64     `json:"actual_cents"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FriendRequest struct {
	ID          uuid.UUID           `json:"id"`
	FromUser    uuid.UUID           `json:"from_user"`
	ToUser      uuid.UUID           `json:"to_user"`
	Status      FriendRequestStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	RespondedAt *time.Time          `json:"responded_at,omitempty"`
}

type ChatMessage struct {
	ID       uuid.UUID `json:"id"`
	FromUser uuid.UUID `json:"from_user"`
	ToUser   uuid.UUID `json:"to_user"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}
