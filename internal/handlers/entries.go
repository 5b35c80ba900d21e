package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/cashcompass/backend/internal/auth"
	"example.com/cashcompass/backend/internal/ledger"
	"example.com/cashcompass/backend/internal/models"
	"example.com/cashcompass/backend/internal/notifications"
	"example.com/cashcompass/backend/internal/repository"
)

type EntryHandler struct {
	Entries *repository.EntryRepository
	Hub     *notifications.Hub
}

// NewEntryHandler создает обработчик записей доходов и расходов.
func NewEntryHandler(entries *repository.EntryRepository, hub *notifications.Hub) *EntryHandler {
	return &EntryHandler{Entries: entries, Hub: hub}
}

type EntryRequest struct {
	Kind       string    `json:"kind" validate:"required,oneof=income expense"`
	Category   string    `json:"category" validate:"required,max=100"`
	Amount     int64     `json:"amount_cents" validate:"gte=0"`
	Note       string    `json:"note" validate:"max=500"`
	OccursOn   time.Time `json:"occurs_on" validate:"required"`
	Recurrence string    `json:"recurrence" validate:"omitempty,oneof=monthly yearly"`
}

type EntriesResponse struct {
	Entries []models.Entry `json:"entries"`
}

type EntryResponse struct {
	Entry models.Entry `json:"entry"`
}

// Create добавляет запись. Повторяющийся шаблон разворачивается в
// набор записей, которые сохраняются одной транзакцией.
func (h *EntryHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	template := models.Entry{
		UserID:      userID,
		Kind:        models.EntryKind(req.Kind),
		Category:    strings.TrimSpace(req.Category),
		AmountCents: req.Amount,
		Note:        strings.TrimSpace(req.Note),
		OccursOn:    req.OccursOn,
	}
	if req.Recurrence != "" {
		period := models.RecurrencePeriod(req.Recurrence)
		template.Recurrence = &period
	}

	expanded, err := ledger.ExpandRecurrence(template)
	if err != nil {
		return badRequest(c, "invalid entry")
	}

	created, err := h.Entries.CreateBatch(c.Request().Context(), expanded)
	if err != nil {
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.Event{Type: notifications.EventEntriesChanged})

	return c.JSON(http.StatusCreated, EntriesResponse{Entries: created})
}

// List возвращает все записи пользователя, новые первыми.
func (h *EntryHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	entries, err := h.Entries.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, EntriesResponse{Entries: entries})
}

// Update изменяет одну запись пользователя. Признак повторения при
// этом не меняется: развернутые записи редактируются по отдельности.
func (h *EntryHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	entry, err := h.Entries.Update(
		c.Request().Context(),
		userID,
		entryID,
		models.EntryKind(req.Kind),
		strings.TrimSpace(req.Category),
		req.Amount,
		strings.TrimSpace(req.Note),
		req.OccursOn,
	)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "entry not found")
		}
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.Event{Type: notifications.EventEntriesChanged})

	return c.JSON(http.StatusOK, EntryResponse{Entry: entry})
}

// Delete удаляет запись пользователя.
func (h *EntryHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	if err := h.Entries.Delete(c.Request().Context(), userID, entryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "entry not found")
		}
		return serverError(c)
	}

	h.Hub.Publish(userID, notifications.Event{Type: notifications.EventEntriesChanged})

	return c.NoContent(http.StatusNoContent)
}
