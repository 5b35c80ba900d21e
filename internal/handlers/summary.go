package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/cashcompass/backend/internal/ai"
	"example.com/cashcompass/backend/internal/auth"
	"example.com/cashcompass/backend/internal/ledger"
	"example.com/cashcompass/backend/internal/repository"
)

type SummaryHandler struct {
	Entries *repository.EntryRepository
	AI      *ai.Service
}

// NewSummaryHandler создает обработчик недельных сводок.
func NewSummaryHandler(entries *repository.EntryRepository, aiService *ai.Service) *SummaryHandler {
	return &SummaryHandler{Entries: entries, AI: aiService}
}

type WeeklySummaryResponse struct {
	CurrentWeek  ledger.Totals `json:"current_week"`
	PreviousWeek ledger.Totals `json:"previous_week"`
}

type AISummaryResponse struct {
	CurrentWeek  ledger.Totals `json:"current_week"`
	PreviousWeek ledger.Totals `json:"previous_week"`
	AIComment    string        `json:"ai_comment"`
}

// Weekly возвращает итоги текущей и прошлой недели.
func (h *SummaryHandler) Weekly(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	current, previous, err := h.weeklyTotals(c, userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, WeeklySummaryResponse{
		CurrentWeek:  current,
		PreviousWeek: previous,
	})
}

// WeeklyAI возвращает те же итоги вместе с коротким комментарием. При
// недоступности провайдера отдается заглушка вместо ошибки.
func (h *SummaryHandler) WeeklyAI(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	current, previous, err := h.weeklyTotals(c, userID)
	if err != nil {
		return serverError(c)
	}

	comment, err := h.AI.WeeklyComment(c.Request().Context(), current, previous)
	if err != nil {
		comment = ai.FallbackComment
	}

	return c.JSON(http.StatusOK, AISummaryResponse{
		CurrentWeek:  current,
		PreviousWeek: previous,
		AIComment:    comment,
	})
}

func (h *SummaryHandler) weeklyTotals(c echo.Context, userID uuid.UUID) (current, previous ledger.Totals, err error) {
	now := time.Now()
	currentWindow := dateBounds(ledger.WeekWindow(now, 0))
	previousWindow := dateBounds(ledger.WeekWindow(now, 1))

	// Одна выборка покрывает оба окна: прошлое окно кончается там, где
	// начинается текущее.
	entries, err := h.Entries.ListByUserBetween(c.Request().Context(), userID, previousWindow.Start, currentWindow.End)
	if err != nil {
		return ledger.Totals{}, ledger.Totals{}, err
	}

	return ledger.Summarize(entries, currentWindow), ledger.Summarize(entries, previousWindow), nil
}

// dateBounds переводит границы окна на полночь UTC тех же календарных
// дат: occurs_on хранится с точностью до дня и читается из базы
// полуночью UTC.
func dateBounds(w ledger.Window) ledger.Window {
	return ledger.Window{Start: midnightUTC(w.Start), End: midnightUTC(w.End)}
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
