package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/cashcompass/backend/internal/auth"
	"example.com/cashcompass/backend/internal/config"
	"example.com/cashcompass/backend/internal/ledger"
	"example.com/cashcompass/backend/internal/notifications"
	"example.com/cashcompass/backend/internal/repository"
)

type BudgetHandler struct {
	Budgets *repository.BudgetRepository
	Entries *repository.EntryRepository
	Hub     *notifications.Hub
	Scope   string
}

// NewBudgetHandler создает обработчик бюджета. Scope задает окно
// расходов: текущая неделя или все записи.
func NewBudgetHandler(budgets *repository.BudgetRepository, entries *repository.EntryRepository, hub *notifications.Hub, scope string) *BudgetHandler {
	return &BudgetHandler{
		Budgets: budgets,
		Entries: entries,
		Hub:     hub,
		Scope:   scope,
	}
}

type BudgetRequest struct {
	Limit int64 `json:"limit_cents" validate:"required,gt=0"`
}

type BudgetResponse struct {
	LimitCents   int64   `json:"limit_cents"`
	ExpenseCents int64   `json:"expense_cents"`
	Utilization  float64 `json:"utilization"`
	Notify       bool    `json:"notify"`
}

// Upsert устанавливает потолок расходов. Смена потолка сбрасывает
// флаг отправленного уведомления.
func (h *BudgetHandler) Upsert(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	budget, err := h.Budgets.Upsert(c.Request().Context(), userID, req.Limit)
	if err != nil {
		return serverError(c)
	}

	expense, err := h.expenseCents(c)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, h.evaluate(c, budget.LimitCents, expense, budget.Notified))
}

// Get возвращает потолок и текущий расход. Без установленного бюджета
// отдается нулевой ответ, а не 404.
func (h *BudgetHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	budget, err := h.Budgets.Get(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusOK, BudgetResponse{})
		}
		return serverError(c)
	}

	expense, err := h.expenseCents(c)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, h.evaluate(c, budget.LimitCents, expense, budget.Notified))
}

// evaluate считает использование бюджета и при первом пересечении
// порога публикует событие. Флаг взводится условным UPDATE, так что
// при гонке уведомление уходит ровно один раз. В ответе notify=true
// только на том вызове, который пересек порог; повторные вызовы при
// тех же данных отдают false.
func (h *BudgetHandler) evaluate(c echo.Context, limitCents, expenseCents int64, notified bool) BudgetResponse {
	userID, _ := auth.UserIDFromContext(c)

	eval := ledger.EvaluateBudget(limitCents, expenseCents, notified)

	notify := false
	if eval.ShouldNotify {
		marked, err := h.Budgets.MarkNotified(c.Request().Context(), userID)
		if err == nil && marked {
			h.Hub.Publish(userID, notifications.Event{
				Type: notifications.EventBudgetAlert,
				Data: notifications.BudgetAlert{
					LimitCents:   limitCents,
					ExpenseCents: expenseCents,
					Utilization:  eval.Utilization,
				},
			})
			notify = true
		}
	}

	return BudgetResponse{
		LimitCents:   limitCents,
		ExpenseCents: expenseCents,
		Utilization:  eval.Utilization,
		Notify:       notify,
	}
}

func (h *BudgetHandler) expenseCents(c echo.Context) (int64, error) {
	userID, _ := auth.UserIDFromContext(c)

	if h.Scope == config.BudgetScopeAll {
		return h.Entries.SumExpenseCents(c.Request().Context(), userID, nil, nil)
	}

	window := dateBounds(ledger.WeekWindow(time.Now(), 0))
	return h.Entries.SumExpenseCents(c.Request().Context(), userID, &window.Start, &window.End)
}
