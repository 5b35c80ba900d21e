package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/cashcompass/backend/internal/auth"
	"example.com/cashcompass/backend/internal/models"
	"example.com/cashcompass/backend/internal/repository"
)

type PlannerHandler struct {
	Planner *repository.PlannerRepository
}

// NewPlannerHandler создает обработчик недельного плана.
func NewPlannerHandler(planner *repository.PlannerRepository) *PlannerHandler {
	return &PlannerHandler{Planner: planner}
}

type PlanLineRequest struct {
	Category string `json:"category" validate:"required,max=100"`
	Icon     string `json:"icon" validate:"max=50"`
	Planned  int64  `json:"planned_cents" validate:"gte=0"`
	Actual   int64  `json:"actual_cents" validate:"gte=0"`
	Notes    string `json:"notes" validate:"max=500"`
}

type PlanRequest struct {
	Lines []PlanLineRequest `json:"lines" validate:"required,dive"`
}

type PlanResponse struct {
	Lines []models.WeeklyPlanLine `json:"lines"`
}

// List возвращает все строки плана пользователя.
func (h *PlannerHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	lines, err := h.Planner.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, PlanResponse{Lines: lines})
}

// Upsert сохраняет строки плана пачкой. Строка с существующей
// категорией обновляется, новая добавляется.
func (h *PlannerHandler) Upsert(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	lines := make([]models.WeeklyPlanLine, 0, len(req.Lines))
	seen := make(map[string]struct{}, len(req.Lines))
	for _, line := range req.Lines {
		category := strings.TrimSpace(line.Category)
		if category == "" {
			return badRequest(c, "category is required")
		}
		if _, ok := seen[category]; ok {
			return badRequest(c, "duplicate category: "+category)
		}
		seen[category] = struct{}{}

		lines = append(lines, models.WeeklyPlanLine{
			UserID:       userID,
			Category:     category,
			Icon:         strings.TrimSpace(line.Icon),
			PlannedCents: line.Planned,
			ActualCents:  line.Actual,
			Notes:        strings.TrimSpace(line.Notes),
		})
	}

	saved, err := h.Planner.UpsertLines(c.Request().Context(), userID, lines)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, PlanResponse{Lines: saved})
}
