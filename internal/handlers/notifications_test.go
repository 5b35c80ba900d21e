package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"example.com/cashcompass/backend/internal/notifications"
)

// TestWriteSSE проверяет формат SSE-кадра.
func TestWriteSSE(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	event := notifications.Event{
		Type: notifications.EventBudgetAlert,
		Data: notifications.BudgetAlert{LimitCents: 50000, ExpenseCents: 47000, Utilization: 0.94},
	}

	if err := writeSSE(c, event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "event: budget_alert\n") {
		t.Fatalf("unexpected event line: %q", body)
	}
	if !strings.Contains(body, "data: ") {
		t.Fatalf("missing data line: %q", body)
	}
	if !strings.HasSuffix(body, "\n\n") {
		t.Fatalf("frame must end with a blank line: %q", body)
	}
	if !strings.Contains(body, `"limit_cents":50000`) {
		t.Fatalf("payload missing limit: %q", body)
	}
}
