package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"example.com/cashcompass/backend/internal/ledger"
)

type fakeClient struct {
	reply string
	err   error
	seen  []Message
}

func (f *fakeClient) Chat(_ context.Context, messages []Message) (string, error) {
	f.seen = messages
	return f.reply, f.err
}

// TestWeeklyCommentBuildsPrompt проверяет, что в промпт попадают суммы
// обеих недель в долларах.
func TestWeeklyCommentBuildsPrompt(t *testing.T) {
	client := &fakeClient{reply: "Spending is up, cook at home more."}
	service := NewService(client)

	current := ledger.Totals{IncomeCents: 150050, ExpenseCents: 40000}
	previous := ledger.Totals{IncomeCents: 120000, ExpenseCents: 90025}

	comment, err := service.WeeklyComment(context.Background(), current, previous)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if comment != client.reply {
		t.Fatalf("expected model reply, got %q", comment)
	}

	if len(client.seen) != 1 {
		t.Fatalf("expected single message, got %d", len(client.seen))
	}

	prompt := client.seen[0].Content
	for _, want := range []string{"1500.50", "400.00", "1200.00", "900.25"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %s, got:\n%s", want, prompt)
		}
	}
}

// TestWeeklyCommentClientError проверяет проброс ошибки клиента.
func TestWeeklyCommentClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("rate limited")}
	service := NewService(client)

	if _, err := service.WeeklyComment(context.Background(), ledger.Totals{}, ledger.Totals{}); err == nil {
		t.Fatal("expected error from client")
	}
}

// TestWeeklyCommentEmptyReply проверяет отказ на пустом ответе модели.
func TestWeeklyCommentEmptyReply(t *testing.T) {
	client := &fakeClient{reply: "   "}
	service := NewService(client)

	if _, err := service.WeeklyComment(context.Background(), ledger.Totals{}, ledger.Totals{}); err == nil {
		t.Fatal("expected error for empty reply")
	}
}
