package ai

import (
	"context"
	"fmt"
	"strings"

	"example.com/cashcompass/backend/internal/ledger"
)

// FallbackComment подставляется вместо комментария модели, когда
// внешний API недоступен: числовая сводка не должна падать из-за
// необязательного обогащения.
const FallbackComment = "No AI insight available."

type Service struct {
	client Client
}

// NewService создает сервис комментариев к недельной сводке.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// WeeklyComment просит модель сравнить две недели и дать короткую
// рекомендацию. Возвращает текст комментария.
func (s *Service) WeeklyComment(ctx context.Context, current, previous ledger.Totals) (string, error) {
	prompt := buildWeeklyPrompt(current, previous)

	messages := []Message{
		{Role: "user", Content: prompt},
	}

	content, err := s.client.Chat(ctx, messages)
	if err != nil {
		return "", err
	}

	comment := strings.TrimSpace(content)
	if comment == "" {
		return "", fmt.Errorf("empty model response")
	}

	return comment, nil
}

func buildWeeklyPrompt(current, previous ledger.Totals) string {
	return fmt.Sprintf(`This week: Income $%s, Expense $%s
Last week: Income $%s, Expense $%s
Write a short, human-friendly summary comparing both weeks, and provide a suggestion for improvement.`,
		dollars(current.IncomeCents), dollars(current.ExpenseCents),
		dollars(previous.IncomeCents), dollars(previous.ExpenseCents))
}

func dollars(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
