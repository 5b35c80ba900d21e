package ledger

import (
	"testing"
	"time"

	"example.com/cashcompass/backend/internal/models"
)

func entryOn(day time.Time, kind models.EntryKind, amountCents int64) models.Entry {
	return models.Entry{
		Kind:        kind,
		Category:    "test",
		AmountCents: amountCents,
		OccursOn:    day,
	}
}

// TestSummarizeEmpty проверяет нулевой результат для пустого входа.
func TestSummarizeEmpty(t *testing.T) {
	window := WeekWindow(time.Now(), 0)

	totals := Summarize(nil, window)
	if totals.IncomeCents != 0 || totals.ExpenseCents != 0 || totals.SavingsCents != 0 {
		t.Fatalf("expected all-zero totals, got %+v", totals)
	}
}

// TestSummarizeSumsByKind проверяет суммирование по видам и накопления.
func TestSummarizeSumsByKind(t *testing.T) {
	ref := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local)
	window := WeekWindow(ref, 0)
	inWeek := window.Start.AddDate(0, 0, 2)

	entries := []models.Entry{
		entryOn(inWeek, models.EntryKindIncome, 100000),
		entryOn(inWeek, models.EntryKindIncome, 25000),
		entryOn(inWeek, models.EntryKindExpense, 40000),
	}

	totals := Summarize(entries, window)
	if totals.IncomeCents != 125000 {
		t.Fatalf("expected income 125000, got %d", totals.IncomeCents)
	}
	if totals.ExpenseCents != 40000 {
		t.Fatalf("expected expense 40000, got %d", totals.ExpenseCents)
	}
	if totals.SavingsCents != 85000 {
		t.Fatalf("expected savings 85000, got %d", totals.SavingsCents)
	}
}

// TestSummarizeExcludesOutsideWindow проверяет фильтрацию по окну
// независимо от вида и суммы записи.
func TestSummarizeExcludesOutsideWindow(t *testing.T) {
	ref := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local)
	window := WeekWindow(ref, 0)

	entries := []models.Entry{
		entryOn(window.Start.Add(-time.Hour), models.EntryKindIncome, 999999),
		entryOn(window.End, models.EntryKindExpense, 999999),
		entryOn(window.End.Add(time.Hour), models.EntryKindIncome, 999999),
	}

	totals := Summarize(entries, window)
	if totals.IncomeCents != 0 || totals.ExpenseCents != 0 {
		t.Fatalf("expected entries outside the window to be excluded, got %+v", totals)
	}
}

// TestSummarizeNegativeSavings проверяет, что накопления могут уходить
// в минус.
func TestSummarizeNegativeSavings(t *testing.T) {
	window := WeekWindow(time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local), 0)
	inWeek := window.Start.AddDate(0, 0, 1)

	entries := []models.Entry{
		entryOn(inWeek, models.EntryKindIncome, 10000),
		entryOn(inWeek, models.EntryKindExpense, 30000),
	}

	totals := Summarize(entries, window)
	if totals.SavingsCents != -20000 {
		t.Fatalf("expected savings -20000, got %d", totals.SavingsCents)
	}
}
