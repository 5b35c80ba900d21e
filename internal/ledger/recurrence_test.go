package ledger

import (
	"errors"
	"testing"
	"time"

	"example.com/cashcompass/backend/internal/models"
)

func monthlyTemplate(occursOn time.Time) models.Entry {
	period := models.RecurrenceMonthly
	return models.Entry{
		Kind:        models.EntryKindExpense,
		Category:    "rent",
		AmountCents: 120000,
		OccursOn:    occursOn,
		Recurrence:  &period,
	}
}

// TestExpandMonthlySkipsShortMonths проверяет, что старт 31-го числа
// пропускает короткие месяцы, а не переносится на соседнюю дату.
func TestExpandMonthlySkipsShortMonths(t *testing.T) {
	start := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local)

	entries, err := ExpandRecurrence(monthlyTemplate(start))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantMonths := []time.Month{time.March, time.May, time.July, time.August, time.October, time.December}
	if len(entries) != len(wantMonths) {
		t.Fatalf("expected %d entries, got %d", len(wantMonths), len(entries))
	}

	for i, entry := range entries {
		if entry.OccursOn.Month() != wantMonths[i] {
			t.Fatalf("entry %d: expected month %s, got %s", i, wantMonths[i], entry.OccursOn.Month())
		}
		if entry.OccursOn.Day() != 31 {
			t.Fatalf("entry %d: expected day 31, got %d", i, entry.OccursOn.Day())
		}
		if entry.OccursOn.Year() != 2024 {
			t.Fatalf("entry %d: expected year 2024, got %d", i, entry.OccursOn.Year())
		}
	}
}

// TestExpandMonthlyRunsThroughDecember проверяет раскладку с середины
// года по декабрь включительно.
func TestExpandMonthlyRunsThroughDecember(t *testing.T) {
	start := time.Date(2025, time.September, 5, 0, 0, 0, 0, time.Local)

	entries, err := ExpandRecurrence(monthlyTemplate(start))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(entries) != 4 {
		t.Fatalf("expected 4 entries (Sep-Dec), got %d", len(entries))
	}

	last := entries[len(entries)-1]
	if last.OccursOn.Month() != time.December || last.OccursOn.Day() != 5 {
		t.Fatalf("expected last entry on Dec 5, got %s", last.OccursOn)
	}
}

// TestExpandMonthlyInheritsTemplateFields проверяет, что каждая запись
// наследует поля шаблона и несет период повторения.
func TestExpandMonthlyInheritsTemplateFields(t *testing.T) {
	tpl := monthlyTemplate(time.Date(2024, time.November, 10, 0, 0, 0, 0, time.Local))
	tpl.Note = "monthly rent"

	entries, err := ExpandRecurrence(tpl)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for i, entry := range entries {
		if entry.Kind != tpl.Kind || entry.Category != tpl.Category || entry.AmountCents != tpl.AmountCents || entry.Note != tpl.Note {
			t.Fatalf("entry %d does not inherit template fields: %+v", i, entry)
		}
		if entry.Recurrence == nil || *entry.Recurrence != models.RecurrenceMonthly {
			t.Fatalf("entry %d: expected monthly recurrence marker", i)
		}
	}
}

// TestExpandYearly проверяет пару записей с шагом ровно в год.
func TestExpandYearly(t *testing.T) {
	period := models.RecurrenceYearly
	tpl := models.Entry{
		Kind:        models.EntryKindIncome,
		Category:    "bonus",
		AmountCents: 50000,
		OccursOn:    time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local),
		Recurrence:  &period,
	}

	entries, err := ExpandRecurrence(tpl)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected exactly 2 entries, got %d", len(entries))
	}

	if !entries[1].OccursOn.Equal(entries[0].OccursOn.AddDate(1, 0, 0)) {
		t.Fatalf("expected second entry one year after first: %s vs %s", entries[0].OccursOn, entries[1].OccursOn)
	}
}

// TestExpandNonRecurring проверяет одиночную запись без периода.
func TestExpandNonRecurring(t *testing.T) {
	tpl := monthlyTemplate(time.Date(2024, time.April, 2, 0, 0, 0, 0, time.Local))
	tpl.Recurrence = nil

	entries, err := ExpandRecurrence(tpl)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected single entry, got %d", len(entries))
	}

	if entries[0].Recurrence != nil {
		t.Fatal("non-recurring entry must not carry a recurrence marker")
	}
}

// TestExpandRejectsInvalidTemplate проверяет контрактные ошибки шаблона.
func TestExpandRejectsInvalidTemplate(t *testing.T) {
	base := monthlyTemplate(time.Date(2024, time.April, 2, 0, 0, 0, 0, time.Local))

	cases := map[string]func(models.Entry) models.Entry{
		"missing kind":     func(e models.Entry) models.Entry { e.Kind = ""; return e },
		"missing category": func(e models.Entry) models.Entry { e.Category = ""; return e },
		"negative amount":  func(e models.Entry) models.Entry { e.AmountCents = -1; return e },
		"zero date":        func(e models.Entry) models.Entry { e.OccursOn = time.Time{}; return e },
	}

	for name, mutate := range cases {
		if _, err := ExpandRecurrence(mutate(base)); !errors.Is(err, ErrInvalidTemplate) {
			t.Fatalf("%s: expected ErrInvalidTemplate, got %v", name, err)
		}
	}
}
