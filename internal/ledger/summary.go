package ledger

import "example.com/cashcompass/backend/internal/models"

// Totals хранит агрегаты недели: доход, расход и накопления (могут
// быть отрицательными).
type Totals struct {
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	SavingsCents int64 `json:"savings_cents"`
}

// Summarize суммирует записи, попавшие в окно, по видам. Пустой вход
// дает нулевой результат.
func Summarize(entries []models.Entry, w Window) Totals {
	var totals Totals

	for _, entry := range entries {
		if !w.Contains(entry.OccursOn) {
			continue
		}

		switch entry.Kind {
		case models.EntryKindIncome:
			totals.IncomeCents += entry.AmountCents
		case models.EntryKindExpense:
			totals.ExpenseCents += entry.AmountCents
		}
	}

	totals.SavingsCents = totals.IncomeCents - totals.ExpenseCents
	return totals
}
