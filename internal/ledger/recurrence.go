package ledger

import (
	"errors"
	"fmt"
	"time"

	"example.com/cashcompass/backend/internal/models"
)

// ErrInvalidTemplate возвращается при нарушении контракта: шаблон
// обязан приходить провалидированным, недостающее поле считается
// ошибкой вызывающего.
var ErrInvalidTemplate = errors.New("invalid entry template")

// ExpandRecurrence материализует конечный набор конкретных записей из
// шаблона. Без повторения получается одна запись на дату шаблона;
// monthly дает по записи на каждый месяц с месяца шаблона по декабрь
// того же года; yearly дает ровно две записи с шагом в год. Это
// разовая партия при создании, а не продолжающаяся серия.
func ExpandRecurrence(tpl models.Entry) ([]models.Entry, error) {
	if err := validateTemplate(tpl); err != nil {
		return nil, err
	}

	if tpl.Recurrence == nil {
		return []models.Entry{concrete(tpl, tpl.OccursOn, nil)}, nil
	}

	switch period := *tpl.Recurrence; period {
	case models.RecurrenceMonthly:
		return expandMonthly(tpl, period), nil
	case models.RecurrenceYearly:
		start := tpl.OccursOn
		return []models.Entry{
			concrete(tpl, start, &period),
			concrete(tpl, start.AddDate(1, 0, 0), &period),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown recurrence period %q", ErrInvalidTemplate, period)
	}
}

// expandMonthly раскладывает шаблон по месяцам до конца года шаблона.
// Месяц без нужного числа (31-е в апреле и т.п.) пропускается, а не
// переносится на соседнюю дату.
func expandMonthly(tpl models.Entry, period models.RecurrencePeriod) []models.Entry {
	start := tpl.OccursOn
	year := start.Year()
	day := start.Day()

	entries := make([]models.Entry, 0, int(time.December-start.Month())+1)
	for month := start.Month(); month <= time.December; month++ {
		if day > daysInMonth(year, month) {
			continue
		}

		occursOn := time.Date(year, month, day, 0, 0, 0, 0, start.Location())
		entries = append(entries, concrete(tpl, occursOn, &period))
	}

	return entries
}

func concrete(tpl models.Entry, occursOn time.Time, period *models.RecurrencePeriod) models.Entry {
	entry := tpl
	entry.OccursOn = occursOn
	entry.Recurrence = nil
	if period != nil {
		p := *period
		entry.Recurrence = &p
	}

	return entry
}

func validateTemplate(tpl models.Entry) error {
	switch tpl.Kind {
	case models.EntryKindIncome, models.EntryKindExpense:
	default:
		return fmt.Errorf("%w: kind is required", ErrInvalidTemplate)
	}

	if tpl.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidTemplate)
	}

	if tpl.AmountCents < 0 {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidTemplate)
	}

	if tpl.OccursOn.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidTemplate)
	}

	return nil
}

// daysInMonth возвращает число дней в месяце: нулевой день следующего
// месяца нормализуется в последний день текущего.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
