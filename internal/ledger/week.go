package ledger

import "time"

// Window задает полуинтервал [Start, End) календарной недели.
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekWindow возвращает границы календарной недели для момента ref.
// Неделя начинается в воскресенье в локальную полночь; weeksAgo = 0
// дает текущую неделю, 1 предыдущую. Конец предыдущей недели всегда
// совпадает с началом следующей, отдельного "конца недели" нет.
func WeekWindow(ref time.Time, weeksAgo int) Window {
	year, month, day := ref.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())

	start := midnight.AddDate(0, 0, -int(midnight.Weekday())-7*weeksAgo)
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 7),
	}
}

// Contains сообщает, попадает ли момент t в полуинтервал окна.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
