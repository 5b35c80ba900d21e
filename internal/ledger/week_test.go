package ledger

import (
	"testing"
	"time"
)

// TestWeekWindowStartsOnSunday проверяет, что окно начинается в воскресенье
// в локальную полночь для любого дня недели.
func TestWeekWindowStartsOnSunday(t *testing.T) {
	for day := 1; day <= 14; day++ {
		ref := time.Date(2024, time.July, day, 13, 45, 12, 0, time.Local)
		window := WeekWindow(ref, 0)

		if window.Start.Weekday() != time.Sunday {
			t.Fatalf("day %d: expected Sunday start, got %s", day, window.Start.Weekday())
		}

		hour, minute, second := window.Start.Clock()
		if hour != 0 || minute != 0 || second != 0 {
			t.Fatalf("day %d: expected midnight start, got %s", day, window.Start)
		}

		if !window.Contains(ref) {
			t.Fatalf("day %d: reference instant must fall inside its own week", day)
		}
	}
}

// TestWeekWindowPreviousWeek проверяет, что прошлая неделя начинается
// ровно на 7 дней раньше и примыкает к текущей без зазора.
func TestWeekWindowPreviousWeek(t *testing.T) {
	ref := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.Local)

	current := WeekWindow(ref, 0)
	previous := WeekWindow(ref, 1)

	if !previous.Start.Equal(current.Start.AddDate(0, 0, -7)) {
		t.Fatalf("expected previous start %s, got %s", current.Start.AddDate(0, 0, -7), previous.Start)
	}

	if !previous.End.Equal(current.Start) {
		t.Fatalf("previous week end %s must equal current week start %s", previous.End, current.Start)
	}
}

// TestWindowContainsBoundaries проверяет полуинтервальную семантику окна.
func TestWindowContainsBoundaries(t *testing.T) {
	window := WeekWindow(time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local), 0)

	if !window.Contains(window.Start) {
		t.Fatal("window start must be included")
	}

	if window.Contains(window.End) {
		t.Fatal("window end must be excluded")
	}

	if window.Contains(window.Start.Add(-time.Millisecond)) {
		t.Fatal("instant before start must be excluded")
	}

	if !window.Contains(window.End.Add(-time.Millisecond)) {
		t.Fatal("last instant of the week must be included")
	}
}

// TestWeekWindowOnSunday проверяет якорение, когда точка отсчета уже
// воскресенье.
func TestWeekWindowOnSunday(t *testing.T) {
	sunday := time.Date(2024, time.June, 2, 18, 30, 0, 0, time.Local)
	window := WeekWindow(sunday, 0)

	want := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.Local)
	if !window.Start.Equal(want) {
		t.Fatalf("expected start %s, got %s", want, window.Start)
	}
}
