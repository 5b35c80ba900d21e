package ledger

import "testing"

// TestEvaluateBudgetBelowThreshold проверяет отсутствие уведомления до
// порога.
func TestEvaluateBudgetBelowThreshold(t *testing.T) {
	eval := EvaluateBudget(100, 89, false)

	if eval.Utilization != 0.89 {
		t.Fatalf("expected utilization 0.89, got %v", eval.Utilization)
	}
	if eval.ShouldNotify {
		t.Fatal("expected no notification below threshold")
	}
	if eval.Notified {
		t.Fatal("expected notified state to stay false")
	}
}

// TestEvaluateBudgetCrossesThreshold проверяет срабатывание на
// восходящем фронте.
func TestEvaluateBudgetCrossesThreshold(t *testing.T) {
	eval := EvaluateBudget(100, 95, false)

	if eval.Utilization != 0.95 {
		t.Fatalf("expected utilization 0.95, got %v", eval.Utilization)
	}
	if !eval.ShouldNotify {
		t.Fatal("expected notification on first crossing")
	}
	if !eval.Notified {
		t.Fatal("expected notified state to latch")
	}
}

// TestEvaluateBudgetNoRepeatNotification проверяет подавление повторных
// уведомлений до сброса потолка.
func TestEvaluateBudgetNoRepeatNotification(t *testing.T) {
	eval := EvaluateBudget(100, 95, true)

	if eval.ShouldNotify {
		t.Fatal("expected no repeat notification")
	}
	if !eval.Notified {
		t.Fatal("expected notified state to remain latched")
	}
}

// TestEvaluateBudgetZeroLimit проверяет защиту от деления на ноль.
func TestEvaluateBudgetZeroLimit(t *testing.T) {
	eval := EvaluateBudget(0, 50, false)

	if eval.Utilization != 0 {
		t.Fatalf("expected zero utilization for zero limit, got %v", eval.Utilization)
	}
	if eval.ShouldNotify {
		t.Fatal("expected no notification for zero limit")
	}
}

// TestEvaluateBudgetExactThreshold проверяет включительность порога.
func TestEvaluateBudgetExactThreshold(t *testing.T) {
	eval := EvaluateBudget(200, 180, false)

	if eval.Utilization != 0.9 {
		t.Fatalf("expected utilization 0.9, got %v", eval.Utilization)
	}
	if !eval.ShouldNotify {
		t.Fatal("expected notification at exactly the threshold")
	}
}
