package ledger

// NotifyThreshold задает долю потолка, после которой пользователь
// получает одноразовое уведомление о приближении к лимиту.
const NotifyThreshold = 0.9

// Evaluation описывает результат проверки бюджета. ShouldNotify срабатывает
// только на восходящем фронте: повторные вызовы после первого
// пересечения возвращают false, пока потолок не будет изменен.
type Evaluation struct {
	Utilization  float64
	ShouldNotify bool
	Notified     bool
}

// EvaluateBudget вычисляет долю израсходованного потолка и флаг
// уведомления. Нулевой потолок дает нулевую утилизацию.
func EvaluateBudget(limitCents, expenseCents int64, alreadyNotified bool) Evaluation {
	var utilization float64
	if limitCents > 0 {
		utilization = float64(expenseCents) / float64(limitCents)
	}

	shouldNotify := utilization >= NotifyThreshold && !alreadyNotified
	return Evaluation{
		Utilization:  utilization,
		ShouldNotify: shouldNotify,
		Notified:     alreadyNotified || shouldNotify,
	}
}
