package notifications

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestHubPublishSubscribe проверяет доставку события подписчику.
func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	hub.Publish(userID, Event{
		Type: EventBudgetAlert,
		Data: BudgetAlert{LimitCents: 20000, ExpenseCents: 18000, Utilization: 0.9},
	})

	select {
	case event := <-ch:
		if event.Type != EventBudgetAlert {
			t.Fatalf("expected budget alert, got %s", event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("expected timestamp to be set")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event to be delivered")
	}
}

// TestHubDoesNotCrossUsers проверяет изоляцию подписок между
// пользователями.
func TestHubDoesNotCrossUsers(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe(uuid.New())
	defer unsubscribe()

	hub.Publish(uuid.New(), Event{Type: EventEntriesChanged})

	select {
	case event := <-ch:
		t.Fatalf("expected no event for another user, got %s", event.Type)
	case <-time.After(100 * time.Millisecond):
	}
}

// TestHubUnsubscribe проверяет закрытие канала после отписки.
func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}
}
