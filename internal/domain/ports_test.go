package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

func TestNewOutboxMessage(t *testing.T) {
	msg, err := domain.NewOutboxMessage(domain.AggregateTypeOrder, "order-1", domain.EventOrderCreated,
		map[string]string{"status": "draft"})
	if err != nil {
		t.Fatalf("new outbox message: %v", err)
	}
	if msg.ID != "" {
		t.Fatalf("id must be assigned by the repository, got %q", msg.ID)
	}
	if msg.AggregateID != "order-1" || msg.EventType != domain.EventOrderCreated {
		t.Fatalf("unexpected routing fields: %+v", msg)
	}

	var payload map[string]string
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatalf("payload must be JSON: %v", err)
	}
	if payload["status"] != "draft" {
		t.Fatalf("unexpected payload: %s", msg.Payload)
	}

	if _, err := domain.NewOutboxMessage(domain.AggregateTypeOrder, "order-1", domain.EventOrderCreated, make(chan int)); err == nil {
		t.Fatal("expected encode error")
	}
}
