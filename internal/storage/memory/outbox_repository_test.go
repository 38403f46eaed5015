package memory

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

func TestOutboxRepository_EnqueueAndPull(t *testing.T) {
	repo := NewOutboxRepository()

	first, err := repo.Enqueue(domain.OutboxMessage{
		AggregateType: domain.AggregateTypeOrder,
		AggregateID:   "order-1",
		EventType:     domain.EventOrderCreated,
		Payload:       []byte(`{"status":"draft"}`),
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated id")
	}
	second, err := repo.Enqueue(domain.OutboxMessage{AggregateType: domain.AggregateTypeOrder, AggregateID: "order-1", EventType: domain.EventOrderConfirmed})
	if err != nil {
		t.Fatal(err)
	}

	pending, err := repo.PullPending(10)
	if err != nil {
		t.Fatalf("pull failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending messages, got %d", len(pending))
	}
	if pending[0].ID != first.ID || pending[1].ID != second.ID {
		t.Fatal("pending messages must come in enqueue order")
	}

	limited, _ := repo.PullPending(1)
	if len(limited) != 1 || limited[0].ID != first.ID {
		t.Fatalf("unexpected limited pull: %+v", limited)
	}
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	repo := NewOutboxRepository()

	saved, err := repo.Enqueue(domain.OutboxMessage{
		AggregateType: domain.AggregateTypeOrder,
		AggregateID:   "order-2",
		EventType:     domain.EventOrderCancelled,
	})
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	stats, _ := repo.Stats()
	if stats.PendingCount != 1 || stats.OldestPendingAt.IsZero() {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if err := repo.MarkSent(saved.ID); err != nil {
		t.Fatalf("mark sent failed: %v", err)
	}
	if err := repo.MarkFailed(saved.ID); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := repo.MarkFailed("missing"); err == nil {
		t.Fatal("expected error for missing record")
	}

	stats, _ = repo.Stats()
	if stats.PendingCount != 0 || !stats.OldestPendingAt.IsZero() {
		t.Fatalf("expected empty backlog, got %+v", stats)
	}
}

func TestOutboxRepository_RejectsInvalidMessages(t *testing.T) {
	repo := NewOutboxRepository()

	if _, err := repo.Enqueue(domain.OutboxMessage{AggregateType: domain.AggregateTypeOrder}); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}

	msg := domain.OutboxMessage{ID: "fixed", AggregateID: "order-1", EventType: domain.EventOrderCreated}
	if _, err := repo.Enqueue(msg); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if _, err := repo.Enqueue(msg); err == nil {
		t.Fatal("expected error for duplicate id")
	}

	stats, _ := repo.Stats()
	if stats.PendingCount != 1 {
		t.Fatalf("expected one pending message, got %d", stats.PendingCount)
	}
}
