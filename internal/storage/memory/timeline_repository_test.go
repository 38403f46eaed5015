package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/storage/memory"
)

func TestTimelineRepository_AppendList(t *testing.T) {
	repo := memory.NewTimelineRepository()
	now := time.Now().UTC()

	events := []domain.TimelineEvent{
		{OrderID: "o-1", Type: domain.EventOrderConfirmed, Occurred: now.Add(time.Second)},
		{OrderID: "o-1", Type: domain.EventOrderCreated, Occurred: now},
		{OrderID: "o-1", Type: domain.EventOrderLineAdded, Occurred: now},
		{OrderID: "o-2", Type: domain.EventOrderCreated},
	}
	for _, e := range events {
		if err := repo.Append(e); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	got, err := repo.List("o-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{domain.EventOrderCreated, domain.EventOrderLineAdded, domain.EventOrderConfirmed}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Type != want[i] {
			t.Fatalf("event %d: expected %s, got %s", i, want[i], got[i].Type)
		}
	}

	other, _ := repo.List("o-2")
	if len(other) != 1 || other[0].Occurred.IsZero() {
		t.Fatalf("expected one event with occurred set, got %+v", other)
	}
}

func TestTimelineRepository_RejectsIncompleteEvent(t *testing.T) {
	repo := memory.NewTimelineRepository()

	if err := repo.Append(domain.TimelineEvent{Type: domain.EventOrderCreated}); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for missing order id, got %v", err)
	}
	if err := repo.Append(domain.TimelineEvent{OrderID: "o-1"}); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for missing type, got %v", err)
	}

	got, err := repo.List("o-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty journal, got %+v", got)
	}
}
