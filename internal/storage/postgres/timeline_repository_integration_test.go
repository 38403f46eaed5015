package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

func TestTimelineRepository_PostgresAppendAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	timelineRepo := NewTimelineRepository(store)

	orderID := uuid.NewString()
	occurred := time.Now().UTC().Add(-time.Minute).Round(time.Microsecond)

	if err := timelineRepo.Append(domain.TimelineEvent{
		OrderID:  orderID,
		Type:     domain.EventOrderCreated,
		Occurred: occurred,
	}); err != nil {
		t.Fatalf("append created: %v", err)
	}

	// Нулевое время заполняется текущим.
	if err := timelineRepo.Append(domain.TimelineEvent{
		OrderID: orderID,
		Type:    domain.EventOrderCancelled,
		Reason:  "customer request",
	}); err != nil {
		t.Fatalf("append cancelled: %v", err)
	}

	events, err := timelineRepo.List(orderID)
	if err != nil {
		t.Fatalf("list timeline events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 timeline events, got %d", len(events))
	}
	if events[0].Type != domain.EventOrderCreated || events[1].Type != domain.EventOrderCancelled {
		t.Fatalf("unexpected order of events: %+v", events)
	}
	if events[1].Reason != "customer request" || events[1].Occurred.IsZero() {
		t.Fatalf("unexpected cancel event: %+v", events[1])
	}

	empty, err := timelineRepo.List(uuid.NewString())
	if err != nil {
		t.Fatalf("list unknown order: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no events, got %d", len(empty))
	}

	if err := timelineRepo.Append(domain.TimelineEvent{OrderID: orderID}); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for missing type, got %v", err)
	}
}
