package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

func TestRehydrateOrder_RoundTrip(t *testing.T) {
	customer := uuid.New()
	order := domain.NewOrder(uuid.Nil, &customer)
	p1, p2 := uuid.New(), uuid.New()
	if err := order.AddLine(p1, 2, domain.MustPrice("10")); err != nil {
		t.Fatal(err)
	}
	if err := order.AddLine(p2, 1, domain.MustPrice("2.50")); err != nil {
		t.Fatal(err)
	}
	if err := order.Confirm(); err != nil {
		t.Fatal(err)
	}
	order.SetVersion(4)

	restored, err := domain.RehydrateOrder(order.Snapshot())
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}

	if restored.ID() != order.ID() || restored.Status() != order.Status() || restored.Version() != 4 {
		t.Fatalf("identity/status/version mismatch: %+v", restored.Snapshot())
	}
	if !restored.Total().Equal(order.Total()) {
		t.Fatalf("total mismatch: %s vs %s", restored.Total(), order.Total())
	}
	lines := restored.Lines()
	if len(lines) != 2 || lines[0].ProductID() != p1 || lines[1].ProductID() != p2 {
		t.Fatalf("unexpected lines: %+v", restored.Snapshot().Lines)
	}
	if got := restored.CustomerID(); got == nil || *got != customer {
		t.Fatal("customer mismatch")
	}
}

func TestRehydrateOrder_Invalid(t *testing.T) {
	valid := func() domain.OrderSnapshot {
		return domain.OrderSnapshot{
			ID:        uuid.New(),
			Status:    domain.OrderStatusDraft,
			CreatedAt: time.Now().UTC(),
			Lines: []domain.LineSnapshot{
				{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
			},
		}
	}

	cases := []struct {
		name string
		mut  func(s *domain.OrderSnapshot)
	}{
		{name: "nil id", mut: func(s *domain.OrderSnapshot) { s.ID = uuid.Nil }},
		{name: "unknown status", mut: func(s *domain.OrderSnapshot) { s.Status = "paid" }},
		{name: "no created_at", mut: func(s *domain.OrderSnapshot) { s.CreatedAt = time.Time{} }},
		{name: "zero price", mut: func(s *domain.OrderSnapshot) { s.Lines[0].UnitPrice = decimal.Zero }},
		{name: "zero qty", mut: func(s *domain.OrderSnapshot) { s.Lines[0].Quantity = 0 }},
		{name: "duplicate product", mut: func(s *domain.OrderSnapshot) { s.Lines = append(s.Lines, s.Lines[0]) }},
		{name: "confirmed empty", mut: func(s *domain.OrderSnapshot) {
			s.Status = domain.OrderStatusConfirmed
			s.Lines = nil
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := valid()
			tc.mut(&snap)
			if _, err := domain.RehydrateOrder(snap); !errors.Is(err, domain.ErrInvalidSnapshot) {
				t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
			}
		})
	}
}
