package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// helper для создания черновика с одной позицией.
func makeOrder(t *testing.T) (*domain.Order, uuid.UUID) {
	t.Helper()
	order := domain.NewOrder(uuid.Nil, nil)
	productID := uuid.New()
	if err := order.AddLine(productID, 1, domain.MustPrice("15")); err != nil {
		t.Fatalf("add line: %v", err)
	}
	return order, productID
}

func requireTotal(t *testing.T, order *domain.Order, want string) {
	t.Helper()
	if !order.Total().Equal(decimal.RequireFromString(want)) {
		t.Fatalf("expected total %s, got %s", want, order.Total())
	}
}

func TestNewOrder_Defaults(t *testing.T) {
	order := domain.NewOrder(uuid.Nil, nil)

	if order.ID() == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if order.Status() != domain.OrderStatusDraft {
		t.Fatalf("expected draft, got %s", order.Status())
	}
	if len(order.Lines()) != 0 {
		t.Fatalf("expected no lines, got %d", len(order.Lines()))
	}
	if !order.Total().IsZero() {
		t.Fatalf("expected zero total, got %s", order.Total())
	}
	if order.CreatedAt().IsZero() {
		t.Fatal("expected created_at to be set")
	}
	if order.CustomerID() != nil {
		t.Fatal("expected no customer")
	}
}

func TestNewOrder_KeepsGivenIdentity(t *testing.T) {
	id := uuid.New()
	customer := uuid.New()
	order := domain.NewOrder(id, &customer)

	if order.ID() != id {
		t.Fatalf("expected id %s, got %s", id, order.ID())
	}
	if got := order.CustomerID(); got == nil || *got != customer {
		t.Fatalf("expected customer %s, got %v", customer, got)
	}
}

func TestOrder_AddLineUpdatesTotal(t *testing.T) {
	order := domain.NewOrder(uuid.Nil, nil)
	if err := order.AddLine(uuid.New(), 2, domain.MustPrice("10")); err != nil {
		t.Fatalf("add line: %v", err)
	}

	requireTotal(t, order, "20")
	if len(order.Lines()) != 1 {
		t.Fatalf("expected 1 line, got %d", len(order.Lines()))
	}
}

func TestOrder_AddLineRejectsDuplicateProduct(t *testing.T) {
	order, productID := makeOrder(t)

	err := order.AddLine(productID, 2, domain.MustPrice("20"))
	if !errors.Is(err, domain.ErrDuplicateLine) {
		t.Fatalf("expected ErrDuplicateLine, got %v", err)
	}
	requireTotal(t, order, "15")
}

func TestOrder_AddLineInvalid(t *testing.T) {
	order := domain.NewOrder(uuid.Nil, nil)
	if err := order.AddLine(uuid.New(), 0, domain.MustPrice("1")); !errors.Is(err, domain.ErrInvalidLine) {
		t.Fatalf("expected ErrInvalidLine, got %v", err)
	}
	if len(order.Lines()) != 0 {
		t.Fatal("invalid line must not be added")
	}
}

func TestOrder_ChangeQuantity(t *testing.T) {
	order, productID := makeOrder(t)

	if err := order.ChangeQuantity(productID, 3); err != nil {
		t.Fatalf("change quantity: %v", err)
	}
	requireTotal(t, order, "45")

	line, ok := order.Line(productID)
	if !ok {
		t.Fatal("line disappeared")
	}
	if line.Quantity() != 3 || !line.UnitPrice().Equal(domain.MustPrice("15")) {
		t.Fatalf("unexpected line after change: qty=%d price=%s", line.Quantity(), line.UnitPrice())
	}
}

func TestOrder_ChangeQuantityKeepsPosition(t *testing.T) {
	order := domain.NewOrder(uuid.Nil, nil)
	first, second := uuid.New(), uuid.New()
	if err := order.AddLine(first, 1, domain.MustPrice("1")); err != nil {
		t.Fatal(err)
	}
	if err := order.AddLine(second, 1, domain.MustPrice("2")); err != nil {
		t.Fatal(err)
	}

	if err := order.ChangeQuantity(first, 5); err != nil {
		t.Fatal(err)
	}

	lines := order.Lines()
	if lines[0].ProductID() != first || lines[1].ProductID() != second {
		t.Fatal("line order must be stable after quantity change")
	}
}

func TestOrder_ChangeQuantityErrors(t *testing.T) {
	order, productID := makeOrder(t)

	if err := order.ChangeQuantity(productID, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := order.ChangeQuantity(uuid.New(), 2); !errors.Is(err, domain.ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
	requireTotal(t, order, "15")
}

func TestOrder_RemoveLine(t *testing.T) {
	order, productID := makeOrder(t)

	if err := order.RemoveLine(uuid.New()); !errors.Is(err, domain.ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
	if err := order.RemoveLine(productID); err != nil {
		t.Fatalf("remove line: %v", err)
	}
	if len(order.Lines()) != 0 {
		t.Fatal("expected no lines")
	}
	requireTotal(t, order, "0")
}

func TestOrder_Confirm(t *testing.T) {
	empty := domain.NewOrder(uuid.Nil, nil)
	if err := empty.Confirm(); !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}

	order, _ := makeOrder(t)
	if err := order.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if order.Status() != domain.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", order.Status())
	}
	if err := order.Confirm(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on second confirm, got %v", err)
	}
}

func TestOrder_EditsRequireDraft(t *testing.T) {
	states := map[string]func(o *domain.Order) error{
		"confirmed": func(o *domain.Order) error { return o.Confirm() },
		"cancelled": func(o *domain.Order) error { return o.Cancel(domain.CancelAllowConfirmed) },
	}

	for name, transition := range states {
		t.Run(name, func(t *testing.T) {
			order, productID := makeOrder(t)
			if err := transition(order); err != nil {
				t.Fatalf("transition: %v", err)
			}

			edits := map[string]error{
				"add":    order.AddLine(uuid.New(), 1, domain.MustPrice("1")),
				"remove": order.RemoveLine(productID),
				"change": order.ChangeQuantity(productID, 2),
				"cust":   order.SetCustomer(nil),
			}
			for edit, err := range edits {
				if !errors.Is(err, domain.ErrNotMutable) {
					t.Fatalf("%s: expected ErrNotMutable, got %v", edit, err)
				}
			}
			requireTotal(t, order, "15")
		})
	}
}

func TestOrder_CancelIsIdempotent(t *testing.T) {
	order, _ := makeOrder(t)

	if err := order.Cancel(domain.CancelAllowConfirmed); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if err := order.Cancel(domain.CancelDraftOnly); err != nil {
		t.Fatalf("second cancel must be a no-op, got %v", err)
	}
	if order.Status() != domain.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", order.Status())
	}
}

func TestOrder_CancelConfirmedDependsOnPolicy(t *testing.T) {
	allowed, _ := makeOrder(t)
	if err := allowed.Confirm(); err != nil {
		t.Fatal(err)
	}
	if err := allowed.Cancel(domain.CancelAllowConfirmed); err != nil {
		t.Fatalf("expected cancel to be allowed, got %v", err)
	}

	forbidden, _ := makeOrder(t)
	if err := forbidden.Confirm(); err != nil {
		t.Fatal(err)
	}
	if err := forbidden.Cancel(domain.CancelDraftOnly); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if forbidden.Status() != domain.OrderStatusConfirmed {
		t.Fatalf("status must stay confirmed, got %s", forbidden.Status())
	}
}

func TestOrder_ConfirmAfterCancel(t *testing.T) {
	order, _ := makeOrder(t)
	if err := order.Cancel(domain.CancelAllowConfirmed); err != nil {
		t.Fatal(err)
	}
	if err := order.Confirm(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestOrder_SetCustomer(t *testing.T) {
	order := domain.NewOrder(uuid.Nil, nil)
	customer := uuid.New()

	if err := order.SetCustomer(&customer); err != nil {
		t.Fatal(err)
	}
	customer = uuid.New()
	if got := order.CustomerID(); got == nil || *got == customer {
		t.Fatal("order must keep its own copy of customer id")
	}
}

func TestOrder_LinesReturnsCopy(t *testing.T) {
	order, _ := makeOrder(t)
	lines := order.Lines()
	lines[0] = domain.OrderLine{}

	if order.Lines()[0].Quantity() != 1 {
		t.Fatal("mutating returned slice must not affect the order")
	}
}

func TestParseCancelPolicy(t *testing.T) {
	cases := map[string]domain.CancelPolicy{
		"":                domain.CancelAllowConfirmed,
		"allow_confirmed": domain.CancelAllowConfirmed,
		"draft_only":      domain.CancelDraftOnly,
	}
	for in, want := range cases {
		got, err := domain.ParseCancelPolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseCancelPolicy(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := domain.ParseCancelPolicy("never"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
