package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineSnapshot: плоское представление позиции для хранилищ.
type LineSnapshot struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// OrderSnapshot: плоское представление заказа, из которого хранилища
// восстанавливают агрегат через RehydrateOrder.
type OrderSnapshot struct {
	ID         uuid.UUID
	CustomerID *uuid.UUID
	Status     OrderStatus
	Lines      []LineSnapshot
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Snapshot копирует состояние заказа.
func (o *Order) Snapshot() OrderSnapshot {
	lines := make([]LineSnapshot, 0, len(o.lines))
	for _, line := range o.lines {
		lines = append(lines, LineSnapshot{
			ProductID: line.productID,
			Quantity:  line.quantity,
			UnitPrice: line.unitPrice.Amount(),
		})
	}
	return OrderSnapshot{
		ID:         o.id,
		CustomerID: copyID(o.customerID),
		Status:     o.status,
		Lines:      lines,
		Version:    o.version,
		CreatedAt:  o.createdAt,
		UpdatedAt:  o.updatedAt,
	}
}

// RehydrateOrder восстанавливает заказ из сохранённых полей, проверяя все инварианты.
func RehydrateOrder(s OrderSnapshot) (*Order, error) {
	if s.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: order id is empty", ErrInvalidSnapshot)
	}
	if !s.Status.Valid() {
		return nil, fmt.Errorf("%w: order %s has unknown status %q", ErrInvalidSnapshot, s.ID, s.Status)
	}
	if s.CreatedAt.IsZero() {
		return nil, fmt.Errorf("%w: order %s has no created_at", ErrInvalidSnapshot, s.ID)
	}
	if s.Status == OrderStatusConfirmed && len(s.Lines) == 0 {
		return nil, fmt.Errorf("%w: confirmed order %s has no lines: %w", ErrInvalidSnapshot, s.ID, ErrEmptyOrder)
	}

	lines := make([]OrderLine, 0, len(s.Lines))
	seen := make(map[uuid.UUID]struct{}, len(s.Lines))
	for _, ls := range s.Lines {
		price, err := NewPrice(ls.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: order %s: %w", ErrInvalidSnapshot, s.ID, err)
		}
		line, err := NewOrderLine(ls.ProductID, ls.Quantity, price)
		if err != nil {
			return nil, fmt.Errorf("%w: order %s: %w", ErrInvalidSnapshot, s.ID, err)
		}
		if _, dup := seen[ls.ProductID]; dup {
			return nil, fmt.Errorf("%w: order %s: %w", ErrInvalidSnapshot, s.ID, ErrDuplicateLine)
		}
		seen[ls.ProductID] = struct{}{}
		lines = append(lines, line)
	}

	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = s.CreatedAt
	}

	return &Order{
		id:         s.ID,
		customerID: copyID(s.CustomerID),
		status:     s.Status,
		lines:      lines,
		version:    s.Version,
		createdAt:  s.CreatedAt.UTC(),
		updatedAt:  updatedAt.UTC(),
	}, nil
}
