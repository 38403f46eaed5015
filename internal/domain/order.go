package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusDraft: черновик, единственное изменяемое состояние.
	OrderStatusDraft OrderStatus = "draft"
	// OrderStatusConfirmed: заказ подтверждён, позиции зафиксированы.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusCancelled: заказ отменён, конечное состояние.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid сообщает, что статус входит в известный набор.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CancelPolicy определяет, можно ли отменить уже подтверждённый заказ.
type CancelPolicy string

const (
	// CancelAllowConfirmed разрешает отмену из любого неотменённого состояния.
	CancelAllowConfirmed CancelPolicy = "allow_confirmed"
	// CancelDraftOnly разрешает отмену только черновика.
	CancelDraftOnly CancelPolicy = "draft_only"
)

// ParseCancelPolicy разбирает значение из конфигурации; пустая строка означает политику по умолчанию.
func ParseCancelPolicy(value string) (CancelPolicy, error) {
	switch CancelPolicy(value) {
	case "":
		return CancelAllowConfirmed, nil
	case CancelAllowConfirmed, CancelDraftOnly:
		return CancelPolicy(value), nil
	default:
		return "", fmt.Errorf("unknown cancel policy %q", value)
	}
}

// Order: корень агрегата: статус, позиции и сумма заказа.
// Экземпляр не потокобезопасен; конкурентный доступ разрешается хранилищем через Version.
type Order struct {
	id         uuid.UUID
	customerID *uuid.UUID
	status     OrderStatus
	lines      []OrderLine
	version    int64
	createdAt  time.Time
	updatedAt  time.Time
}

// NewOrder создаёт черновик без позиций. Пустой id заменяется сгенерированным.
func NewOrder(id uuid.UUID, customerID *uuid.UUID) *Order {
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()
	return &Order{
		id:         id,
		customerID: copyID(customerID),
		status:     OrderStatusDraft,
		createdAt:  now,
		updatedAt:  now,
	}
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) Status() OrderStatus    { return o.status }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
func (o *Order) Version() int64         { return o.version }
func (o *Order) CustomerID() *uuid.UUID { return copyID(o.customerID) }

// Lines возвращает копию позиций в порядке добавления.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Line возвращает позицию по товару.
func (o *Order) Line(productID uuid.UUID) (OrderLine, bool) {
	idx := o.lineIndex(productID)
	if idx < 0 {
		return OrderLine{}, false
	}
	return o.lines[idx], true
}

// Total: сумма всех позиций; 0 для пустого заказа.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// IsMutable сообщает, можно ли редактировать заказ.
func (o *Order) IsMutable() bool {
	return o.status == OrderStatusDraft
}

// AddLine добавляет позицию. Вторая позиция для того же товара отклоняется.
func (o *Order) AddLine(productID uuid.UUID, quantity int, unitPrice Price) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	line, err := NewOrderLine(productID, quantity, unitPrice)
	if err != nil {
		return err
	}
	if o.lineIndex(productID) >= 0 {
		return fmt.Errorf("%w: product %s", ErrDuplicateLine, productID)
	}
	o.lines = append(o.lines, line)
	o.touch()
	return nil
}

// RemoveLine удаляет позицию товара.
func (o *Order) RemoveLine(productID uuid.UUID) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	idx := o.lineIndex(productID)
	if idx < 0 {
		return fmt.Errorf("%w: product %s", ErrLineNotFound, productID)
	}
	o.lines = append(o.lines[:idx], o.lines[idx+1:]...)
	o.touch()
	return nil
}

// ChangeQuantity заменяет позицию новой с тем же товаром и ценой.
func (o *Order) ChangeQuantity(productID uuid.UUID, newQuantity int) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	if newQuantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, newQuantity)
	}
	idx := o.lineIndex(productID)
	if idx < 0 {
		return fmt.Errorf("%w: product %s", ErrLineNotFound, productID)
	}
	line, err := o.lines[idx].withQuantity(newQuantity)
	if err != nil {
		return err
	}
	o.lines[idx] = line
	o.touch()
	return nil
}

// SetCustomer меняет клиента черновика; nil снимает привязку.
func (o *Order) SetCustomer(customerID *uuid.UUID) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}
	o.customerID = copyID(customerID)
	o.touch()
	return nil
}

// Confirm переводит непустой черновик в Confirmed.
func (o *Order) Confirm() error {
	if len(o.lines) == 0 {
		return ErrEmptyOrder
	}
	if o.status != OrderStatusDraft {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, OrderStatusConfirmed)
	}
	o.status = OrderStatusConfirmed
	o.touch()
	return nil
}

// Cancel отменяет заказ. Повторная отмена ничего не меняет.
// Отмена подтверждённого заказа зависит от policy.
func (o *Order) Cancel(policy CancelPolicy) error {
	if o.status == OrderStatusCancelled {
		return nil
	}
	if o.status == OrderStatusConfirmed && policy == CancelDraftOnly {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, OrderStatusCancelled)
	}
	o.status = OrderStatusCancelled
	o.touch()
	return nil
}

// SetVersion вызывается хранилищем после успешной записи.
func (o *Order) SetVersion(version int64) {
	o.version = version
}

func (o *Order) ensureMutable() error {
	if o.status != OrderStatusDraft {
		return fmt.Errorf("%w: status is %s", ErrNotMutable, o.status)
	}
	return nil
}

func (o *Order) lineIndex(productID uuid.UUID) int {
	for i, line := range o.lines {
		if line.productID == productID {
			return i
		}
	}
	return -1
}

func (o *Order) touch() {
	now := time.Now().UTC()
	if now.Before(o.updatedAt) {
		now = o.updatedAt
	}
	o.updatedAt = now
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
