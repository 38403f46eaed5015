package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine: позиция заказа: товар, количество и цена за единицу на момент добавления.
// Значение неизменяемо; смена количества создаёт новую позицию.
type OrderLine struct {
	productID uuid.UUID
	quantity  int
	unitPrice Price
}

// NewOrderLine проверяет инварианты позиции.
func NewOrderLine(productID uuid.UUID, quantity int, unitPrice Price) (OrderLine, error) {
	if productID == uuid.Nil {
		return OrderLine{}, fmt.Errorf("%w: product id is required", ErrInvalidLine)
	}
	if quantity <= 0 {
		return OrderLine{}, fmt.Errorf("%w: quantity must be greater than zero, got %d", ErrInvalidLine, quantity)
	}
	if !unitPrice.IsValid() {
		return OrderLine{}, fmt.Errorf("%w: unit price is not set", ErrInvalidLine)
	}
	return OrderLine{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l OrderLine) ProductID() uuid.UUID { return l.productID }
func (l OrderLine) Quantity() int        { return l.quantity }
func (l OrderLine) UnitPrice() Price     { return l.unitPrice }

// LineTotal = цена за единицу × количество, без округления.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.unitPrice.Times(l.quantity)
}

func (l OrderLine) withQuantity(quantity int) (OrderLine, error) {
	return NewOrderLine(l.productID, quantity, l.unitPrice)
}
