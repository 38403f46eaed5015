package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price: неизменяемая денежная сумма, строго больше нуля.
// Нулевое значение типа невалидно: получить цену можно только через NewPrice.
type Price struct {
	amount decimal.Decimal
	valid  bool
}

// NewPrice создаёт цену, отклоняя нулевые и отрицательные суммы.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, fmt.Errorf("%w: got %s", ErrInvalidValue, amount.String())
	}
	return Price{amount: amount, valid: true}, nil
}

// PriceFromString разбирает десятичную строку ("19.90") и создаёт цену.
func PriceFromString(value string) (Price, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q is not a decimal", ErrInvalidValue, value)
	}
	return NewPrice(amount)
}

// MustPrice: вариант PriceFromString для констант и тестов; паникует на невалидной сумме.
func MustPrice(value string) Price {
	price, err := PriceFromString(value)
	if err != nil {
		panic(err)
	}
	return price
}

// Amount возвращает сумму.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// IsValid сообщает, что цена создана через конструктор.
func (p Price) IsValid() bool {
	return p.valid
}

// Equal сравнивает цены по сумме: 10 и 10.00 равны.
func (p Price) Equal(other Price) bool {
	return p.valid == other.valid && p.amount.Equal(other.amount)
}

// Cmp возвращает -1, 0 или 1.
func (p Price) Cmp(other Price) int {
	return p.amount.Cmp(other.amount)
}

// Times умножает цену на количество.
func (p Price) Times(qty int) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(int64(qty)))
}

func (p Price) String() string {
	return p.amount.String()
}
