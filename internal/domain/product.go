package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Product: товар каталога. Заказы читают только цену и флаг активности.
type Product struct {
	id         uuid.UUID
	price      Price
	active     bool
	supplierID *uuid.UUID
}

// NewProduct создаёт активный товар. Пустой id заменяется сгенерированным.
func NewProduct(id uuid.UUID, price Price, supplierID *uuid.UUID) (*Product, error) {
	if !price.IsValid() {
		return nil, fmt.Errorf("%w: product price is not set", ErrInvalidValue)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Product{id: id, price: price, active: true, supplierID: copyID(supplierID)}, nil
}

// RehydrateProduct восстанавливает товар из сохранённых полей.
func RehydrateProduct(id uuid.UUID, price Price, active bool, supplierID *uuid.UUID) (*Product, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: product id is empty", ErrInvalidSnapshot)
	}
	if !price.IsValid() {
		return nil, fmt.Errorf("%w: product %s: %w", ErrInvalidSnapshot, id, ErrInvalidValue)
	}
	return &Product{id: id, price: price, active: active, supplierID: copyID(supplierID)}, nil
}

func (p *Product) ID() uuid.UUID          { return p.id }
func (p *Product) Price() Price           { return p.price }
func (p *Product) IsActive() bool         { return p.active }
func (p *Product) SupplierID() *uuid.UUID { return copyID(p.supplierID) }

// ChangePrice меняет цену; неактивный товар не переоценивается.
func (p *Product) ChangePrice(price Price) error {
	if !p.active {
		return fmt.Errorf("%w: product %s", ErrInactiveProduct, p.id)
	}
	if !price.IsValid() {
		return fmt.Errorf("%w: product price is not set", ErrInvalidValue)
	}
	p.price = price
	return nil
}

func (p *Product) Activate()   { p.active = true }
func (p *Product) Deactivate() { p.active = false }

// Clone возвращает независимую копию (in-memory хранилище не отдаёт свои экземпляры наружу).
func (p *Product) Clone() *Product {
	c := *p
	c.supplierID = copyID(p.supplierID)
	return &c
}
