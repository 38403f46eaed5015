package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

func TestNewProduct(t *testing.T) {
	product, err := domain.NewProduct(uuid.Nil, domain.MustPrice("9.99"), nil)
	if err != nil {
		t.Fatalf("new product: %v", err)
	}
	if product.ID() == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if !product.IsActive() {
		t.Fatal("new product must be active")
	}

	if _, err := domain.NewProduct(uuid.Nil, domain.Price{}, nil); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestProduct_ChangePrice(t *testing.T) {
	product, err := domain.NewProduct(uuid.Nil, domain.MustPrice("10"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := product.ChangePrice(domain.MustPrice("12")); err != nil {
		t.Fatalf("change price: %v", err)
	}
	if !product.Price().Equal(domain.MustPrice("12")) {
		t.Fatalf("expected 12, got %s", product.Price())
	}

	product.Deactivate()
	if err := product.ChangePrice(domain.MustPrice("15")); !errors.Is(err, domain.ErrInactiveProduct) {
		t.Fatalf("expected ErrInactiveProduct, got %v", err)
	}

	product.Activate()
	if err := product.ChangePrice(domain.MustPrice("15")); err != nil {
		t.Fatalf("change price after activation: %v", err)
	}
}

func TestProduct_CloneIsIndependent(t *testing.T) {
	supplier := uuid.New()
	product, err := domain.NewProduct(uuid.Nil, domain.MustPrice("10"), &supplier)
	if err != nil {
		t.Fatal(err)
	}

	clone := product.Clone()
	clone.Deactivate()

	if !product.IsActive() {
		t.Fatal("clone mutation leaked into original")
	}
}
