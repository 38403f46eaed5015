package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

func TestNewPrice(t *testing.T) {
	cases := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "integer", amount: "10"},
		{name: "cents", amount: "0.01"},
		{name: "large", amount: "123456789.99"},
		{name: "zero", amount: "0", wantErr: true},
		{name: "negative", amount: "-5", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			price, err := domain.NewPrice(amount)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidValue) {
					t.Fatalf("expected ErrInvalidValue, got %v", err)
				}
				if price.IsValid() {
					t.Fatal("failed construction must not return a valid price")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !price.Amount().Equal(amount) {
				t.Fatalf("expected amount %s, got %s", amount, price.Amount())
			}
		})
	}
}

func TestPriceFromString_NotDecimal(t *testing.T) {
	if _, err := domain.PriceFromString("ten"); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestPrice_EqualityByValue(t *testing.T) {
	a := domain.MustPrice("10")
	b := domain.MustPrice("10.00")
	c := domain.MustPrice("10.01")

	if !a.Equal(b) {
		t.Fatal("10 and 10.00 must be equal")
	}
	if a.Equal(c) {
		t.Fatal("10 and 10.01 must differ")
	}
	if a.Cmp(c) != -1 || c.Cmp(a) != 1 || a.Cmp(b) != 0 {
		t.Fatal("unexpected Cmp ordering")
	}
}

func TestMustPrice_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	domain.MustPrice("0")
}
