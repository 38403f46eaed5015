package memory_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/storage/memory"
)

func newCustomer(t *testing.T, name, email string) *domain.Customer {
	t.Helper()
	contact, err := domain.NewContactInfo(name, email, "", "")
	if err != nil {
		t.Fatal(err)
	}
	customer, err := domain.NewCustomer(uuid.Nil, contact)
	if err != nil {
		t.Fatal(err)
	}
	return customer
}

func TestCustomerRepository_CRUD(t *testing.T) {
	repo := memory.NewCustomerRepository()
	alice := newCustomer(t, "Alice", "alice@example.com")
	bob := newCustomer(t, "Bob", "bob@example.com")

	for _, c := range []*domain.Customer{alice, bob} {
		if err := repo.Add(c); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	if err := repo.Add(alice); !errors.Is(err, domain.ErrCustomerAlreadyExists) {
		t.Fatalf("expected ErrCustomerAlreadyExists, got %v", err)
	}

	got, err := repo.Get(alice.ID())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	got.Deactivate()
	stored, _ := repo.Get(alice.ID())
	if !stored.IsActive() {
		t.Fatal("returned copy must not alias stored customer")
	}

	if err := repo.Save(got); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	stored, _ = repo.Get(alice.ID())
	if stored.IsActive() {
		t.Fatal("saved deactivation was lost")
	}

	list, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 || list[0].ID() != alice.ID() || list[1].ID() != bob.ID() {
		t.Fatal("list must keep insertion order")
	}

	if err := repo.Remove(alice.ID()); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := repo.Get(alice.ID()); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if err := repo.Remove(alice.ID()); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound on second remove, got %v", err)
	}
}

func TestSupplierRepository_Errors(t *testing.T) {
	repo := memory.NewSupplierRepository()
	contact, err := domain.NewContactInfo("Acme", "sales@acme.test", "", "")
	if err != nil {
		t.Fatal(err)
	}
	supplier, err := domain.NewSupplier(uuid.Nil, contact)
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Save(supplier); !errors.Is(err, domain.ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
	if _, err := repo.Get(uuid.New()); !errors.Is(err, domain.ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
	if err := repo.Add(supplier); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.Add(supplier); !errors.Is(err, domain.ErrSupplierAlreadyExists) {
		t.Fatalf("expected ErrSupplierAlreadyExists, got %v", err)
	}
}
