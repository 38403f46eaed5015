package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// entity: сущность справочника, которую хранилище копирует на входе и выходе.
type entity[T any] interface {
	ID() uuid.UUID
	Clone() T
}

// registry хранит справочник в памяти, сохраняя порядок добавления.
// Наружу отдаются только копии.
type registry[T entity[T]] struct {
	mu       sync.RWMutex
	items    map[uuid.UUID]T
	order    []uuid.UUID
	notFound error
	exists   error
}

func newRegistry[T entity[T]](notFound, exists error) *registry[T] {
	return &registry[T]{
		items:    make(map[uuid.UUID]T),
		notFound: notFound,
		exists:   exists,
	}
}

// NewProductRepository создаёт in-memory каталог.
func NewProductRepository() domain.ProductRepository {
	return newRegistry[*domain.Product](domain.ErrProductNotFound, domain.ErrProductAlreadyExists)
}

// NewCustomerRepository создаёт in-memory хранилище клиентов.
func NewCustomerRepository() domain.CustomerRepository {
	return newRegistry[*domain.Customer](domain.ErrCustomerNotFound, domain.ErrCustomerAlreadyExists)
}

// NewSupplierRepository создаёт in-memory хранилище поставщиков.
func NewSupplierRepository() domain.SupplierRepository {
	return newRegistry[*domain.Supplier](domain.ErrSupplierNotFound, domain.ErrSupplierAlreadyExists)
}

func (r *registry[T]) Add(item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID()]; ok {
		return r.exists
	}
	r.items[item.ID()] = item.Clone()
	r.order = append(r.order, item.ID())
	return nil
}

func (r *registry[T]) Get(id uuid.UUID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, r.notFound
	}
	return item.Clone(), nil
}

func (r *registry[T]) Save(item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID()]; !ok {
		return r.notFound
	}
	r.items[item.ID()] = item.Clone()
	return nil
}

func (r *registry[T]) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return r.notFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *registry[T]) List() ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]T, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id].Clone())
	}
	return result, nil
}

var (
	_ domain.ProductRepository  = (*registry[*domain.Product])(nil)
	_ domain.CustomerRepository = (*registry[*domain.Customer])(nil)
	_ domain.SupplierRepository = (*registry[*domain.Supplier])(nil)
)
