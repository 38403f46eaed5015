package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// orderRepositoryInMemory: in-memory реализация OrderRepository.
// Хранит снимки, поэтому вызывающие никогда не делят экземпляр агрегата.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.OrderSnapshot
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[uuid.UUID]domain.OrderSnapshot),
	}
}

// Add сохраняет новый заказ, если ID ещё не занят.
func (r *orderRepositoryInMemory) Add(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID()]; exists {
		return domain.ErrOrderAlreadyExists
	}
	r.items[order.ID()] = order.Snapshot()
	return nil
}

// Get восстанавливает заказ или возвращает ErrOrderNotFound.
func (r *orderRepositoryInMemory) Get(id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	snap, ok := r.items[id]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return domain.RehydrateOrder(snap)
}

// Save перезаписывает заказ, проверяя версию (optimistic locking).
func (r *orderRepositoryInMemory) Save(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[order.ID()]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if current.Version != order.Version() {
		return domain.ErrOrderVersionConflict
	}

	snap := order.Snapshot()
	snap.Version++
	r.items[order.ID()] = snap
	order.SetVersion(snap.Version)
	return nil
}

// Remove удаляет заказ.
func (r *orderRepositoryInMemory) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.items, id)
	return nil
}

// List возвращает заказы, новые первыми; limit <= 0 снимает ограничение.
func (r *orderRepositoryInMemory) List(limit int) ([]*domain.Order, error) {
	return r.collect(func(domain.OrderSnapshot) bool { return true }, limit)
}

// ListByCustomer возвращает заказы клиента, ограничивая выборку limit (если >0).
func (r *orderRepositoryInMemory) ListByCustomer(customerID uuid.UUID, limit int) ([]*domain.Order, error) {
	return r.collect(func(s domain.OrderSnapshot) bool {
		return s.CustomerID != nil && *s.CustomerID == customerID
	}, limit)
}

func (r *orderRepositoryInMemory) collect(match func(domain.OrderSnapshot) bool, limit int) ([]*domain.Order, error) {
	r.mu.RLock()
	snaps := make([]domain.OrderSnapshot, 0, len(r.items))
	for _, snap := range r.items {
		if match(snap) {
			snaps = append(snaps, snap)
		}
	}
	r.mu.RUnlock()

	sort.Slice(snaps, func(i, j int) bool {
		if !snaps[i].CreatedAt.Equal(snaps[j].CreatedAt) {
			return snaps[i].CreatedAt.After(snaps[j].CreatedAt)
		}
		return snaps[i].ID.String() > snaps[j].ID.String()
	})

	if limit > 0 && len(snaps) > limit {
		snaps = snaps[:limit]
	}

	result := make([]*domain.Order, 0, len(snaps))
	for _, snap := range snaps {
		order, err := domain.RehydrateOrder(snap)
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
