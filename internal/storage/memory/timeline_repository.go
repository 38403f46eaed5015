package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// timelineRepositoryInMemory держит журнал каждого заказа отсортированным по Occurred.
type timelineRepositoryInMemory struct {
	mu      sync.RWMutex
	byOrder map[string][]domain.TimelineEvent
}

// NewTimelineRepository создаёт in-memory реализацию TimelineRepository.
func NewTimelineRepository() domain.TimelineRepository {
	return &timelineRepositoryInMemory{byOrder: make(map[string][]domain.TimelineEvent)}
}

// Append вставляет событие после всех событий с тем же или более ранним временем.
func (r *timelineRepositoryInMemory) Append(event domain.TimelineEvent) error {
	if event.OrderID == "" || event.Type == "" {
		return fmt.Errorf("append timeline event: %w", domain.ErrInvalidValue)
	}
	if event.Occurred.IsZero() {
		event.Occurred = time.Now()
	}
	event.Occurred = event.Occurred.UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	journal := r.byOrder[event.OrderID]
	at := sort.Search(len(journal), func(i int) bool {
		return journal[i].Occurred.After(event.Occurred)
	})
	journal = append(journal, domain.TimelineEvent{})
	copy(journal[at+1:], journal[at:])
	journal[at] = event
	r.byOrder[event.OrderID] = journal
	return nil
}

// List возвращает копию журнала заказа.
func (r *timelineRepositoryInMemory) List(orderID string) ([]domain.TimelineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.TimelineEvent{}, r.byOrder[orderID]...), nil
}

var _ domain.TimelineRepository = (*timelineRepositoryInMemory)(nil)
