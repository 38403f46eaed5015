package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

const defaultPullLimit = 100

type outboxStatus uint8

const (
	outboxPending outboxStatus = iota
	outboxSent
	outboxFailed
)

// outboxEntry: сообщение и его служебное состояние.
type outboxEntry struct {
	msg       domain.OutboxMessage
	status    outboxStatus
	attempts  int
	createdAt time.Time
	updatedAt time.Time
}

// outboxRepositoryInMemory хранит сообщения в порядке записи; index ускоряет поиск по ID.
type outboxRepositoryInMemory struct {
	mu      sync.RWMutex
	entries []*outboxEntry
	index   map[string]*outboxEntry
}

// NewOutboxRepository создаёт in-memory реализацию outbox.
func NewOutboxRepository() domain.OutboxRepository {
	return &outboxRepositoryInMemory{index: make(map[string]*outboxEntry)}
}

func (r *outboxRepositoryInMemory) Enqueue(msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	if msg.AggregateID == "" || msg.EventType == "" {
		return domain.OutboxMessage{}, fmt.Errorf("enqueue outbox message: %w", domain.ErrInvalidValue)
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[msg.ID]; exists {
		return domain.OutboxMessage{}, fmt.Errorf("enqueue outbox message %s: duplicate id", msg.ID)
	}
	now := time.Now().UTC()
	entry := &outboxEntry{msg: msg, status: outboxPending, createdAt: now, updatedAt: now}
	r.entries = append(r.entries, entry)
	r.index[msg.ID] = entry
	return msg, nil
}

// PullPending отдаёт до limit самых старых pending-сообщений.
func (r *outboxRepositoryInMemory) PullPending(limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 {
		limit = defaultPullLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	batch := make([]domain.OutboxMessage, 0, limit)
	for _, entry := range r.entries {
		if len(batch) == limit {
			break
		}
		if entry.status == outboxPending {
			batch = append(batch, entry.msg)
		}
	}
	return batch, nil
}

func (r *outboxRepositoryInMemory) Stats() (domain.OutboxStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats domain.OutboxStats
	for _, entry := range r.entries {
		if entry.status != outboxPending {
			continue
		}
		if stats.PendingCount == 0 {
			stats.OldestPendingAt = entry.createdAt
		}
		stats.PendingCount++
	}
	return stats, nil
}

func (r *outboxRepositoryInMemory) MarkSent(id string) error { return r.mark(id, outboxSent) }

func (r *outboxRepositoryInMemory) MarkFailed(id string) error { return r.mark(id, outboxFailed) }

func (r *outboxRepositoryInMemory) mark(id string, status outboxStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.index[id]
	if !ok {
		return domain.ErrOutboxPublish
	}
	entry.status = status
	entry.attempts++
	entry.updatedAt = time.Now().UTC()
	return nil
}

var _ domain.OutboxRepository = (*outboxRepositoryInMemory)(nil)
