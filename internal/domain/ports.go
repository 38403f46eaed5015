package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// OutboxPublisher доставляет сообщения outbox во внешний брокер.
type OutboxPublisher interface {
	// Publish должен быть идемпотентным: сообщение может прийти повторно после сбоя.
	Publish(event OutboxMessage) error
}

// OutboxRepository: очередь сообщений, записанных вместе с изменением агрегата.
type OutboxRepository interface {
	// Enqueue ставит сообщение в pending; пустой ID заполняется. ErrInvalidValue без AggregateID или EventType.
	Enqueue(msg OutboxMessage) (OutboxMessage, error)
	// PullPending возвращает до limit самых старых pending-сообщений, не меняя их статус.
	PullPending(limit int) ([]OutboxMessage, error)
	Stats() (OutboxStats, error)
	// MarkSent и MarkFailed возвращают ErrOutboxPublish для неизвестного ID.
	MarkSent(id string) error
	MarkFailed(id string) error
}

// TimelineRepository: журнал событий заказа в хронологическом порядке.
type TimelineRepository interface {
	Append(event TimelineEvent) error
	List(orderID string) ([]TimelineEvent, error)
}

// OutboxMessage: событие агрегата, ожидающее публикации.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// NewOutboxMessage кодирует payload в JSON и собирает сообщение для агрегата.
func NewOutboxMessage(aggregateType, aggregateID, eventType string, payload any) (OutboxMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return OutboxMessage{
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       data,
	}, nil
}

// OutboxStats: размер backlog и возраст самого старого pending-сообщения.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
