package order

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// change описывает применённое к заказу изменение.
type change struct {
	eventType string
	reason    string
	productID uuid.UUID
	quantity  int
	unitPrice string

	transition bool
	lineAdded  bool
}

// EventPayload: тело события заказа в outbox.
type EventPayload struct {
	OrderID    string    `json:"order_id"`
	EventType  string    `json:"event_type"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	Version    int64     `json:"version"`
	CustomerID string    `json:"customer_id,omitempty"`
	ProductID  string    `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	UnitPrice  string    `json:"unit_price,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// record пишет метрики, timeline и outbox после успешного сохранения.
// Ошибки только логируются: заказ уже сохранён.
func (s *Service) record(order *domain.Order, c change) {
	if c.transition {
		s.metrics.RecordTransition(string(order.Status()))
	}
	if c.lineAdded {
		s.metrics.RecordLineAdded()
	}

	occurred := order.UpdatedAt()
	orderID := order.ID().String()
	fields := log.Fields{"order_id": orderID, "event": c.eventType}

	if s.timeline != nil {
		event := domain.TimelineEvent{
			OrderID:  orderID,
			Type:     c.eventType,
			Reason:   c.reason,
			Occurred: occurred,
		}
		if err := s.timeline.Append(event); err != nil {
			s.logger.WithError(err).WithFields(fields).Warn("failed to append timeline event")
		} else {
			s.metrics.RecordTimelineEvent()
		}
	}

	if s.outbox == nil {
		return
	}

	payload := EventPayload{
		OrderID:    orderID,
		EventType:  c.eventType,
		Status:     string(order.Status()),
		Total:      order.Total().String(),
		Version:    order.Version(),
		Quantity:   c.quantity,
		UnitPrice:  c.unitPrice,
		Reason:     c.reason,
		OccurredAt: occurred,
	}
	if customerID := order.CustomerID(); customerID != nil {
		payload.CustomerID = customerID.String()
	}
	if c.productID != uuid.Nil {
		payload.ProductID = c.productID.String()
	}

	msg, err := domain.NewOutboxMessage(domain.AggregateTypeOrder, orderID, c.eventType, payload)
	if err != nil {
		s.logger.WithError(err).WithFields(fields).Warn("failed to encode outbox payload")
		return
	}
	if _, err := s.outbox.Enqueue(msg); err != nil {
		s.logger.WithError(err).WithFields(fields).Warn("failed to enqueue outbox event")
		return
	}
	s.metrics.RecordOutboxEvent()
}
