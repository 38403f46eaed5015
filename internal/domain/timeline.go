package domain

import "time"

// Типы событий заказа: используются в timeline и как event_type в outbox.
const (
	EventOrderCreated         = "OrderCreated"
	EventOrderLineAdded       = "OrderLineAdded"
	EventOrderLineChanged     = "OrderLineQuantityChanged"
	EventOrderLineRemoved     = "OrderLineRemoved"
	EventOrderConfirmed       = "OrderConfirmed"
	EventOrderCancelled       = "OrderCancelled"
	EventOrderCustomerChanged = "OrderCustomerChanged"
	AggregateTypeOrder        = "order"
	AggregateTypeProduct      = "product"
	EventProductCreated       = "ProductCreated"
	EventProductPriceChanged  = "ProductPriceChanged"
	EventProductActiveChanged = "ProductActiveChanged"
)

// TimelineEvent описывает событие в жизненном цикле заказа.
type TimelineEvent struct {
	OrderID  string
	Type     string
	Reason   string
	Occurred time.Time
}
