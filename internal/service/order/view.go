package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// LineView: read-model позиции заказа.
type LineView struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// OrderView: read-model заказа, отдаваемый транспортному слою.
type OrderView struct {
	ID         uuid.UUID
	Status     domain.OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Total      decimal.Decimal
	CustomerID *uuid.UUID
	Version    int64
	Lines      []LineView
}

// ToView строит read-model из агрегата.
func ToView(order *domain.Order) OrderView {
	lines := order.Lines()
	views := make([]LineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, LineView{
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Amount(),
			LineTotal: line.LineTotal(),
		})
	}

	return OrderView{
		ID:         order.ID(),
		Status:     order.Status(),
		CreatedAt:  order.CreatedAt(),
		UpdatedAt:  order.UpdatedAt(),
		Total:      order.Total(),
		CustomerID: order.CustomerID(),
		Version:    order.Version(),
		Lines:      views,
	}
}
