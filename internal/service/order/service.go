package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/metrics"
)

const (
	metricsService = "order"

	defaultListLimit = 100
)

// Service оркестрирует агрегат Order поверх хранилищ заказов и каталога.
// Каждый вызов работает с собственной копией агрегата, загруженной из хранилища.
type Service struct {
	orders    domain.OrderRepository
	products  domain.ProductRepository
	customers domain.CustomerRepository
	timeline  domain.TimelineRepository
	outbox    domain.OutboxRepository
	metrics   *metrics.ServiceMetrics
	policy    domain.CancelPolicy
	logger    *log.Entry
}

// Option настраивает Service.
type Option func(*Service)

// WithTimeline включает запись истории заказа.
func WithTimeline(timeline domain.TimelineRepository) Option {
	return func(s *Service) {
		s.timeline = timeline
	}
}

// WithCustomers включает проверку клиента: привязать можно только существующего активного клиента.
func WithCustomers(customers domain.CustomerRepository) Option {
	return func(s *Service) {
		s.customers = customers
	}
}

// WithOutbox включает запись событий в transactional outbox.
func WithOutbox(outbox domain.OutboxRepository) Option {
	return func(s *Service) {
		s.outbox = outbox
	}
}

// WithMetrics подключает метрики операций.
func WithMetrics(m *metrics.ServiceMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCancelPolicy задаёт политику отмены подтверждённых заказов.
func WithCancelPolicy(policy domain.CancelPolicy) Option {
	return func(s *Service) {
		if policy != "" {
			s.policy = policy
		}
	}
}

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService конструирует сервис заказов.
func NewService(orders domain.OrderRepository, products domain.ProductRepository, opts ...Option) *Service {
	s := &Service{
		orders:   orders,
		products: products,
		policy:   domain.CancelAllowConfirmed,
		logger:   log.New().WithField("component", "order-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CancelPolicy возвращает действующую политику отмены.
func (s *Service) CancelPolicy() domain.CancelPolicy {
	return s.policy
}

// Create создаёт пустой черновик заказа.
func (s *Service) Create(customerID *uuid.UUID) (view OrderView, err error) {
	defer s.observe("create", time.Now(), &err)

	if err := s.checkCustomer(customerID); err != nil {
		return OrderView{}, fmt.Errorf("create order: %w", err)
	}
	order := domain.NewOrder(uuid.Nil, customerID)
	if err := s.orders.Add(order); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID()).Error("failed to create order")
		return OrderView{}, fmt.Errorf("create order: %w", err)
	}

	s.record(order, change{eventType: domain.EventOrderCreated, transition: true})
	return ToView(order), nil
}

// GetByID возвращает заказ.
func (s *Service) GetByID(orderID uuid.UUID) (view OrderView, err error) {
	defer s.observe("get", time.Now(), &err)

	order, err := s.load(orderID, "get")
	if err != nil {
		return OrderView{}, err
	}
	return ToView(order), nil
}

// List возвращает все заказы (или заказы клиента), новые первыми.
// limit <= 0 означает ограничение по умолчанию.
func (s *Service) List(customerID *uuid.UUID, limit int) (views []OrderView, err error) {
	defer s.observe("list", time.Now(), &err)

	if limit <= 0 {
		limit = defaultListLimit
	}

	var orders []*domain.Order
	if customerID != nil {
		orders, err = s.orders.ListByCustomer(*customerID, limit)
	} else {
		orders, err = s.orders.List(limit)
	}
	if err != nil {
		s.logger.WithError(err).Error("failed to list orders")
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views = make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, ToView(order))
	}
	return views, nil
}

// AddLine добавляет позицию, фиксируя текущую цену активного продукта.
func (s *Service) AddLine(orderID, productID uuid.UUID, quantity int) (view OrderView, err error) {
	defer s.observe("add_line", time.Now(), &err)

	return s.mutate("add_line", orderID, func(order *domain.Order) (*change, error) {
		product, err := s.products.Get(productID)
		if err != nil {
			return nil, fmt.Errorf("load product %s: %w", productID, err)
		}
		if !product.IsActive() {
			return nil, fmt.Errorf("product %s: %w", productID, domain.ErrInactiveProduct)
		}
		if err := order.AddLine(productID, quantity, product.Price()); err != nil {
			return nil, err
		}
		return &change{
			eventType: domain.EventOrderLineAdded,
			productID: productID,
			quantity:  quantity,
			unitPrice: product.Price().String(),
			lineAdded: true,
		}, nil
	})
}

// ChangeLineQuantity меняет количество в существующей позиции.
func (s *Service) ChangeLineQuantity(orderID, productID uuid.UUID, quantity int) (view OrderView, err error) {
	defer s.observe("change_line_quantity", time.Now(), &err)

	return s.mutate("change_line_quantity", orderID, func(order *domain.Order) (*change, error) {
		if err := order.ChangeQuantity(productID, quantity); err != nil {
			return nil, err
		}
		return &change{eventType: domain.EventOrderLineChanged, productID: productID, quantity: quantity}, nil
	})
}

// RemoveLine удаляет позицию продукта из черновика.
func (s *Service) RemoveLine(orderID, productID uuid.UUID) (view OrderView, err error) {
	defer s.observe("remove_line", time.Now(), &err)

	return s.mutate("remove_line", orderID, func(order *domain.Order) (*change, error) {
		if err := order.RemoveLine(productID); err != nil {
			return nil, err
		}
		return &change{eventType: domain.EventOrderLineRemoved, productID: productID}, nil
	})
}

// SetCustomer привязывает (или отвязывает при nil) клиента к черновику.
func (s *Service) SetCustomer(orderID uuid.UUID, customerID *uuid.UUID) (view OrderView, err error) {
	defer s.observe("set_customer", time.Now(), &err)

	return s.mutate("set_customer", orderID, func(order *domain.Order) (*change, error) {
		if err := s.checkCustomer(customerID); err != nil {
			return nil, err
		}
		if err := order.SetCustomer(customerID); err != nil {
			return nil, err
		}
		reason := ""
		if customerID != nil {
			reason = customerID.String()
		}
		return &change{eventType: domain.EventOrderCustomerChanged, reason: reason}, nil
	})
}

// Confirm подтверждает непустой черновик.
func (s *Service) Confirm(orderID uuid.UUID) (view OrderView, err error) {
	defer s.observe("confirm", time.Now(), &err)

	return s.mutate("confirm", orderID, func(order *domain.Order) (*change, error) {
		if err := order.Confirm(); err != nil {
			return nil, err
		}
		return &change{eventType: domain.EventOrderConfirmed, transition: true}, nil
	})
}

// Cancel отменяет заказ с учётом политики. Повторная отмена ничего не меняет.
func (s *Service) Cancel(orderID uuid.UUID, reason string) (view OrderView, err error) {
	defer s.observe("cancel", time.Now(), &err)

	return s.mutate("cancel", orderID, func(order *domain.Order) (*change, error) {
		if order.Status() == domain.OrderStatusCancelled {
			return nil, nil
		}
		if err := order.Cancel(s.policy); err != nil {
			return nil, err
		}
		return &change{eventType: domain.EventOrderCancelled, reason: reason, transition: true}, nil
	})
}

// History возвращает события жизненного цикла заказа в хронологическом порядке.
func (s *Service) History(orderID uuid.UUID) (events []domain.TimelineEvent, err error) {
	defer s.observe("history", time.Now(), &err)

	if _, err := s.load(orderID, "history"); err != nil {
		return nil, err
	}
	if s.timeline == nil {
		return []domain.TimelineEvent{}, nil
	}

	events, err = s.timeline.List(orderID.String())
	if err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Error("failed to list timeline events")
		return nil, fmt.Errorf("list timeline: %w", err)
	}
	return events, nil
}

// mutate загружает заказ, применяет изменение и сохраняет его.
// apply возвращает nil change, если заказ не изменился: тогда запись пропускается.
// Метрики, timeline и outbox пишутся только после успешного Save.
func (s *Service) mutate(operation string, orderID uuid.UUID, apply func(*domain.Order) (*change, error)) (OrderView, error) {
	order, err := s.load(orderID, operation)
	if err != nil {
		return OrderView{}, err
	}

	c, err := apply(order)
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"operation": operation,
			"order_id":  orderID,
		}).Debug("order mutation rejected")
		return OrderView{}, fmt.Errorf("%s: %w", operation, err)
	}
	if c == nil {
		return ToView(order), nil
	}

	if err := s.orders.Save(order); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"operation": operation,
			"order_id":  orderID,
		}).Error("failed to save order")
		return OrderView{}, fmt.Errorf("%s: save order: %w", operation, err)
	}

	s.record(order, *c)
	return ToView(order), nil
}

func (s *Service) checkCustomer(customerID *uuid.UUID) error {
	if customerID == nil || s.customers == nil {
		return nil
	}
	customer, err := s.customers.Get(*customerID)
	if err != nil {
		return fmt.Errorf("load customer %s: %w", *customerID, err)
	}
	if !customer.IsActive() {
		return fmt.Errorf("customer %s: %w", *customerID, domain.ErrInactiveCustomer)
	}
	return nil
}

func (s *Service) load(orderID uuid.UUID, operation string) (*domain.Order, error) {
	order, err := s.orders.Get(orderID)
	if err == nil {
		return order, nil
	}

	entry := s.logger.WithError(err).WithFields(log.Fields{
		"operation": operation,
		"order_id":  orderID,
	})
	if errors.Is(err, domain.ErrOrderNotFound) {
		entry.Debug("order not found")
	} else {
		entry.Error("failed to load order")
	}
	return nil, fmt.Errorf("load order %s: %w", orderID, err)
}

func (s *Service) observe(operation string, started time.Time, err *error) {
	s.metrics.ObserveOperation(metricsService, operation, metrics.ResultOf(*err), time.Since(started))
}
