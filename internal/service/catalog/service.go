package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/metrics"
)

const metricsService = "catalog"

// ProductView: read-model товара.
type ProductView struct {
	ID         uuid.UUID
	Price      decimal.Decimal
	Active     bool
	SupplierID *uuid.UUID
}

// ToView строит read-model из сущности.
func ToView(product *domain.Product) ProductView {
	return ProductView{
		ID:         product.ID(),
		Price:      product.Price().Amount(),
		Active:     product.IsActive(),
		SupplierID: product.SupplierID(),
	}
}

// EventPayload: тело события каталога в outbox.
type EventPayload struct {
	ProductID  string    `json:"product_id"`
	EventType  string    `json:"event_type"`
	Price      string    `json:"price"`
	Active     bool      `json:"active"`
	SupplierID string    `json:"supplier_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Service управляет каталогом товаров.
type Service struct {
	products  domain.ProductRepository
	suppliers domain.SupplierRepository
	outbox    domain.OutboxRepository
	metrics   *metrics.ServiceMetrics
	logger    *log.Entry
}

// Option настраивает Service.
type Option func(*Service)

// WithSuppliers включает проверку поставщика при создании товара.
func WithSuppliers(suppliers domain.SupplierRepository) Option {
	return func(s *Service) {
		s.suppliers = suppliers
	}
}

// WithOutbox включает публикацию событий каталога.
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

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService конструирует сервис каталога.
func NewService(products domain.ProductRepository, opts ...Option) *Service {
	s := &Service{
		products: products,
		logger:   log.New().WithField("component", "catalog-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create заводит активный товар.
func (s *Service) Create(price decimal.Decimal, supplierID *uuid.UUID) (view ProductView, err error) {
	defer s.observe("create", time.Now(), &err)

	p, err := domain.NewPrice(price)
	if err != nil {
		return ProductView{}, fmt.Errorf("create product: %w", err)
	}
	if err := s.checkSupplier(supplierID); err != nil {
		return ProductView{}, fmt.Errorf("create product: %w", err)
	}
	product, err := domain.NewProduct(uuid.Nil, p, supplierID)
	if err != nil {
		return ProductView{}, fmt.Errorf("create product: %w", err)
	}
	if err := s.products.Add(product); err != nil {
		s.logger.WithError(err).WithField("product_id", product.ID()).Error("failed to create product")
		return ProductView{}, fmt.Errorf("create product: %w", err)
	}

	s.record(product, domain.EventProductCreated)
	return ToView(product), nil
}

// GetByID возвращает товар.
func (s *Service) GetByID(id uuid.UUID) (view ProductView, err error) {
	defer s.observe("get", time.Now(), &err)

	product, err := s.products.Get(id)
	if err != nil {
		return ProductView{}, fmt.Errorf("load product %s: %w", id, err)
	}
	return ToView(product), nil
}

// List возвращает каталог в порядке добавления.
func (s *Service) List() (views []ProductView, err error) {
	defer s.observe("list", time.Now(), &err)

	products, err := s.products.List()
	if err != nil {
		s.logger.WithError(err).Error("failed to list products")
		return nil, fmt.Errorf("list products: %w", err)
	}
	views = make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, ToView(product))
	}
	return views, nil
}

// ChangePrice переоценивает активный товар. Уже добавленные в заказы позиции не меняются.
func (s *Service) ChangePrice(id uuid.UUID, price decimal.Decimal) (view ProductView, err error) {
	defer s.observe("change_price", time.Now(), &err)

	return s.mutate("change_price", id, domain.EventProductPriceChanged, func(product *domain.Product) error {
		p, err := domain.NewPrice(price)
		if err != nil {
			return err
		}
		return product.ChangePrice(p)
	})
}

// Activate делает товар доступным для заказов.
func (s *Service) Activate(id uuid.UUID) (view ProductView, err error) {
	defer s.observe("activate", time.Now(), &err)

	return s.mutate("activate", id, domain.EventProductActiveChanged, func(product *domain.Product) error {
		product.Activate()
		return nil
	})
}

// Deactivate выводит товар из продажи.
func (s *Service) Deactivate(id uuid.UUID) (view ProductView, err error) {
	defer s.observe("deactivate", time.Now(), &err)

	return s.mutate("deactivate", id, domain.EventProductActiveChanged, func(product *domain.Product) error {
		product.Deactivate()
		return nil
	})
}

// Seed загружает товары, пропуская уже существующие. Возвращает число добавленных.
func (s *Service) Seed(items []SeedProduct) (int, error) {
	added := 0
	for idx, item := range items {
		product, err := item.toProduct()
		if err != nil {
			return added, fmt.Errorf("seed product[%d]: %w", idx, err)
		}
		if err := s.products.Add(product); err != nil {
			if errors.Is(err, domain.ErrProductAlreadyExists) {
				s.logger.WithField("product_id", product.ID()).Debug("seed product already exists")
				continue
			}
			return added, fmt.Errorf("seed product[%d]: %w", idx, err)
		}
		s.record(product, domain.EventProductCreated)
		added++
	}

	s.logger.WithFields(log.Fields{"added": added, "total": len(items)}).Info("catalog seeded")
	return added, nil
}

func (s *Service) checkSupplier(supplierID *uuid.UUID) error {
	if supplierID == nil || s.suppliers == nil {
		return nil
	}
	supplier, err := s.suppliers.Get(*supplierID)
	if err != nil {
		return fmt.Errorf("load supplier %s: %w", *supplierID, err)
	}
	if !supplier.IsActive() {
		return fmt.Errorf("supplier %s: %w", *supplierID, domain.ErrInactiveSupplier)
	}
	return nil
}

func (s *Service) mutate(operation string, id uuid.UUID, eventType string, apply func(*domain.Product) error) (ProductView, error) {
	product, err := s.products.Get(id)
	if err != nil {
		return ProductView{}, fmt.Errorf("load product %s: %w", id, err)
	}
	if err := apply(product); err != nil {
		return ProductView{}, fmt.Errorf("%s: %w", operation, err)
	}
	if err := s.products.Save(product); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"operation":  operation,
			"product_id": id,
		}).Error("failed to save product")
		return ProductView{}, fmt.Errorf("%s: save product: %w", operation, err)
	}

	s.record(product, eventType)
	return ToView(product), nil
}

func (s *Service) record(product *domain.Product, eventType string) {
	if s.outbox == nil {
		return
	}

	payload := EventPayload{
		ProductID:  product.ID().String(),
		EventType:  eventType,
		Price:      product.Price().String(),
		Active:     product.IsActive(),
		OccurredAt: time.Now().UTC(),
	}
	if supplierID := product.SupplierID(); supplierID != nil {
		payload.SupplierID = supplierID.String()
	}

	fields := log.Fields{"product_id": payload.ProductID, "event": eventType, "active": payload.Active}
	msg, err := domain.NewOutboxMessage(domain.AggregateTypeProduct, payload.ProductID, eventType, payload)
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

func (s *Service) observe(operation string, started time.Time, err *error) {
	s.metrics.ObserveOperation(metricsService, operation, metrics.ResultOf(*err), time.Since(started))
}
