// Package party управляет справочниками клиентов и поставщиков.
// Обе сущности устроены одинаково, поэтому сервис обобщён по типу сущности.
package party

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/metrics"
)

// Entity: клиент или поставщик.
type Entity interface {
	ID() uuid.UUID
	Contact() domain.ContactInfo
	IsActive() bool
	CreatedAt() time.Time
	UpdateContact(domain.ContactInfo) error
	Activate()
	Deactivate()
}

// Repository: хранилище сущностей справочника.
type Repository[E Entity] interface {
	Add(E) error
	Get(uuid.UUID) (E, error)
	Save(E) error
	Remove(uuid.UUID) error
	List() ([]E, error)
}

// View: read-model клиента или поставщика.
type View struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	Active    bool
	CreatedAt time.Time
}

// ContactRequest: входные контактные данные для создания и обновления.
type ContactRequest struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// EventPayload: тело события справочника в outbox.
type EventPayload struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	EventType  string    `json:"event_type"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Active     bool      `json:"active"`
	OccurredAt time.Time `json:"occurred_at"`
}

type events struct {
	created, contactUpdated, activeChanged, deleted string
}

type kind[E Entity] struct {
	name   string
	create func(uuid.UUID, domain.ContactInfo) (E, error)
	events events
}

// Service реализует сценарии справочника: создание, чтение, список,
// обновление контактов, удаление, активацию и деактивацию.
type Service[E Entity] struct {
	kind    kind[E]
	repo    Repository[E]
	outbox  domain.OutboxRepository
	metrics *metrics.ServiceMetrics
	logger  *log.Entry
}

type settings struct {
	outbox  domain.OutboxRepository
	metrics *metrics.ServiceMetrics
	logger  *log.Entry
}

// Option настраивает Service.
type Option func(*settings)

// WithOutbox включает публикацию событий справочника.
func WithOutbox(outbox domain.OutboxRepository) Option {
	return func(s *settings) {
		s.outbox = outbox
	}
}

// WithMetrics подключает метрики операций.
func WithMetrics(m *metrics.ServiceMetrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// CustomerService: сервис справочника клиентов.
type CustomerService = Service[*domain.Customer]

// SupplierService: сервис справочника поставщиков.
type SupplierService = Service[*domain.Supplier]

// NewCustomerService конструирует сервис клиентов.
func NewCustomerService(repo domain.CustomerRepository, opts ...Option) *CustomerService {
	return newService[*domain.Customer](kind[*domain.Customer]{
		name:   domain.AggregateTypeCustomer,
		create: domain.NewCustomer,
		events: events{
			created:        domain.EventCustomerCreated,
			contactUpdated: domain.EventCustomerContactUpdated,
			activeChanged:  domain.EventCustomerActiveChanged,
			deleted:        domain.EventCustomerDeleted,
		},
	}, repo, opts)
}

// NewSupplierService конструирует сервис поставщиков.
func NewSupplierService(repo domain.SupplierRepository, opts ...Option) *SupplierService {
	return newService[*domain.Supplier](kind[*domain.Supplier]{
		name:   domain.AggregateTypeSupplier,
		create: domain.NewSupplier,
		events: events{
			created:        domain.EventSupplierCreated,
			contactUpdated: domain.EventSupplierContactUpdated,
			activeChanged:  domain.EventSupplierActiveChanged,
			deleted:        domain.EventSupplierDeleted,
		},
	}, repo, opts)
}

func newService[E Entity](k kind[E], repo Repository[E], opts []Option) *Service[E] {
	cfg := settings{logger: log.New().WithField("component", k.name+"-service")}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Service[E]{
		kind:    k,
		repo:    repo,
		outbox:  cfg.outbox,
		metrics: cfg.metrics,
		logger:  cfg.logger,
	}
}

// ToView строит read-model из сущности.
func ToView(e Entity) View {
	c := e.Contact()
	return View{
		ID:        e.ID(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Active:    e.IsActive(),
		CreatedAt: e.CreatedAt(),
	}
}

// Create заводит активную запись.
func (s *Service[E]) Create(req ContactRequest) (view View, err error) {
	defer s.observe("create", time.Now(), &err)

	contact, err := domain.NewContactInfo(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return View{}, fmt.Errorf("create %s: %w", s.kind.name, err)
	}
	item, err := s.kind.create(uuid.Nil, contact)
	if err != nil {
		return View{}, fmt.Errorf("create %s: %w", s.kind.name, err)
	}
	if err := s.repo.Add(item); err != nil {
		s.logger.WithError(err).WithField("id", item.ID()).Error("failed to create record")
		return View{}, fmt.Errorf("create %s: %w", s.kind.name, err)
	}

	s.record(item, s.kind.events.created)
	return ToView(item), nil
}

// GetByID возвращает запись.
func (s *Service[E]) GetByID(id uuid.UUID) (view View, err error) {
	defer s.observe("get", time.Now(), &err)

	item, err := s.repo.Get(id)
	if err != nil {
		return View{}, fmt.Errorf("load %s %s: %w", s.kind.name, id, err)
	}
	return ToView(item), nil
}

// List возвращает записи в порядке добавления.
func (s *Service[E]) List() (views []View, err error) {
	defer s.observe("list", time.Now(), &err)

	items, err := s.repo.List()
	if err != nil {
		s.logger.WithError(err).Error("failed to list records")
		return nil, fmt.Errorf("list %s: %w", s.kind.name, err)
	}
	views = make([]View, 0, len(items))
	for _, item := range items {
		views = append(views, ToView(item))
	}
	return views, nil
}

// UpdateContact заменяет контактные данные целиком.
func (s *Service[E]) UpdateContact(id uuid.UUID, req ContactRequest) (view View, err error) {
	defer s.observe("update_contact", time.Now(), &err)

	return s.mutate("update_contact", id, s.kind.events.contactUpdated, func(item E) error {
		contact, err := domain.NewContactInfo(req.Name, req.Email, req.Phone, req.Address)
		if err != nil {
			return err
		}
		return item.UpdateContact(contact)
	})
}

// Activate включает запись.
func (s *Service[E]) Activate(id uuid.UUID) (view View, err error) {
	defer s.observe("activate", time.Now(), &err)

	return s.mutate("activate", id, s.kind.events.activeChanged, func(item E) error {
		item.Activate()
		return nil
	})
}

// Deactivate выключает запись: её больше нельзя привязывать к заказам и товарам.
func (s *Service[E]) Deactivate(id uuid.UUID) (view View, err error) {
	defer s.observe("deactivate", time.Now(), &err)

	return s.mutate("deactivate", id, s.kind.events.activeChanged, func(item E) error {
		item.Deactivate()
		return nil
	})
}

// Delete удаляет запись. Заказы и товары сохраняют ссылку на её идентификатор.
func (s *Service[E]) Delete(id uuid.UUID) (err error) {
	defer s.observe("delete", time.Now(), &err)

	item, err := s.repo.Get(id)
	if err != nil {
		return fmt.Errorf("load %s %s: %w", s.kind.name, id, err)
	}
	if err := s.repo.Remove(id); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("failed to delete record")
		return fmt.Errorf("delete %s: %w", s.kind.name, err)
	}
	s.record(item, s.kind.events.deleted)
	return nil
}

func (s *Service[E]) mutate(operation string, id uuid.UUID, eventType string, apply func(E) error) (View, error) {
	item, err := s.repo.Get(id)
	if err != nil {
		return View{}, fmt.Errorf("load %s %s: %w", s.kind.name, id, err)
	}
	if err := apply(item); err != nil {
		return View{}, fmt.Errorf("%s: %w", operation, err)
	}
	if err := s.repo.Save(item); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"operation": operation,
			"id":        id,
		}).Error("failed to save record")
		return View{}, fmt.Errorf("%s: save %s: %w", operation, s.kind.name, err)
	}

	s.record(item, eventType)
	return ToView(item), nil
}

func (s *Service[E]) record(item E, eventType string) {
	if s.outbox == nil {
		return
	}

	payload := EventPayload{
		ID:         item.ID().String(),
		Kind:       s.kind.name,
		EventType:  eventType,
		Name:       item.Contact().Name,
		Email:      item.Contact().Email,
		Active:     item.IsActive(),
		OccurredAt: time.Now().UTC(),
	}
	fields := log.Fields{"id": payload.ID, "event": eventType}
	msg, err := domain.NewOutboxMessage(s.kind.name, payload.ID, eventType, payload)
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

func (s *Service[E]) observe(operation string, started time.Time, err *error) {
	s.metrics.ObserveOperation(s.kind.name, operation, metrics.ResultOf(*err), time.Since(started))
}
