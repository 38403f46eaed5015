package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// События справочников клиентов и поставщиков.
const (
	AggregateTypeCustomer = "customer"
	AggregateTypeSupplier = "supplier"

	EventCustomerCreated        = "CustomerCreated"
	EventCustomerContactUpdated = "CustomerContactUpdated"
	EventCustomerActiveChanged  = "CustomerActiveChanged"
	EventCustomerDeleted        = "CustomerDeleted"

	EventSupplierCreated        = "SupplierCreated"
	EventSupplierContactUpdated = "SupplierContactUpdated"
	EventSupplierActiveChanged  = "SupplierActiveChanged"
	EventSupplierDeleted        = "SupplierDeleted"
)

// ContactInfo: контактные данные клиента или поставщика.
// Имя обязательно, email должен быть одиночным адресом без отображаемого имени.
type ContactInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// NewContactInfo проверяет и нормализует контактные данные.
func NewContactInfo(name, email, phone, address string) (ContactInfo, error) {
	c := ContactInfo{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	}
	if err := c.Validate(); err != nil {
		return ContactInfo{}, err
	}
	return c, nil
}

// Validate проверяет инварианты контактных данных.
func (c ContactInfo) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidContact)
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: email is empty", ErrInvalidContact)
	}
	addr, err := mail.ParseAddress(c.Email)
	if err != nil || addr.Address != c.Email {
		return fmt.Errorf("%w: email %q is malformed", ErrInvalidContact, c.Email)
	}
	return nil
}

// party: общая часть клиента и поставщика.
type party struct {
	id        uuid.UUID
	contact   ContactInfo
	active    bool
	createdAt time.Time
}

func newParty(id uuid.UUID, contact ContactInfo) (party, error) {
	if err := contact.Validate(); err != nil {
		return party{}, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return party{id: id, contact: contact, active: true, createdAt: time.Now().UTC()}, nil
}

func rehydrateParty(kind string, id uuid.UUID, contact ContactInfo, active bool, createdAt time.Time) (party, error) {
	if id == uuid.Nil {
		return party{}, fmt.Errorf("%w: %s id is empty", ErrInvalidSnapshot, kind)
	}
	if err := contact.Validate(); err != nil {
		return party{}, fmt.Errorf("%w: %s %s: %w", ErrInvalidSnapshot, kind, id, err)
	}
	if createdAt.IsZero() {
		return party{}, fmt.Errorf("%w: %s %s has no created_at", ErrInvalidSnapshot, kind, id)
	}
	return party{id: id, contact: contact, active: active, createdAt: createdAt}, nil
}

func (p *party) ID() uuid.UUID        { return p.id }
func (p *party) Contact() ContactInfo { return p.contact }
func (p *party) IsActive() bool       { return p.active }
func (p *party) CreatedAt() time.Time { return p.createdAt }
func (p *party) Activate()            { p.active = true }
func (p *party) Deactivate()          { p.active = false }

// UpdateContact заменяет контактные данные целиком.
func (p *party) UpdateContact(contact ContactInfo) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	p.contact = contact
	return nil
}

// Customer: клиент, на которого оформляются заказы.
type Customer struct {
	party
}

// NewCustomer создаёт активного клиента. Пустой id заменяется сгенерированным.
func NewCustomer(id uuid.UUID, contact ContactInfo) (*Customer, error) {
	p, err := newParty(id, contact)
	if err != nil {
		return nil, err
	}
	return &Customer{party: p}, nil
}

// RehydrateCustomer восстанавливает клиента из сохранённых полей.
func RehydrateCustomer(id uuid.UUID, contact ContactInfo, active bool, createdAt time.Time) (*Customer, error) {
	p, err := rehydrateParty("customer", id, contact, active, createdAt)
	if err != nil {
		return nil, err
	}
	return &Customer{party: p}, nil
}

func (c *Customer) Clone() *Customer {
	cp := *c
	return &cp
}

// Supplier: поставщик товаров каталога.
type Supplier struct {
	party
}

// NewSupplier создаёт активного поставщика. Пустой id заменяется сгенерированным.
func NewSupplier(id uuid.UUID, contact ContactInfo) (*Supplier, error) {
	p, err := newParty(id, contact)
	if err != nil {
		return nil, err
	}
	return &Supplier{party: p}, nil
}

// RehydrateSupplier восстанавливает поставщика из сохранённых полей.
func RehydrateSupplier(id uuid.UUID, contact ContactInfo, active bool, createdAt time.Time) (*Supplier, error) {
	p, err := rehydrateParty("supplier", id, contact, active, createdAt)
	if err != nil {
		return nil, err
	}
	return &Supplier{party: p}, nil
}

func (s *Supplier) Clone() *Supplier {
	cp := *s
	return &cp
}
