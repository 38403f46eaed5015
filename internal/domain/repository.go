package domain

import "github.com/google/uuid"

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Add сохраняет новый заказ. Возвращает ErrOrderAlreadyExists, если ID занят.
	Add(order *Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id uuid.UUID) (*Order, error)
	// Save применяет обновления к заказу с учётом optimistic locking и выставляет новую версию.
	Save(order *Order) error
	// Remove удаляет заказ; ErrOrderNotFound, если его нет.
	Remove(id uuid.UUID) error
	// List возвращает заказы, новые первыми; limit <= 0 снимает ограничение.
	List(limit int) ([]*Order, error)
	// ListByCustomer возвращает заказы клиента с опциональным ограничением на количество.
	ListByCustomer(customerID uuid.UUID, limit int) ([]*Order, error)
}

// ProductRepository: хранилище каталога товаров.
type ProductRepository interface {
	Add(product *Product) error
	// Get возвращает товар или ErrProductNotFound.
	Get(id uuid.UUID) (*Product, error)
	Save(product *Product) error
	Remove(id uuid.UUID) error
	List() ([]*Product, error)
}

// CustomerRepository: хранилище клиентов.
type CustomerRepository interface {
	Add(customer *Customer) error
	// Get возвращает клиента или ErrCustomerNotFound.
	Get(id uuid.UUID) (*Customer, error)
	Save(customer *Customer) error
	Remove(id uuid.UUID) error
	List() ([]*Customer, error)
}

// SupplierRepository: хранилище поставщиков.
type SupplierRepository interface {
	Add(supplier *Supplier) error
	// Get возвращает поставщика или ErrSupplierNotFound.
	Get(id uuid.UUID) (*Supplier, error)
	Save(supplier *Supplier) error
	Remove(id uuid.UUID) error
	List() ([]*Supplier, error)
}
