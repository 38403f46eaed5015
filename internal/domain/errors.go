package domain

import "errors"

var (
	// ErrInvalidValue: денежная сумма должна быть строго положительной.
	ErrInvalidValue = errors.New("price must be greater than zero")
	// ErrInvalidLine: позиция ссылается на пустой товар, имеет qty <= 0 или невалидную цену.
	ErrInvalidLine = errors.New("invalid order line")
	// ErrInvalidQuantity: новое количество позиции должно быть > 0.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrDuplicateLine: в заказе уже есть позиция с этим товаром.
	ErrDuplicateLine = errors.New("order already contains a line for this product")
	// ErrNotMutable: изменять можно только черновик.
	ErrNotMutable = errors.New("order is not mutable")
	// ErrLineNotFound: в заказе нет позиции с указанным товаром.
	ErrLineNotFound = errors.New("order line not found")
	// ErrEmptyOrder: нельзя подтвердить заказ без позиций.
	ErrEmptyOrder = errors.New("cannot confirm an empty order")
	// ErrInvalidTransition: переход статуса запрещён.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrProductNotFound возвращается, если товар не найден в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrInactiveProduct: товар выведен из продажи.
	ErrInactiveProduct = errors.New("product is inactive")
	// ErrInvalidContact: у клиента или поставщика пустое имя либо некорректный email.
	ErrInvalidContact = errors.New("invalid contact info")
	// ErrCustomerNotFound возвращается, если клиент не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrSupplierNotFound возвращается, если поставщик не найден.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrInactiveCustomer: деактивированного клиента нельзя привязать к заказу.
	ErrInactiveCustomer = errors.New("customer is inactive")
	// ErrInactiveSupplier: деактивированный поставщик не может заводить товары.
	ErrInactiveSupplier = errors.New("supplier is inactive")
	// ErrCustomerAlreadyExists: клиент с таким ID уже сохранён.
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	// ErrSupplierAlreadyExists: поставщик с таким ID уже сохранён.
	ErrSupplierAlreadyExists = errors.New("supplier already exists")
	// ErrOrderAlreadyExists: заказ с таким ID уже сохранён.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrProductAlreadyExists: товар с таким ID уже сохранён.
	ErrProductAlreadyExists = errors.New("product already exists")
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// ErrInvalidSnapshot: сохранённое состояние нарушает инварианты агрегата.
	ErrInvalidSnapshot = errors.New("invalid stored state")
	// ErrOutboxPublish: ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}

// IsNotFound сообщает, что запрошенный агрегат или позиция отсутствуют.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrSupplierNotFound) ||
		errors.Is(err, ErrLineNotFound)
}

// IsInvalidInput сообщает о некорректных входных данных.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidValue) ||
		errors.Is(err, ErrInvalidLine) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidContact)
}

// IsRuleViolation сообщает о нарушении бизнес-правила в текущем состоянии агрегата.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrNotMutable) ||
		errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrDuplicateLine) ||
		errors.Is(err, ErrInactiveProduct) ||
		errors.Is(err, ErrInactiveCustomer) ||
		errors.Is(err, ErrInactiveSupplier)
}

// IsAlreadyExists сообщает о попытке повторно сохранить сущность с занятым ID.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrOrderAlreadyExists) ||
		errors.Is(err, ErrProductAlreadyExists) ||
		errors.Is(err, ErrCustomerAlreadyExists) ||
		errors.Is(err, ErrSupplierAlreadyExists)
}
