package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// partyEntity: общие поля клиента и поставщика.
type partyEntity interface {
	ID() uuid.UUID
	Contact() domain.ContactInfo
	IsActive() bool
	CreatedAt() time.Time
}

// partyRepository хранит клиентов или поставщиков: у таблиц customers и suppliers одинаковая схема.
type partyRepository[T partyEntity] struct {
	db        *sql.DB
	table     string
	notFound  error
	exists    error
	rehydrate func(uuid.UUID, domain.ContactInfo, bool, time.Time) (T, error)
}

// NewCustomerRepository создаёт PostgreSQL-хранилище клиентов.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &partyRepository[*domain.Customer]{
		db:        store.DB(),
		table:     "customers",
		notFound:  domain.ErrCustomerNotFound,
		exists:    domain.ErrCustomerAlreadyExists,
		rehydrate: domain.RehydrateCustomer,
	}
}

// NewSupplierRepository создаёт PostgreSQL-хранилище поставщиков.
func NewSupplierRepository(store *Store) domain.SupplierRepository {
	return &partyRepository[*domain.Supplier]{
		db:        store.DB(),
		table:     "suppliers",
		notFound:  domain.ErrSupplierNotFound,
		exists:    domain.ErrSupplierAlreadyExists,
		rehydrate: domain.RehydrateSupplier,
	}
}

const partyColumns = `id, name, email, phone, address, active, created_at`

func (r *partyRepository[T]) Add(item T) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	c := item.Contact()
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (%s, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, r.table, partyColumns),
		item.ID(), c.Name, c.Email, c.Phone, c.Address, item.IsActive(), item.CreatedAt(), time.Now().UTC(),
	)
	if isUniqueViolation(err) {
		return r.exists
	}
	if err != nil {
		return fmt.Errorf("insert into %s: %w", r.table, err)
	}
	return nil
}

func (r *partyRepository[T]) Get(id uuid.UUID) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	item, err := r.scan(r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, partyColumns, r.table), id))
	if errors.Is(err, sql.ErrNoRows) {
		return item, r.notFound
	}
	if err != nil {
		return item, fmt.Errorf("select from %s: %w", r.table, err)
	}
	return item, nil
}

func (r *partyRepository[T]) Save(item T) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	c := item.Contact()
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE %s
		SET name = $1, email = $2, phone = $3, address = $4, active = $5, updated_at = $6
		WHERE id = $7
	`, r.table),
		c.Name, c.Email, c.Phone, c.Address, item.IsActive(), time.Now().UTC(), item.ID(),
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	return requireAffected(res, r.notFound)
}

func (r *partyRepository[T]) Remove(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", r.table, err)
	}
	return requireAffected(res, r.notFound)
}

func (r *partyRepository[T]) List() ([]T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at ASC, id ASC`, partyColumns, r.table))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", r.table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", r.table, err)
	}
	return items, nil
}

func (r *partyRepository[T]) scan(row rowScanner) (T, error) {
	var (
		id        uuid.UUID
		contact   domain.ContactInfo
		active    bool
		createdAt time.Time
		zero      T
	)
	if err := row.Scan(&id, &contact.Name, &contact.Email, &contact.Phone, &contact.Address, &active, &createdAt); err != nil {
		return zero, err
	}
	return r.rehydrate(id, contact, active, createdAt.UTC())
}

var (
	_ domain.CustomerRepository = (*partyRepository[*domain.Customer])(nil)
	_ domain.SupplierRepository = (*partyRepository[*domain.Supplier])(nil)
)
