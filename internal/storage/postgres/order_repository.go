package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

const (
	opTimeout = 5 * time.Second

	pgUniqueViolation = "23505"
)

const (
	selectOrderSQL = `SELECT id, customer_id, status, version, created_at, updated_at FROM orders`
	insertOrderSQL = `
		INSERT INTO orders (id, customer_id, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	updateOrderSQL = `
		UPDATE orders
		SET customer_id = $1, status = $2, version = version + 1, updated_at = $3
		WHERE id = $4 AND version = $5`
	insertLineSQL = `
		INSERT INTO order_lines (order_id, position, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	selectLinesSQL = `
		SELECT order_id, product_id, quantity, unit_price
		FROM order_lines
		WHERE order_id = ANY($1::uuid[])
		ORDER BY order_id, position`
	newestFirst = ` ORDER BY created_at DESC, id DESC`
)

// orderRepository хранит шапку заказа в orders, позиции в order_lines с сохранением порядка.
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Add(order *domain.Order) error {
	snap := order.Snapshot()
	return r.inTx("add order", func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, insertOrderSQL,
			snap.ID, nullUUID(snap.CustomerID), string(snap.Status), snap.Version, snap.CreatedAt, snap.UpdatedAt)
		if isUniqueViolation(err) {
			return domain.ErrOrderAlreadyExists
		}
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return insertLines(ctx, tx, snap)
	})
}

func (r *orderRepository) Get(id uuid.UUID) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	orders, err := r.query(ctx, selectOrderSQL+` WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return orders[0], nil
}

// Save обновляет заказ, если версия в базе совпадает с версией агрегата,
// и целиком переписывает его позиции.
func (r *orderRepository) Save(order *domain.Order) error {
	snap := order.Snapshot()
	err := r.inTx("save order", func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, updateOrderSQL,
			nullUUID(snap.CustomerID), string(snap.Status), snap.UpdatedAt, snap.ID, snap.Version)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if affected, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("rows affected: %w", err)
		} else if affected == 0 {
			return missingOrConflict(ctx, tx, snap.ID)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM order_lines WHERE order_id = $1`, snap.ID); err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}
		return insertLines(ctx, tx, snap)
	})
	if err != nil {
		return err
	}
	order.SetVersion(snap.Version + 1)
	return nil
}

func (r *orderRepository) Remove(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return requireAffected(res, domain.ErrOrderNotFound)
}

func (r *orderRepository) List(limit int) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if limit > 0 {
		return r.query(ctx, selectOrderSQL+newestFirst+` LIMIT $1`, limit)
	}
	return r.query(ctx, selectOrderSQL+newestFirst)
}

// ListByCustomer: limit <= 0 снимает ограничение.
func (r *orderRepository) ListByCustomer(customerID uuid.UUID, limit int) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	q := selectOrderSQL + ` WHERE customer_id = $1` + newestFirst
	if limit > 0 {
		return r.query(ctx, q+` LIMIT $2`, customerID, limit)
	}
	return r.query(ctx, q, customerID)
}

// query читает шапки заказов, затем одним запросом подгружает позиции всех найденных заказов.
func (r *orderRepository) query(ctx context.Context, q string, args ...any) ([]*domain.Order, error) {
	snaps, err := r.scanOrders(ctx, q, args...)
	if err != nil || len(snaps) == 0 {
		return nil, err
	}

	ids := make([]string, len(snaps))
	for i, snap := range snaps {
		ids[i] = snap.ID.String()
	}
	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(snaps))
	for _, snap := range snaps {
		snap.Lines = lines[snap.ID]
		order, err := domain.RehydrateOrder(snap)
		if err != nil {
			return nil, fmt.Errorf("rehydrate order %s: %w", snap.ID, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *orderRepository) scanOrders(ctx context.Context, q string, args ...any) ([]domain.OrderSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var snaps []domain.OrderSnapshot
	for rows.Next() {
		snap, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read order rows: %w", err)
	}
	return snaps, nil
}

func (r *orderRepository) loadLines(ctx context.Context, orderIDs []string) (map[uuid.UUID][]domain.LineSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, selectLinesSQL, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("select order lines: %w", err)
	}
	defer rows.Close()

	byOrder := make(map[uuid.UUID][]domain.LineSnapshot, len(orderIDs))
	for rows.Next() {
		var (
			orderID uuid.UUID
			line    domain.LineSnapshot
		)
		if err := rows.Scan(&orderID, &line.ProductID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		byOrder[orderID] = append(byOrder[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read order lines: %w", err)
	}
	return byOrder, nil
}

// inTx выполняет fn в транзакции с таймаутом opTimeout и откатывает её при ошибке.
func (r *orderRepository) inTx(op string, fn func(context.Context, *sql.Tx) error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}

func insertLines(ctx context.Context, tx *sql.Tx, snap domain.OrderSnapshot) error {
	for position, line := range snap.Lines {
		if _, err := tx.ExecContext(ctx, insertLineSQL, snap.ID, position, line.ProductID, line.Quantity, line.UnitPrice); err != nil {
			return fmt.Errorf("insert order line %d: %w", position, err)
		}
	}
	return nil
}

// missingOrConflict различает удалённый заказ и устаревшую версию после UPDATE без затронутых строк.
func missingOrConflict(ctx context.Context, tx *sql.Tx, orderID uuid.UUID) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists); err != nil {
		return fmt.Errorf("check order exists: %w", err)
	}
	if !exists {
		return domain.ErrOrderNotFound
	}
	return domain.ErrOrderVersionConflict
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.OrderSnapshot, error) {
	var (
		snap     domain.OrderSnapshot
		customer uuid.NullUUID
		status   string
	)
	if err := row.Scan(&snap.ID, &customer, &status, &snap.Version, &snap.CreatedAt, &snap.UpdatedAt); err != nil {
		return domain.OrderSnapshot{}, err
	}
	snap.Status = domain.OrderStatus(status)
	if customer.Valid {
		id := customer.UUID
		snap.CustomerID = &id
	}
	snap.CreatedAt = snap.CreatedAt.UTC()
	snap.UpdatedAt = snap.UpdatedAt.UTC()
	return snap, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

var _ domain.OrderRepository = (*orderRepository)(nil)
