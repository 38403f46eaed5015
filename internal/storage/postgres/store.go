package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	defaultPingTimeout = 5 * time.Second
	defaultMaxConns    = 25
	connMaxLifetime    = 30 * time.Minute
	connMaxIdleTime    = 5 * time.Minute
)

var errStoreNotReady = errors.New("postgres store is not initialized")

// Store держит пул соединений database/sql поверх драйвера pgx.
// Репозитории заказов, каталога, истории и outbox делят один Store.
type Store struct {
	db *sql.DB
}

type storeOptions struct {
	maxConns    int
	pingTimeout time.Duration
}

// Option настраивает пул при открытии.
type Option func(*storeOptions)

// WithMaxConns ограничивает число открытых соединений; idle-пул того же размера.
func WithMaxConns(n int) Option {
	return func(o *storeOptions) {
		if n > 0 {
			o.maxConns = n
		}
	}
}

// WithPingTimeout задаёт таймаут проверки доступности при открытии и в Ping.
func WithPingTimeout(d time.Duration) Option {
	return func(o *storeOptions) {
		if d > 0 {
			o.pingTimeout = d
		}
	}
}

// Open открывает пул и убеждается, что база отвечает.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	o := storeOptions{maxConns: defaultMaxConns, pingTimeout: defaultPingTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(o.maxConns)
	db.SetMaxIdleConns(o.maxConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, o.pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{db: db}, nil
}

// DB отдаёт пул репозиториям и тестам.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping проверяет соединение; используется health-чекером.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errStoreNotReady
	}
	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	return s.db.PingContext(pingCtx)
}

// MaxConns возвращает действующий лимит пула.
func (s *Store) MaxConns() int {
	if s == nil || s.db == nil {
		return 0
	}
	return s.db.Stats().MaxOpenConnections
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
