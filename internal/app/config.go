package app

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool
	// PostgresMaxConns: 0 оставляет размер пула по умолчанию.
	PostgresMaxConns int

	// KafkaBrokers пуст: outbox копится, но не публикуется.
	KafkaBrokers []string
	// KafkaTopic пуст: топик выбирается по типу агрегата.
	KafkaTopic string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration
	// OutboxMaxPending: порог backlog, после которого /healthz отвечает degraded.
	OutboxMaxPending int

	CancelPolicy    domain.CancelPolicy
	CatalogSeedPath string
	ShutdownTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию для локального запуска in-memory.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:            ":50051",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		OutboxPollInterval:  time.Second,
		OutboxBatchSize:     100,
		OutboxMaxAttempts:   3,
		OutboxRetryDelay:    50 * time.Millisecond,
		OutboxMaxPending:    1000,
		CancelPolicy:        domain.CancelAllowConfirmed,
		ShutdownTimeout:     5 * time.Second,
	}
}

// Validate проверяет согласованность настроек до старта.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres storage driver requires dsn")
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}

	if _, err := domain.ParseCancelPolicy(string(c.CancelPolicy)); err != nil {
		return fmt.Errorf("cancel policy: %w", err)
	}
	if c.PostgresMaxConns < 0 {
		return fmt.Errorf("postgres max conns must not be negative")
	}
	if c.OutboxBatchSize < 0 || c.OutboxMaxAttempts < 0 {
		return fmt.Errorf("outbox batch size and attempts must not be negative")
	}
	return nil
}
