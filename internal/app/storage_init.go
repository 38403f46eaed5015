package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/ordering/internal/health"
	"github.com/vladislavdragonenkov/ordering/internal/storage/memory"
	"github.com/vladislavdragonenkov/ordering/internal/storage/postgres"
)

const storagePingTimeout = 2 * time.Second

// runtimeDependencies: хранилища, выбранные драйвером из Config.
type runtimeDependencies struct {
	orders    domain.OrderRepository
	products  domain.ProductRepository
	customers domain.CustomerRepository
	suppliers domain.SupplierRepository
	timeline  domain.TimelineRepository
	outbox    domain.OutboxRepository

	storageChecker healthcheck.Checker
	closeFn        func() error
}

func (d *runtimeDependencies) close(logger *log.Entry) {
	if d == nil || d.closeFn == nil {
		return
	}
	if err := d.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close storage")
	}
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		logger.Info("using in-memory storage")
		return &runtimeDependencies{
			orders:    memory.NewOrderRepository(),
			products:  memory.NewProductRepository(),
			customers: memory.NewCustomerRepository(),
			suppliers: memory.NewSupplierRepository(),
			timeline:  memory.NewTimelineRepository(),
			outbox:    memory.NewOutboxRepository(),
		}, nil
	case StorageDriverPostgres:
		return initPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func initPostgres(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("postgres storage driver requires dsn")
	}

	store, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.WithMaxConns(cfg.PostgresMaxConns))
	if err != nil {
		return nil, err
	}

	if cfg.PostgresAutoMigrate {
		if err := store.MigrateUp(ctx, 0); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		version, applied, err := store.MigrationStatus(ctx)
		if err == nil {
			logger.WithFields(log.Fields{
				"schema_version": version,
				"applied":        applied,
			}).Info("postgres schema is up to date")
		}
	}

	logger.WithField("max_conns", store.MaxConns()).Info("using postgres storage")
	return &runtimeDependencies{
		orders:    postgres.NewOrderRepository(store),
		products:  postgres.NewProductRepository(store),
		customers: postgres.NewCustomerRepository(store),
		suppliers: postgres.NewSupplierRepository(store),
		timeline:  postgres.NewTimelineRepository(store),
		outbox:    postgres.NewOutboxRepository(store),
		storageChecker: healthcheck.NewSimpleChecker("postgres", func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), storagePingTimeout)
			defer cancel()
			return store.Ping(pingCtx)
		}),
		closeFn: store.Close,
	}, nil
}
