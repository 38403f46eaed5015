package app

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	healthcheck "github.com/vladislavdragonenkov/ordering/internal/health"
	"github.com/vladislavdragonenkov/ordering/internal/metrics"
	"github.com/vladislavdragonenkov/ordering/internal/service/catalog"
	"github.com/vladislavdragonenkov/ordering/internal/service/order"
	"github.com/vladislavdragonenkov/ordering/internal/service/party"
	"github.com/vladislavdragonenkov/ordering/internal/version"
)

// Run поднимает хранилища, сервисы, gRPC-сервер, HTTP sidecar и outbox relay
// и блокируется до отмены ctx. При отмене возвращает ctx.Err().
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	if err := cfg.Validate(); err != nil {
		return err
	}

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close(logger)

	registerer := prometheus.DefaultRegisterer
	serviceMetrics := metrics.NewServiceMetricsWithRegisterer(registerer)

	customerService := party.NewCustomerService(deps.customers,
		party.WithOutbox(deps.outbox),
		party.WithMetrics(serviceMetrics),
		party.WithLogger(logger.WithField("component", "customer-service")),
	)
	supplierService := party.NewSupplierService(deps.suppliers,
		party.WithOutbox(deps.outbox),
		party.WithMetrics(serviceMetrics),
		party.WithLogger(logger.WithField("component", "supplier-service")),
	)

	catalogService := catalog.NewService(deps.products,
		catalog.WithSuppliers(deps.suppliers),
		catalog.WithOutbox(deps.outbox),
		catalog.WithMetrics(serviceMetrics),
		catalog.WithLogger(logger.WithField("component", "catalog-service")),
	)
	if err := seedCatalog(catalogService, cfg.CatalogSeedPath, logger); err != nil {
		return err
	}

	orderService := order.NewService(deps.orders, deps.products,
		order.WithCustomers(deps.customers),
		order.WithTimeline(deps.timeline),
		order.WithOutbox(deps.outbox),
		order.WithMetrics(serviceMetrics),
		order.WithCancelPolicy(cfg.CancelPolicy),
		order.WithLogger(logger.WithField("component", "order-service")),
	)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	if deps.storageChecker != nil {
		healthHandler.RegisterChecker("storage", deps.storageChecker)
	}
	healthHandler.RegisterChecker("outbox", healthcheck.NewThresholdChecker("outbox", cfg.OutboxMaxPending, func() (int, error) {
		stats, err := deps.outbox.Stats()
		return stats.PendingCount, err
	}))

	grpcServer, healthServer := newGRPCServer(grpcServices{
		orders:    orderService,
		products:  catalogService,
		customers: customerService,
		suppliers: supplierService,
	}, registerer, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	relay, err := newOutboxRelay(cfg, deps.outbox, registerer, logger)
	if err != nil {
		logger.WithError(err).Warn("kafka is unavailable, continuing without outbox relay")
	}
	defer relay.close()

	group, groupCtx := errgroup.WithContext(ctx)

	startMetricsServer(groupCtx, cfg.MetricsAddr, logger, healthHandler)

	group.Go(func() error {
		logger.WithField("addr", lis.Addr().String()).Info("grpc server is listening")
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	if relay != nil {
		group.Go(func() error {
			return relay.run(groupCtx)
		})
	} else {
		logger.Warn("kafka is not configured, outbox events stay pending")
	}

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down grpc server")
		stopGRPCServer(grpcServer, healthServer, cfg.ShutdownTimeout, logger)
		return nil
	})

	err = group.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// seedCatalog загружает товары из YAML-файла, если путь задан.
func seedCatalog(svc *catalog.Service, path string, logger *log.Entry) error {
	if path == "" {
		return nil
	}

	products, err := catalog.LoadSeedFile(path)
	if err != nil {
		return fmt.Errorf("load catalog seed: %w", err)
	}
	added, err := svc.Seed(products)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	logger.WithFields(log.Fields{
		"path":  path,
		"added": added,
		"total": len(products),
	}).Info("catalog seeded")
	return nil
}
