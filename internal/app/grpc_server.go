package app

import (
	"context"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/ordering/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/ordering/internal/service/grpc"
	"github.com/vladislavdragonenkov/ordering/internal/service/order"
	"github.com/vladislavdragonenkov/ordering/internal/service/party"
	omsv1 "github.com/vladislavdragonenkov/ordering/proto/oms/v1"
)

// servedServices: имена сервисов, статус которых публикует grpc health.
var servedServices = []string{
	"",
	omsv1.OrderService_ServiceDesc.ServiceName,
	omsv1.CatalogService_ServiceDesc.ServiceName,
	omsv1.CustomerService_ServiceDesc.ServiceName,
	omsv1.SupplierService_ServiceDesc.ServiceName,
}

type grpcServices struct {
	orders    *order.Service
	products  *catalog.Service
	customers *party.CustomerService
	suppliers *party.SupplierService
}

// newGRPCServer регистрирует прикладные сервисы и grpc health.
func newGRPCServer(services grpcServices, registerer prometheus.Registerer, logger *log.Entry) (*grpc.Server, *health.Server) {
	grpcMetrics := registerGRPCMetrics(registerer, logger)

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcMetrics.UnaryServerInterceptor(),
		loggingInterceptor(logger),
	))

	serviceLogger := logger.WithField("layer", "grpc")
	omsv1.RegisterOrderServiceServer(server, grpcsvc.NewOrderService(services.orders, serviceLogger))
	omsv1.RegisterCatalogServiceServer(server, grpcsvc.NewCatalogService(services.products, serviceLogger))
	omsv1.RegisterCustomerServiceServer(server, grpcsvc.NewCustomerService(services.customers, serviceLogger))
	omsv1.RegisterSupplierServiceServer(server, grpcsvc.NewSupplierService(services.suppliers, serviceLogger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	setServingStatus(healthServer, healthpb.HealthCheckResponse_SERVING)

	grpcMetrics.InitializeMetrics(server)
	return server, healthServer
}

func registerGRPCMetrics(registerer prometheus.Registerer, logger *log.Entry) *promgrpc.ServerMetrics {
	grpcMetrics := promgrpc.NewServerMetrics()
	grpcMetrics.EnableHandlingTimeHistogram()

	if err := registerer.Register(grpcMetrics); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				return existing
			}
		}
		logger.WithError(err).Warn("failed to register grpc metrics")
	}
	return grpcMetrics
}

func setServingStatus(healthServer *health.Server, servingStatus healthpb.HealthCheckResponse_ServingStatus) {
	for _, name := range servedServices {
		healthServer.SetServingStatus(name, servingStatus)
	}
}

// loggingInterceptor пишет в debug каждый вызов и в warn вызовы с ошибкой.
func loggingInterceptor(logger *log.Entry) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		started := time.Now()
		resp, err := handler(ctx, req)

		entry := logger.WithFields(log.Fields{
			"method":   info.FullMethod,
			"code":     status.Code(err).String(),
			"duration": time.Since(started),
		})
		if err != nil {
			entry.Warn("grpc call failed")
		} else {
			entry.Debug("grpc call")
		}
		return resp, err
	}
}

// stopGRPCServer останавливает сервер с ожиданием активных вызовов не дольше timeout.
func stopGRPCServer(server *grpc.Server, healthServer *health.Server, timeout time.Duration, logger *log.Entry) {
	setServingStatus(healthServer, healthpb.HealthCheckResponse_NOT_SERVING)

	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(timeout):
		logger.Warn("graceful stop timed out, forcing grpc server stop")
		server.Stop()
	}
}
