package grpcsvc

import (
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/ordering/internal/service/order"
	omsv1 "github.com/vladislavdragonenkov/ordering/proto/oms/v1"
)

const defaultListOrdersLimit = 100

// OrderService реализует gRPC API заказов поверх прикладного сервиса.
type OrderService struct {
	omsv1.UnimplementedOrderServiceServer

	orders *order.Service
	logger *log.Entry
}

// NewOrderService конструирует транспортный адаптер.
func NewOrderService(orders *order.Service, logger *log.Entry) *OrderService {
	if logger == nil {
		logger = log.New().WithField("component", "grpc-order-service")
	}
	return &OrderService{orders: orders, logger: logger}
}

// CreateOrder создаёт черновик заказа.
func (s *OrderService) CreateOrder(_ context.Context, req *omsv1.CreateOrderRequest) (*omsv1.OrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	customerID, err := parseOptionalID("customer_id", req.GetCustomerId())
	if err != nil {
		return nil, err
	}

	view, err := s.orders.Create(customerID)
	if err != nil {
		return nil, toStatus(s.logger, "CreateOrder", err)
	}
	return &omsv1.OrderResponse{Order: toProtoOrder(view)}, nil
}

// GetOrder возвращает заказ.
func (s *OrderService) GetOrder(_ context.Context, req *omsv1.GetOrderRequest) (*omsv1.OrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	orderID, err := parseID("order_id", req.GetOrderId())
	if err != nil {
		return nil, err
	}

	view, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, toStatus(s.logger, "GetOrder", err)
	}
	return &omsv1.OrderResponse{Order: toProtoOrder(view)}, nil
}

// ListOrders возвращает заказы; при заданном customer_id только заказы этого клиента.
func (s *OrderService) ListOrders(_ context.Context, req *omsv1.ListOrdersRequest) (*omsv1.ListOrdersResponse, error) {
	if req == nil {
		req = &omsv1.ListOrdersRequest{}
	}
	customerID, err := parseOptionalID("customer_id", req.GetCustomerId())
	if err != nil {
		return nil, err
	}
	limit := int(req.GetPageSize())
	if limit <= 0 {
		limit = defaultListOrdersLimit
	}

	views, err := s.orders.List(customerID, limit)
	if err != nil {
		return nil, toStatus(s.logger, "ListOrders", err)
	}

	result := make([]*omsv1.Order, 0, len(views))
	for _, view := range views {
		result = append(result, toProtoOrder(view))
	}
	return &omsv1.ListOrdersResponse{Orders: result}, nil
}

// AddOrderLine добавляет позицию по текущей цене товара.
func (s *OrderService) AddOrderLine(_ context.Context, req *omsv1.AddOrderLineRequest) (*omsv1.OrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	orderID, err := parseID("order_id", req.GetOrderId())
	if err != nil {
		return nil, err
	}
	productID, err := parseID("product_id", req.GetProductId())
	if err != nil {
		return nil, err
	}

	view, err := s.orders.AddLine(orderID, productID, int(req.GetQuantity()))
	if err != nil {
		return nil, toStatus(s.logger, "AddOrderLine", err)
	}
	return &omsv1.OrderResponse{Order: toProtoOrder(view)}, nil
}

// ChangeOrderLineQuantity меняет количество в позиции.
func (s *OrderService) ChangeOrderLineQuantity(_ context.Context, req *omsv1.ChangeOrderLineQuantityRequest) (*omsv1.OrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	orderID, err := parseID("order_id", req.GetOrderId())
	if err != nil {
		return nil, err
	}
	productID, err := parseID("product_id", req.GetProductId())
	if err != nil {
		return nil, err
	}

	view, err := s.orders.ChangeLineQuantity(orderID, productID, int(req.GetQuantity()))
	if err != nil {
		return nil, toStatus(s.logger, "ChangeOrderLineQuantity", err)
	}
	return &omsv1.OrderResponse{Order: toProtoOrder(view)}, nil
}

// RemoveOrderLine удаляет позицию.
func (s *OrderService) RemoveOrderLine(_ context.Context, req *omsv1.RemoveOrderLineRequest) (*omsv1.OrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	orderID, err := parseID("order_id", req.GetOrderId())
	if err != nil {
		return nil, err
	}
	productID, err := parseID("product_id", req.GetProductId())
	if err != nil {
		return nil, err
	}

	view, err := s.orders.RemoveLine(orderID, productID)
	if err != nil {
		return nil, toStatus(s.logger, "RemoveOrderLine", err)
	}
	return &omsv1.OrderResponse{Order: toProtoOrder(view)}, nil
}

// SetOrderCustomer меняет клиента черновика.
func (s *OrderService) SetOrderCustomer(_ context.Context, req *omsv1.SetOrderCustomerRequest) (*omsv1.OrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	orderID, err := parseID("order_id", req.GetOrderId())
	if err != nil {
		return nil, err
	}
	customerID, err := parseOptionalID("customer_id", req.GetCustomerId())
	if err != nil {
		return nil, err
	}

	view, err := s.orders.SetCustomer(orderID, customerID)
	if err != nil {
		return nil, toStatus(s.logger, "SetOrderCustomer", err)
	}
	return &omsv1.OrderResponse{Order: toProtoOrder(view)}, nil
}

// ConfirmOrder подтверждает заказ.
func (s *OrderService) ConfirmOrder(_ context.Context, req *omsv1.ConfirmOrderRequest) (*omsv1.OrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	orderID, err := parseID("order_id", req.GetOrderId())
	if err != nil {
		return nil, err
	}

	view, err := s.orders.Confirm(orderID)
	if err != nil {
		return nil, toStatus(s.logger, "ConfirmOrder", err)
	}
	return &omsv1.OrderResponse{Order: toProtoOrder(view)}, nil
}

// CancelOrder отменяет заказ.
func (s *OrderService) CancelOrder(_ context.Context, req *omsv1.CancelOrderRequest) (*omsv1.OrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	orderID, err := parseID("order_id", req.GetOrderId())
	if err != nil {
		return nil, err
	}

	view, err := s.orders.Cancel(orderID, req.GetReason())
	if err != nil {
		return nil, toStatus(s.logger, "CancelOrder", err)
	}
	return &omsv1.OrderResponse{Order: toProtoOrder(view)}, nil
}

// GetOrderHistory возвращает таймлайн заказа.
func (s *OrderService) GetOrderHistory(_ context.Context, req *omsv1.GetOrderHistoryRequest) (*omsv1.GetOrderHistoryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	orderID, err := parseID("order_id", req.GetOrderId())
	if err != nil {
		return nil, err
	}

	events, err := s.orders.History(orderID)
	if err != nil {
		return nil, toStatus(s.logger, "GetOrderHistory", err)
	}
	return &omsv1.GetOrderHistoryResponse{Events: toProtoTimeline(events)}, nil
}
