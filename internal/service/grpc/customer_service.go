package grpcsvc

import (
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/ordering/internal/service/party"
	omsv1 "github.com/vladislavdragonenkov/ordering/proto/oms/v1"
)

// CustomerService реализует gRPC API справочника клиентов.
type CustomerService struct {
	omsv1.UnimplementedCustomerServiceServer

	customers *party.CustomerService
	logger    *log.Entry
}

// NewCustomerService конструирует транспортный адаптер клиентов.
func NewCustomerService(svc *party.CustomerService, logger *log.Entry) *CustomerService {
	if logger == nil {
		logger = log.New().WithField("component", "grpc-customer-service")
	}
	return &CustomerService{customers: svc, logger: logger}
}

func (s *CustomerService) CreateCustomer(_ context.Context, req *omsv1.CreateCustomerRequest) (*omsv1.CustomerResponse, error) {
	if req.GetContact() == nil {
		return nil, status.Error(codes.InvalidArgument, "contact is required")
	}

	view, err := s.customers.Create(fromProtoContact(req.GetContact()))
	if err != nil {
		return nil, toStatus(s.logger, "CreateCustomer", err)
	}
	return &omsv1.CustomerResponse{Customer: toProtoCustomer(view)}, nil
}

func (s *CustomerService) GetCustomer(_ context.Context, req *omsv1.GetCustomerRequest) (*omsv1.CustomerResponse, error) {
	id, err := parseID("customer_id", req.GetCustomerId())
	if err != nil {
		return nil, err
	}

	view, err := s.customers.GetByID(id)
	if err != nil {
		return nil, toStatus(s.logger, "GetCustomer", err)
	}
	return &omsv1.CustomerResponse{Customer: toProtoCustomer(view)}, nil
}

func (s *CustomerService) ListCustomers(context.Context, *omsv1.ListCustomersRequest) (*omsv1.ListCustomersResponse, error) {
	views, err := s.customers.List()
	if err != nil {
		return nil, toStatus(s.logger, "ListCustomers", err)
	}
	result := make([]*omsv1.Customer, 0, len(views))
	for _, view := range views {
		result = append(result, toProtoCustomer(view))
	}
	return &omsv1.ListCustomersResponse{Customers: result}, nil
}

// UpdateCustomerContact заменяет контактные данные клиента.
func (s *CustomerService) UpdateCustomerContact(_ context.Context, req *omsv1.UpdateCustomerContactRequest) (*omsv1.CustomerResponse, error) {
	id, err := parseID("customer_id", req.GetCustomerId())
	if err != nil {
		return nil, err
	}
	if req.GetContact() == nil {
		return nil, status.Error(codes.InvalidArgument, "contact is required")
	}

	view, err := s.customers.UpdateContact(id, fromProtoContact(req.GetContact()))
	if err != nil {
		return nil, toStatus(s.logger, "UpdateCustomerContact", err)
	}
	return &omsv1.CustomerResponse{Customer: toProtoCustomer(view)}, nil
}

func (s *CustomerService) DeleteCustomer(_ context.Context, req *omsv1.DeleteCustomerRequest) (*omsv1.DeleteCustomerResponse, error) {
	id, err := parseID("customer_id", req.GetCustomerId())
	if err != nil {
		return nil, err
	}

	if err := s.customers.Delete(id); err != nil {
		return nil, toStatus(s.logger, "DeleteCustomer", err)
	}
	return &omsv1.DeleteCustomerResponse{}, nil
}

func (s *CustomerService) ActivateCustomer(_ context.Context, req *omsv1.ActivateCustomerRequest) (*omsv1.CustomerResponse, error) {
	id, err := parseID("customer_id", req.GetCustomerId())
	if err != nil {
		return nil, err
	}

	view, err := s.customers.Activate(id)
	if err != nil {
		return nil, toStatus(s.logger, "ActivateCustomer", err)
	}
	return &omsv1.CustomerResponse{Customer: toProtoCustomer(view)}, nil
}

func (s *CustomerService) DeactivateCustomer(_ context.Context, req *omsv1.DeactivateCustomerRequest) (*omsv1.CustomerResponse, error) {
	id, err := parseID("customer_id", req.GetCustomerId())
	if err != nil {
		return nil, err
	}

	view, err := s.customers.Deactivate(id)
	if err != nil {
		return nil, toStatus(s.logger, "DeactivateCustomer", err)
	}
	return &omsv1.CustomerResponse{Customer: toProtoCustomer(view)}, nil
}
