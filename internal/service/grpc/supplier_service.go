package grpcsvc

import (
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/ordering/internal/service/party"
	omsv1 "github.com/vladislavdragonenkov/ordering/proto/oms/v1"
)

// SupplierService реализует gRPC API справочника поставщиков.
type SupplierService struct {
	omsv1.UnimplementedSupplierServiceServer

	suppliers *party.SupplierService
	logger    *log.Entry
}

// NewSupplierService конструирует транспортный адаптер поставщиков.
func NewSupplierService(svc *party.SupplierService, logger *log.Entry) *SupplierService {
	if logger == nil {
		logger = log.New().WithField("component", "grpc-supplier-service")
	}
	return &SupplierService{suppliers: svc, logger: logger}
}

func (s *SupplierService) CreateSupplier(_ context.Context, req *omsv1.CreateSupplierRequest) (*omsv1.SupplierResponse, error) {
	if req.GetContact() == nil {
		return nil, status.Error(codes.InvalidArgument, "contact is required")
	}

	view, err := s.suppliers.Create(fromProtoContact(req.GetContact()))
	if err != nil {
		return nil, toStatus(s.logger, "CreateSupplier", err)
	}
	return &omsv1.SupplierResponse{Supplier: toProtoSupplier(view)}, nil
}

func (s *SupplierService) GetSupplier(_ context.Context, req *omsv1.GetSupplierRequest) (*omsv1.SupplierResponse, error) {
	id, err := parseID("supplier_id", req.GetSupplierId())
	if err != nil {
		return nil, err
	}

	view, err := s.suppliers.GetByID(id)
	if err != nil {
		return nil, toStatus(s.logger, "GetSupplier", err)
	}
	return &omsv1.SupplierResponse{Supplier: toProtoSupplier(view)}, nil
}

func (s *SupplierService) ListSuppliers(context.Context, *omsv1.ListSuppliersRequest) (*omsv1.ListSuppliersResponse, error) {
	views, err := s.suppliers.List()
	if err != nil {
		return nil, toStatus(s.logger, "ListSuppliers", err)
	}
	result := make([]*omsv1.Supplier, 0, len(views))
	for _, view := range views {
		result = append(result, toProtoSupplier(view))
	}
	return &omsv1.ListSuppliersResponse{Suppliers: result}, nil
}

// UpdateSupplierContact заменяет контактные данные поставщика.
func (s *SupplierService) UpdateSupplierContact(_ context.Context, req *omsv1.UpdateSupplierContactRequest) (*omsv1.SupplierResponse, error) {
	id, err := parseID("supplier_id", req.GetSupplierId())
	if err != nil {
		return nil, err
	}
	if req.GetContact() == nil {
		return nil, status.Error(codes.InvalidArgument, "contact is required")
	}

	view, err := s.suppliers.UpdateContact(id, fromProtoContact(req.GetContact()))
	if err != nil {
		return nil, toStatus(s.logger, "UpdateSupplierContact", err)
	}
	return &omsv1.SupplierResponse{Supplier: toProtoSupplier(view)}, nil
}

func (s *SupplierService) DeleteSupplier(_ context.Context, req *omsv1.DeleteSupplierRequest) (*omsv1.DeleteSupplierResponse, error) {
	id, err := parseID("supplier_id", req.GetSupplierId())
	if err != nil {
		return nil, err
	}

	if err := s.suppliers.Delete(id); err != nil {
		return nil, toStatus(s.logger, "DeleteSupplier", err)
	}
	return &omsv1.DeleteSupplierResponse{}, nil
}

func (s *SupplierService) ActivateSupplier(_ context.Context, req *omsv1.ActivateSupplierRequest) (*omsv1.SupplierResponse, error) {
	id, err := parseID("supplier_id", req.GetSupplierId())
	if err != nil {
		return nil, err
	}

	view, err := s.suppliers.Activate(id)
	if err != nil {
		return nil, toStatus(s.logger, "ActivateSupplier", err)
	}
	return &omsv1.SupplierResponse{Supplier: toProtoSupplier(view)}, nil
}

func (s *SupplierService) DeactivateSupplier(_ context.Context, req *omsv1.DeactivateSupplierRequest) (*omsv1.SupplierResponse, error) {
	id, err := parseID("supplier_id", req.GetSupplierId())
	if err != nil {
		return nil, err
	}

	view, err := s.suppliers.Deactivate(id)
	if err != nil {
		return nil, toStatus(s.logger, "DeactivateSupplier", err)
	}
	return &omsv1.SupplierResponse{Supplier: toProtoSupplier(view)}, nil
}
