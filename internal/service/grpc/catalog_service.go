package grpcsvc

import (
	"context"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/ordering/internal/service/catalog"
	omsv1 "github.com/vladislavdragonenkov/ordering/proto/oms/v1"
)

// CatalogService реализует gRPC API каталога.
type CatalogService struct {
	omsv1.UnimplementedCatalogServiceServer

	catalog *catalog.Service
	logger  *log.Entry
}

// NewCatalogService конструирует транспортный адаптер каталога.
func NewCatalogService(svc *catalog.Service, logger *log.Entry) *CatalogService {
	if logger == nil {
		logger = log.New().WithField("component", "grpc-catalog-service")
	}
	return &CatalogService{catalog: svc, logger: logger}
}

func (s *CatalogService) CreateProduct(_ context.Context, req *omsv1.CreateProductRequest) (*omsv1.ProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "price is required")
	}
	price, err := parsePrice(req.GetPrice())
	if err != nil {
		return nil, err
	}
	supplierID, err := parseOptionalID("supplier_id", req.GetSupplierId())
	if err != nil {
		return nil, err
	}

	view, err := s.catalog.Create(price, supplierID)
	if err != nil {
		return nil, toStatus(s.logger, "CreateProduct", err)
	}
	return &omsv1.ProductResponse{Product: toProtoProduct(view)}, nil
}

func (s *CatalogService) GetProduct(_ context.Context, req *omsv1.GetProductRequest) (*omsv1.ProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	id, err := parseID("product_id", req.GetProductId())
	if err != nil {
		return nil, err
	}

	view, err := s.catalog.GetByID(id)
	if err != nil {
		return nil, toStatus(s.logger, "GetProduct", err)
	}
	return &omsv1.ProductResponse{Product: toProtoProduct(view)}, nil
}

func (s *CatalogService) ListProducts(context.Context, *omsv1.ListProductsRequest) (*omsv1.ListProductsResponse, error) {
	views, err := s.catalog.List()
	if err != nil {
		return nil, toStatus(s.logger, "ListProducts", err)
	}
	result := make([]*omsv1.Product, 0, len(views))
	for _, view := range views {
		result = append(result, toProtoProduct(view))
	}
	return &omsv1.ListProductsResponse{Products: result}, nil
}

func (s *CatalogService) ChangeProductPrice(_ context.Context, req *omsv1.ChangeProductPriceRequest) (*omsv1.ProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	id, err := parseID("product_id", req.GetProductId())
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(req.GetPrice())
	if err != nil {
		return nil, err
	}

	view, err := s.catalog.ChangePrice(id, price)
	if err != nil {
		return nil, toStatus(s.logger, "ChangeProductPrice", err)
	}
	return &omsv1.ProductResponse{Product: toProtoProduct(view)}, nil
}

func (s *CatalogService) ActivateProduct(_ context.Context, req *omsv1.ActivateProductRequest) (*omsv1.ProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	id, err := parseID("product_id", req.GetProductId())
	if err != nil {
		return nil, err
	}

	view, err := s.catalog.Activate(id)
	if err != nil {
		return nil, toStatus(s.logger, "ActivateProduct", err)
	}
	return &omsv1.ProductResponse{Product: toProtoProduct(view)}, nil
}

func (s *CatalogService) DeactivateProduct(_ context.Context, req *omsv1.DeactivateProductRequest) (*omsv1.ProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	id, err := parseID("product_id", req.GetProductId())
	if err != nil {
		return nil, err
	}

	view, err := s.catalog.Deactivate(id)
	if err != nil {
		return nil, toStatus(s.logger, "DeactivateProduct", err)
	}
	return &omsv1.ProductResponse{Product: toProtoProduct(view)}, nil
}

// parsePrice разбирает десятичную строку; проверка знака остаётся за доменом.
func parsePrice(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, status.Error(codes.InvalidArgument, "price is required")
	}
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "price %q is not a decimal", value)
	}
	return price, nil
}
