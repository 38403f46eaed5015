package grpcsvc

import (
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/service/catalog"
	"github.com/vladislavdragonenkov/ordering/internal/service/order"
	"github.com/vladislavdragonenkov/ordering/internal/service/party"
	omsv1 "github.com/vladislavdragonenkov/ordering/proto/oms/v1"
)

func toProtoOrder(view order.OrderView) *omsv1.Order {
	lines := make([]*omsv1.OrderLine, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, &omsv1.OrderLine{
			ProductId: line.ProductID.String(),
			Quantity:  int32(line.Quantity), //nolint:gosec // quantity arrives as int32 on the wire.
			UnitPrice: line.UnitPrice.String(),
			LineTotal: line.LineTotal.String(),
		})
	}

	return &omsv1.Order{
		Id:         view.ID.String(),
		CustomerId: idString(view.CustomerID),
		Status:     toProtoStatus(view.Status),
		Total:      view.Total.String(),
		Lines:      lines,
		Version:    view.Version,
		CreatedAt:  timestamppb.New(view.CreatedAt),
		UpdatedAt:  timestamppb.New(view.UpdatedAt),
	}
}

func toProtoStatus(status domain.OrderStatus) omsv1.OrderStatus {
	switch status {
	case domain.OrderStatusDraft:
		return omsv1.OrderStatus_ORDER_STATUS_DRAFT
	case domain.OrderStatusConfirmed:
		return omsv1.OrderStatus_ORDER_STATUS_CONFIRMED
	case domain.OrderStatusCancelled:
		return omsv1.OrderStatus_ORDER_STATUS_CANCELLED
	default:
		return omsv1.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

func toProtoTimeline(events []domain.TimelineEvent) []*omsv1.TimelineEvent {
	result := make([]*omsv1.TimelineEvent, 0, len(events))
	for _, event := range events {
		result = append(result, &omsv1.TimelineEvent{
			Type:       event.Type,
			Reason:     event.Reason,
			OccurredAt: timestamppb.New(event.Occurred),
		})
	}
	return result
}

func toProtoProduct(view catalog.ProductView) *omsv1.Product {
	return &omsv1.Product{
		Id:         view.ID.String(),
		Price:      view.Price.String(),
		Active:     view.Active,
		SupplierId: idString(view.SupplierID),
	}
}

func toProtoCustomer(view party.View) *omsv1.Customer {
	return &omsv1.Customer{
		Id:        view.ID.String(),
		Name:      view.Name,
		Email:     view.Email,
		Phone:     view.Phone,
		Address:   view.Address,
		Active:    view.Active,
		CreatedAt: timestamppb.New(view.CreatedAt),
	}
}

func toProtoSupplier(view party.View) *omsv1.Supplier {
	return &omsv1.Supplier{
		Id:        view.ID.String(),
		Name:      view.Name,
		Email:     view.Email,
		Phone:     view.Phone,
		Address:   view.Address,
		Active:    view.Active,
		CreatedAt: timestamppb.New(view.CreatedAt),
	}
}

func fromProtoContact(contact *omsv1.ContactInfo) party.ContactRequest {
	return party.ContactRequest{
		Name:    contact.GetName(),
		Email:   contact.GetEmail(),
		Phone:   contact.GetPhone(),
		Address: contact.GetAddress(),
	}
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
