package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/ordering/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/ordering/internal/service/grpc"
	"github.com/vladislavdragonenkov/ordering/internal/service/order"
	"github.com/vladislavdragonenkov/ordering/internal/service/outbox"
	"github.com/vladislavdragonenkov/ordering/internal/service/party"
	"github.com/vladislavdragonenkov/ordering/internal/storage/memory"
	omsv1 "github.com/vladislavdragonenkov/ordering/proto/oms/v1"
)

// OrderLifecycleTestSuite прогоняет заказ через gRPC-адаптеры, сервисы и outbox до Kafka.
type OrderLifecycleTestSuite struct {
	suite.Suite

	orders    *grpcsvc.OrderService
	catalog   *grpcsvc.CatalogService
	customers *grpcsvc.CustomerService
	suppliers *grpcsvc.SupplierService
	outbox   domain.OutboxRepository
	producer  *mocks.SyncProducer
	worker    *outbox.Worker
	logger    *log.Entry
}

func (s *OrderLifecycleTestSuite) SetupTest() {
	base := log.New()
	base.SetLevel(log.WarnLevel)
	s.logger = base.WithField("component", "integration-test")

	products := memory.NewProductRepository()
	customers := memory.NewCustomerRepository()
	suppliers := memory.NewSupplierRepository()
	s.outbox = memory.NewOutboxRepository()

	catalogSvc := catalog.NewService(products,
		catalog.WithSuppliers(suppliers),
		catalog.WithOutbox(s.outbox),
		catalog.WithLogger(s.logger),
	)
	orderSvc := order.NewService(
		memory.NewOrderRepository(),
		products,
		order.WithCustomers(customers),
		order.WithTimeline(memory.NewTimelineRepository()),
		order.WithOutbox(s.outbox),
		order.WithLogger(s.logger),
	)
	s.orders = grpcsvc.NewOrderService(orderSvc, s.logger)
	s.catalog = grpcsvc.NewCatalogService(catalogSvc, s.logger)
	s.customers = grpcsvc.NewCustomerService(
		party.NewCustomerService(customers, party.WithOutbox(s.outbox), party.WithLogger(s.logger)), s.logger)
	s.suppliers = grpcsvc.NewSupplierService(
		party.NewSupplierService(suppliers, party.WithOutbox(s.outbox), party.WithLogger(s.logger)), s.logger)

	s.producer = mocks.NewSyncProducer(s.T(), nil)
	publisher := kafka.NewOutboxPublisher(kafka.NewProducerWith(s.producer, s.logger), "")
	s.worker = outbox.NewWorker(s.outbox, publisher, outbox.WithLogger(s.logger), outbox.WithMaxAttempts(1))
}

func (s *OrderLifecycleTestSuite) TearDownTest() {
	s.NoError(s.producer.Close())
}

func (s *OrderLifecycleTestSuite) createProduct(price string) string {
	resp, err := s.catalog.CreateProduct(context.Background(), &omsv1.CreateProductRequest{Price: price})
	s.Require().NoError(err)
	return resp.Product.Id
}

func (s *OrderLifecycleTestSuite) createOrder() string {
	resp, err := s.orders.CreateOrder(context.Background(), &omsv1.CreateOrderRequest{})
	s.Require().NoError(err)
	s.Require().Equal(omsv1.OrderStatus_ORDER_STATUS_DRAFT, resp.Order.Status)
	return resp.Order.Id
}

// expectTopics ожидает публикацию сообщений в указанные topics в заданном порядке.
func (s *OrderLifecycleTestSuite) expectTopics(topics ...string) {
	for _, topic := range topics {
		want := topic
		s.producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			if msg.Topic != want {
				return fmt.Errorf("unexpected topic %s, want %s", msg.Topic, want)
			}
			return nil
		})
	}
}

func (s *OrderLifecycleTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	s.Require().Equal(code, status.Code(err), err.Error())
}

func (s *OrderLifecycleTestSuite) TestConfirmedOrderLifecycle() {
	ctx := context.Background()
	productID := s.createProduct("10.50")
	orderID := s.createOrder()

	resp, err := s.orders.AddOrderLine(ctx, &omsv1.AddOrderLineRequest{OrderId: orderID, ProductId: productID, Quantity: 3})
	s.Require().NoError(err)
	s.Equal("31.5", resp.Order.Total)

	resp, err = s.orders.ChangeOrderLineQuantity(ctx, &omsv1.ChangeOrderLineQuantityRequest{OrderId: orderID, ProductId: productID, Quantity: 2})
	s.Require().NoError(err)
	s.Equal("21", resp.Order.Total)

	resp, err = s.orders.ConfirmOrder(ctx, &omsv1.ConfirmOrderRequest{OrderId: orderID})
	s.Require().NoError(err)
	s.Equal(omsv1.OrderStatus_ORDER_STATUS_CONFIRMED, resp.Order.Status)

	_, err = s.orders.AddOrderLine(ctx, &omsv1.AddOrderLineRequest{OrderId: orderID, ProductId: productID, Quantity: 1})
	s.requireCode(err, codes.FailedPrecondition)

	history, err := s.orders.GetOrderHistory(ctx, &omsv1.GetOrderHistoryRequest{OrderId: orderID})
	s.Require().NoError(err)
	types := make([]string, 0, len(history.Events))
	for _, event := range history.Events {
		types = append(types, event.Type)
	}
	s.Equal([]string{
		domain.EventOrderCreated,
		domain.EventOrderLineAdded,
		domain.EventOrderLineChanged,
		domain.EventOrderConfirmed,
	}, types)

	s.expectTopics(
		kafka.TopicCatalogEvents,
		kafka.TopicOrderEvents,
		kafka.TopicOrderEvents,
		kafka.TopicOrderEvents,
		kafka.TopicOrderEvents,
	)
	s.worker.ProcessOnce(ctx)

	stats, err := s.outbox.Stats()
	s.Require().NoError(err)
	s.Zero(stats.PendingCount)
}

func (s *OrderLifecycleTestSuite) TestCancelConfirmedOrder() {
	ctx := context.Background()
	productID := s.createProduct("5")
	orderID := s.createOrder()

	_, err := s.orders.AddOrderLine(ctx, &omsv1.AddOrderLineRequest{OrderId: orderID, ProductId: productID, Quantity: 1})
	s.Require().NoError(err)
	_, err = s.orders.ConfirmOrder(ctx, &omsv1.ConfirmOrderRequest{OrderId: orderID})
	s.Require().NoError(err)

	resp, err := s.orders.CancelOrder(ctx, &omsv1.CancelOrderRequest{OrderId: orderID, Reason: "customer changed mind"})
	s.Require().NoError(err)
	s.Equal(omsv1.OrderStatus_ORDER_STATUS_CANCELLED, resp.Order.Status)

	// Повторная отмена не меняет состояние.
	resp, err = s.orders.CancelOrder(ctx, &omsv1.CancelOrderRequest{OrderId: orderID})
	s.Require().NoError(err)
	s.Equal(omsv1.OrderStatus_ORDER_STATUS_CANCELLED, resp.Order.Status)

	_, err = s.orders.ConfirmOrder(ctx, &omsv1.ConfirmOrderRequest{OrderId: orderID})
	s.requireCode(err, codes.FailedPrecondition)

	history, err := s.orders.GetOrderHistory(ctx, &omsv1.GetOrderHistoryRequest{OrderId: orderID})
	s.Require().NoError(err)
	last := history.Events[len(history.Events)-1]
	s.Equal(domain.EventOrderCancelled, last.Type)
	s.Equal("customer changed mind", last.Reason)

	pending, err := s.outbox.PullPending(0)
	s.Require().NoError(err)
	var payload order.EventPayload
	s.Require().NoError(json.Unmarshal(pending[len(pending)-1].Payload, &payload))
	s.Equal(domain.EventOrderCancelled, payload.EventType)
	s.Equal(string(domain.OrderStatusCancelled), payload.Status)

	s.expectTopics(kafka.TopicCatalogEvents)
	for range pending[1:] {
		s.expectTopics(kafka.TopicOrderEvents)
	}
	s.worker.ProcessOnce(ctx)
}

func (s *OrderLifecycleTestSuite) TestValidationAndRules() {
	ctx := context.Background()
	productID := s.createProduct("2")
	orderID := s.createOrder()

	_, err := s.orders.ConfirmOrder(ctx, &omsv1.ConfirmOrderRequest{OrderId: orderID})
	s.requireCode(err, codes.FailedPrecondition)

	_, err = s.orders.AddOrderLine(ctx, &omsv1.AddOrderLineRequest{OrderId: orderID, ProductId: productID, Quantity: 0})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.orders.AddOrderLine(ctx, &omsv1.AddOrderLineRequest{OrderId: "not-a-uuid", ProductId: productID, Quantity: 1})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.orders.GetOrder(ctx, &omsv1.GetOrderRequest{OrderId: "3f0b7c1e-2a4d-4b8e-9c6f-1d2e3f4a5b6c"})
	s.requireCode(err, codes.NotFound)

	_, err = s.orders.AddOrderLine(ctx, &omsv1.AddOrderLineRequest{OrderId: orderID, ProductId: productID, Quantity: 1})
	s.Require().NoError(err)
	_, err = s.orders.AddOrderLine(ctx, &omsv1.AddOrderLineRequest{OrderId: orderID, ProductId: productID, Quantity: 1})
	s.requireCode(err, codes.FailedPrecondition)

	_, err = s.catalog.DeactivateProduct(ctx, &omsv1.DeactivateProductRequest{ProductId: productID})
	s.Require().NoError(err)
	_, err = s.orders.RemoveOrderLine(ctx, &omsv1.RemoveOrderLineRequest{OrderId: orderID, ProductId: productID})
	s.Require().NoError(err)
	_, err = s.orders.AddOrderLine(ctx, &omsv1.AddOrderLineRequest{OrderId: orderID, ProductId: productID, Quantity: 1})
	s.requireCode(err, codes.FailedPrecondition)

	_, err = s.catalog.CreateProduct(ctx, &omsv1.CreateProductRequest{Price: "0"})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *OrderLifecycleTestSuite) TestListOrdersByCustomer() {
	ctx := context.Background()
	customer, err := s.customers.CreateCustomer(ctx, &omsv1.CreateCustomerRequest{
		Contact: &omsv1.ContactInfo{Name: "Buyer", Email: "buyer@example.com"},
	})
	s.Require().NoError(err)
	customerID := customer.GetCustomer().GetId()

	for i := 0; i < 3; i++ {
		_, err := s.orders.CreateOrder(ctx, &omsv1.CreateOrderRequest{CustomerId: customerID})
		s.Require().NoError(err)
	}
	anonymous := s.createOrder()

	resp, err := s.orders.ListOrders(ctx, &omsv1.ListOrdersRequest{CustomerId: customerID, PageSize: 2})
	s.Require().NoError(err)
	s.Len(resp.Orders, 2)
	for _, o := range resp.Orders {
		s.Equal(customerID, o.CustomerId)
	}

	assigned, err := s.orders.SetOrderCustomer(ctx, &omsv1.SetOrderCustomerRequest{OrderId: anonymous, CustomerId: customerID})
	s.Require().NoError(err)
	s.Equal(customerID, assigned.Order.CustomerId)

	resp, err = s.orders.ListOrders(ctx, &omsv1.ListOrdersRequest{CustomerId: customerID})
	s.Require().NoError(err)
	s.Len(resp.Orders, 4)

	pending, err := s.outbox.PullPending(0)
	s.Require().NoError(err)
	s.expectTopics(kafka.TopicPartyEvents)
	for range pending[1:] {
		s.expectTopics(kafka.TopicOrderEvents)
	}
	s.worker.ProcessOnce(ctx)
}

func (s *OrderLifecycleTestSuite) TestCustomerAndSupplierDirectory() {
	ctx := context.Background()

	supplier, err := s.suppliers.CreateSupplier(ctx, &omsv1.CreateSupplierRequest{
		Contact: &omsv1.ContactInfo{Name: "Acme", Email: "sales@acme.example"},
	})
	s.Require().NoError(err)
	supplierID := supplier.GetSupplier().GetId()
	s.True(supplier.GetSupplier().GetActive())

	product, err := s.catalog.CreateProduct(ctx, &omsv1.CreateProductRequest{Price: "3", SupplierId: supplierID})
	s.Require().NoError(err)
	s.Equal(supplierID, product.GetProduct().GetSupplierId())

	_, err = s.suppliers.DeactivateSupplier(ctx, &omsv1.DeactivateSupplierRequest{SupplierId: supplierID})
	s.Require().NoError(err)
	_, err = s.catalog.CreateProduct(ctx, &omsv1.CreateProductRequest{Price: "3", SupplierId: supplierID})
	s.requireCode(err, codes.FailedPrecondition)

	customer, err := s.customers.CreateCustomer(ctx, &omsv1.CreateCustomerRequest{
		Contact: &omsv1.ContactInfo{Name: "Buyer", Email: "buyer@example.com"},
	})
	s.Require().NoError(err)
	customerID := customer.GetCustomer().GetId()

	updated, err := s.customers.UpdateCustomerContact(ctx, &omsv1.UpdateCustomerContactRequest{
		CustomerId: customerID,
		Contact:    &omsv1.ContactInfo{Name: "Buyer", Email: "buyer@example.org", Phone: "+100"},
	})
	s.Require().NoError(err)
	s.Equal("buyer@example.org", updated.GetCustomer().GetEmail())

	_, err = s.customers.UpdateCustomerContact(ctx, &omsv1.UpdateCustomerContactRequest{
		CustomerId: customerID,
		Contact:    &omsv1.ContactInfo{Name: "Buyer", Email: "not-an-email"},
	})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.customers.DeleteCustomer(ctx, &omsv1.DeleteCustomerRequest{CustomerId: customerID})
	s.Require().NoError(err)
	_, err = s.customers.GetCustomer(ctx, &omsv1.GetCustomerRequest{CustomerId: customerID})
	s.requireCode(err, codes.NotFound)
	_, err = s.orders.CreateOrder(ctx, &omsv1.CreateOrderRequest{CustomerId: customerID})
	s.requireCode(err, codes.NotFound)

	pending, err := s.outbox.PullPending(0)
	s.Require().NoError(err)
	s.Require().Len(pending, 6)
	var payload party.EventPayload
	s.Require().NoError(json.Unmarshal(pending[len(pending)-1].Payload, &payload))
	s.Equal(domain.EventCustomerDeleted, payload.EventType)
	s.Equal(customerID, payload.ID)

	s.expectTopics(
		kafka.TopicPartyEvents,
		kafka.TopicCatalogEvents,
		kafka.TopicPartyEvents,
		kafka.TopicPartyEvents,
		kafka.TopicPartyEvents,
		kafka.TopicPartyEvents,
	)
	s.worker.ProcessOnce(ctx)
}

func TestOrderLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(OrderLifecycleTestSuite))
}
