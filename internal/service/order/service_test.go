package order_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/metrics"
	"github.com/vladislavdragonenkov/ordering/internal/service/order"
	"github.com/vladislavdragonenkov/ordering/internal/storage/memory"
)

type fixture struct {
	svc      *order.Service
	orders   domain.OrderRepository
	products domain.ProductRepository
	timeline domain.TimelineRepository
	outbox   domain.OutboxRepository
}

func newFixture(t *testing.T, opts ...order.Option) fixture {
	t.Helper()

	f := fixture{
		orders:   memory.NewOrderRepository(),
		products: memory.NewProductRepository(),
		timeline: memory.NewTimelineRepository(),
		outbox:   memory.NewOutboxRepository(),
	}
	base := []order.Option{
		order.WithTimeline(f.timeline),
		order.WithOutbox(f.outbox),
		order.WithMetrics(metrics.NewServiceMetricsWithRegisterer(prometheus.NewRegistry())),
	}
	f.svc = order.NewService(f.orders, f.products, append(base, opts...)...)
	return f
}

func (f fixture) addProduct(t *testing.T, price string) *domain.Product {
	t.Helper()

	product, err := domain.NewProduct(uuid.Nil, domain.MustPrice(price), nil)
	require.NoError(t, err)
	require.NoError(t, f.products.Add(product))
	return product
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	customer := uuid.New()

	view, err := f.svc.Create(&customer)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, view.ID)
	require.Equal(t, domain.OrderStatusDraft, view.Status)
	require.Empty(t, view.Lines)
	require.True(t, view.Total.IsZero())
	require.NotNil(t, view.CustomerID)
	require.Equal(t, customer, *view.CustomerID)

	got, err := f.svc.GetByID(view.ID)
	require.NoError(t, err)
	require.Equal(t, view.ID, got.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByID(uuid.New())
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestAddLine_SnapshotsProductPrice(t *testing.T) {
	f := newFixture(t)
	product := f.addProduct(t, "10.00")

	created, err := f.svc.Create(nil)
	require.NoError(t, err)

	view, err := f.svc.AddLine(created.ID, product.ID(), 3)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	require.True(t, view.Total.Equal(dec("30")))

	require.NoError(t, product.ChangePrice(domain.MustPrice("99")))
	require.NoError(t, f.products.Save(product))

	got, err := f.svc.GetByID(created.ID)
	require.NoError(t, err)
	require.True(t, got.Lines[0].UnitPrice.Equal(dec("10")), "line keeps the price captured at add time")
	require.True(t, got.Total.Equal(dec("30")))
}

func TestAddLine_Failures(t *testing.T) {
	f := newFixture(t)
	active := f.addProduct(t, "5")
	inactive := f.addProduct(t, "7")
	inactive.Deactivate()
	require.NoError(t, f.products.Save(inactive))

	created, err := f.svc.Create(nil)
	require.NoError(t, err)

	_, err = f.svc.AddLine(uuid.New(), active.ID(), 1)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = f.svc.AddLine(created.ID, uuid.New(), 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = f.svc.AddLine(created.ID, inactive.ID(), 1)
	require.ErrorIs(t, err, domain.ErrInactiveProduct)

	_, err = f.svc.AddLine(created.ID, active.ID(), 0)
	require.ErrorIs(t, err, domain.ErrInvalidLine)

	got, err := f.svc.GetByID(created.ID)
	require.NoError(t, err)
	require.Empty(t, got.Lines, "rejected operations must not mutate the order")
	require.Equal(t, created.Version, got.Version)

	_, err = f.svc.AddLine(created.ID, active.ID(), 1)
	require.NoError(t, err)
	_, err = f.svc.AddLine(created.ID, active.ID(), 2)
	require.ErrorIs(t, err, domain.ErrDuplicateLine)
}

func TestChangeAndRemoveLine(t *testing.T) {
	f := newFixture(t)
	first := f.addProduct(t, "2.50")
	second := f.addProduct(t, "1.25")

	created, err := f.svc.Create(nil)
	require.NoError(t, err)
	_, err = f.svc.AddLine(created.ID, first.ID(), 2)
	require.NoError(t, err)
	_, err = f.svc.AddLine(created.ID, second.ID(), 4)
	require.NoError(t, err)

	view, err := f.svc.ChangeLineQuantity(created.ID, first.ID(), 5)
	require.NoError(t, err)
	require.Equal(t, first.ID(), view.Lines[0].ProductID, "line keeps its position")
	require.Equal(t, 5, view.Lines[0].Quantity)
	require.True(t, view.Total.Equal(dec("17.5")))

	_, err = f.svc.ChangeLineQuantity(created.ID, first.ID(), -1)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.svc.ChangeLineQuantity(created.ID, uuid.New(), 1)
	require.ErrorIs(t, err, domain.ErrLineNotFound)

	view, err = f.svc.RemoveLine(created.ID, first.ID())
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	require.True(t, view.Total.Equal(dec("5")))

	_, err = f.svc.RemoveLine(created.ID, first.ID())
	require.ErrorIs(t, err, domain.ErrLineNotFound)
}

func TestConfirm(t *testing.T) {
	f := newFixture(t)
	product := f.addProduct(t, "3")

	created, err := f.svc.Create(nil)
	require.NoError(t, err)

	_, err = f.svc.Confirm(created.ID)
	require.ErrorIs(t, err, domain.ErrEmptyOrder)

	_, err = f.svc.AddLine(created.ID, product.ID(), 1)
	require.NoError(t, err)

	view, err := f.svc.Confirm(created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusConfirmed, view.Status)

	_, err = f.svc.Confirm(created.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.svc.AddLine(created.ID, f.addProduct(t, "1").ID(), 1)
	require.ErrorIs(t, err, domain.ErrNotMutable)
}

func TestCancel_Policies(t *testing.T) {
	tests := []struct {
		name    string
		policy  domain.CancelPolicy
		wantErr error
	}{
		{name: "allow confirmed", policy: domain.CancelAllowConfirmed},
		{name: "draft only", policy: domain.CancelDraftOnly, wantErr: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, order.WithCancelPolicy(tt.policy))
			product := f.addProduct(t, "1")

			created, err := f.svc.Create(nil)
			require.NoError(t, err)
			_, err = f.svc.AddLine(created.ID, product.ID(), 1)
			require.NoError(t, err)
			_, err = f.svc.Confirm(created.ID)
			require.NoError(t, err)

			view, err := f.svc.Cancel(created.ID, "changed mind")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, domain.OrderStatusCancelled, view.Status)
		})
	}
}

func TestCancel_IsIdempotent(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(nil)
	require.NoError(t, err)

	first, err := f.svc.Cancel(created.ID, "")
	require.NoError(t, err)
	second, err := f.svc.Cancel(created.ID, "")
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusCancelled, second.Status)
	require.Equal(t, first.Version, second.Version, "repeated cancel must not save")

	history, err := f.svc.History(created.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, domain.EventOrderCancelled, history[1].Type)
}

func TestSetCustomer(t *testing.T) {
	f := newFixture(t)
	customer := uuid.New()

	created, err := f.svc.Create(nil)
	require.NoError(t, err)

	view, err := f.svc.SetCustomer(created.ID, &customer)
	require.NoError(t, err)
	require.Equal(t, customer, *view.CustomerID)

	_, err = f.svc.Cancel(created.ID, "")
	require.NoError(t, err)
	_, err = f.svc.SetCustomer(created.ID, nil)
	require.ErrorIs(t, err, domain.ErrNotMutable)
}

func TestList(t *testing.T) {
	f := newFixture(t)
	customer := uuid.New()

	_, err := f.svc.Create(&customer)
	require.NoError(t, err)
	_, err = f.svc.Create(&customer)
	require.NoError(t, err)
	_, err = f.svc.Create(nil)
	require.NoError(t, err)

	all, err := f.svc.List(nil, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	mine, err := f.svc.List(&customer, 0)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	limited, err := f.svc.List(nil, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestMutationsRecordTimelineAndOutbox(t *testing.T) {
	f := newFixture(t)
	product := f.addProduct(t, "4")

	created, err := f.svc.Create(nil)
	require.NoError(t, err)
	_, err = f.svc.AddLine(created.ID, product.ID(), 2)
	require.NoError(t, err)
	_, err = f.svc.Confirm(created.ID)
	require.NoError(t, err)

	history, err := f.svc.History(created.ID)
	require.NoError(t, err)
	types := make([]string, 0, len(history))
	for _, event := range history {
		types = append(types, event.Type)
	}
	require.Equal(t, []string{domain.EventOrderCreated, domain.EventOrderLineAdded, domain.EventOrderConfirmed}, types)

	pending, err := f.outbox.PullPending(10)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	require.Equal(t, domain.EventOrderConfirmed, pending[2].EventType)
	require.Equal(t, created.ID.String(), pending[2].AggregateID)

	var payload order.EventPayload
	require.NoError(t, json.Unmarshal(pending[1].Payload, &payload))
	require.Equal(t, product.ID().String(), payload.ProductID)
	require.Equal(t, 2, payload.Quantity)
	require.Equal(t, "8", payload.Total)
}

func TestHistory_UnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.History(uuid.New())
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

type failingTimeline struct{}

func (failingTimeline) Append(domain.TimelineEvent) error { return errors.New("timeline unavailable") }
func (failingTimeline) List(string) ([]domain.TimelineEvent, error) {
	return nil, errors.New("timeline unavailable")
}

func TestTimelineFailureDoesNotFailMutation(t *testing.T) {
	f := newFixture(t, order.WithTimeline(failingTimeline{}))

	view, err := f.svc.Create(nil)
	require.NoError(t, err)

	got, err := f.svc.GetByID(view.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusDraft, got.Status)
}

func TestVersionAdvancesOnSave(t *testing.T) {
	f := newFixture(t)
	product := f.addProduct(t, "1")

	created, err := f.svc.Create(nil)
	require.NoError(t, err)
	view, err := f.svc.AddLine(created.ID, product.ID(), 1)
	require.NoError(t, err)
	require.Equal(t, created.Version+1, view.Version)
}

// conflictingOrders отклоняет любое сохранение, имитируя параллельную запись.
type conflictingOrders struct {
	domain.OrderRepository
}

func (conflictingOrders) Save(*domain.Order) error { return domain.ErrOrderVersionConflict }

func TestRejectedSaveRecordsNothing(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := newFixture(t, order.WithMetrics(metrics.NewServiceMetricsWithRegisterer(reg)))
	product := f.addProduct(t, "3")

	created, err := f.svc.Create(nil)
	require.NoError(t, err)
	_, err = f.svc.AddLine(created.ID, product.ID(), 1)
	require.NoError(t, err)

	svc := order.NewService(conflictingOrders{f.orders}, f.products,
		order.WithTimeline(f.timeline),
		order.WithOutbox(f.outbox),
		order.WithMetrics(metrics.NewServiceMetricsWithRegisterer(reg)),
	)

	_, err = svc.AddLine(created.ID, f.addProduct(t, "5").ID(), 1)
	require.ErrorIs(t, err, domain.ErrOrderVersionConflict)
	_, err = svc.Confirm(created.ID)
	require.ErrorIs(t, err, domain.ErrOrderVersionConflict)
	_, err = svc.Cancel(created.ID, "")
	require.ErrorIs(t, err, domain.ErrOrderVersionConflict)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}
			key := family.GetName()
			for _, label := range metric.GetLabel() {
				if label.GetName() == "status" {
					key += "/" + label.GetValue()
				}
			}
			values[key] += metric.GetCounter().GetValue()
		}
	}
	require.Equal(t, float64(1), values["oms_order_lines_added_total"])
	require.Equal(t, float64(1), values["oms_order_transitions_total/draft"])
	require.Zero(t, values["oms_order_transitions_total/confirmed"])
	require.Zero(t, values["oms_order_transitions_total/cancelled"])

	history, err := f.svc.History(created.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	pending, err := f.outbox.PullPending(10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
}

func TestCustomerChecks(t *testing.T) {
	customers := memory.NewCustomerRepository()
	f := newFixture(t, order.WithCustomers(customers))

	contact, err := domain.NewContactInfo("Acme", "buyer@acme.test", "", "")
	require.NoError(t, err)
	active, err := domain.NewCustomer(uuid.Nil, contact)
	require.NoError(t, err)
	require.NoError(t, customers.Add(active))
	inactive, err := domain.NewCustomer(uuid.Nil, contact)
	require.NoError(t, err)
	inactive.Deactivate()
	require.NoError(t, customers.Add(inactive))

	unknown := uuid.New()
	_, err = f.svc.Create(&unknown)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)

	inactiveID := inactive.ID()
	_, err = f.svc.Create(&inactiveID)
	require.ErrorIs(t, err, domain.ErrInactiveCustomer)

	activeID := active.ID()
	view, err := f.svc.Create(&activeID)
	require.NoError(t, err)

	_, err = f.svc.SetCustomer(view.ID, &inactiveID)
	require.ErrorIs(t, err, domain.ErrInactiveCustomer)

	updated, err := f.svc.SetCustomer(view.ID, nil)
	require.NoError(t, err)
	require.Nil(t, updated.CustomerID)
}
