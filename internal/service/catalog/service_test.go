package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/metrics"
	"github.com/vladislavdragonenkov/ordering/internal/service/catalog"
	"github.com/vladislavdragonenkov/ordering/internal/storage/memory"
)

func newService(t *testing.T) (*catalog.Service, domain.OutboxRepository) {
	t.Helper()

	outbox := memory.NewOutboxRepository()
	svc := catalog.NewService(
		memory.NewProductRepository(),
		catalog.WithOutbox(outbox),
		catalog.WithMetrics(metrics.NewServiceMetricsWithRegisterer(prometheus.NewRegistry())),
	)
	return svc, outbox
}

func TestCreateAndGet(t *testing.T) {
	svc, outbox := newService(t)
	supplier := uuid.New()

	view, err := svc.Create(decimal.RequireFromString("19.90"), &supplier)
	require.NoError(t, err)
	require.True(t, view.Active)
	require.True(t, view.Price.Equal(decimal.RequireFromString("19.9")))
	require.Equal(t, supplier, *view.SupplierID)

	got, err := svc.GetByID(view.ID)
	require.NoError(t, err)
	require.Equal(t, view.ID, got.ID)

	pending, err := outbox.PullPending(10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, domain.AggregateTypeProduct, pending[0].AggregateType)

	var payload catalog.EventPayload
	require.NoError(t, json.Unmarshal(pending[0].Payload, &payload))
	require.Equal(t, "19.9", payload.Price)
	require.Equal(t, supplier.String(), payload.SupplierID)
}

func TestCreate_InvalidPrice(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(decimal.Zero, nil)
	require.ErrorIs(t, err, domain.ErrInvalidValue)

	_, err = svc.Create(decimal.NewFromInt(-1), nil)
	require.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.GetByID(uuid.New())
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestChangePrice(t *testing.T) {
	svc, _ := newService(t)

	view, err := svc.Create(decimal.NewFromInt(10), nil)
	require.NoError(t, err)

	updated, err := svc.ChangePrice(view.ID, decimal.NewFromInt(12))
	require.NoError(t, err)
	require.True(t, updated.Price.Equal(decimal.NewFromInt(12)))

	_, err = svc.ChangePrice(view.ID, decimal.Zero)
	require.ErrorIs(t, err, domain.ErrInvalidValue)

	_, err = svc.Deactivate(view.ID)
	require.NoError(t, err)
	_, err = svc.ChangePrice(view.ID, decimal.NewFromInt(15))
	require.ErrorIs(t, err, domain.ErrInactiveProduct)

	reactivated, err := svc.Activate(view.ID)
	require.NoError(t, err)
	require.True(t, reactivated.Active)
	require.True(t, reactivated.Price.Equal(decimal.NewFromInt(12)))
}

func TestList_KeepsInsertionOrder(t *testing.T) {
	svc, _ := newService(t)

	first, err := svc.Create(decimal.NewFromInt(1), nil)
	require.NoError(t, err)
	second, err := svc.Create(decimal.NewFromInt(2), nil)
	require.NoError(t, err)

	views, err := svc.List()
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, first.ID, views[0].ID)
	require.Equal(t, second.ID, views[1].ID)
}

func TestCreate_ChecksSupplier(t *testing.T) {
	suppliers := memory.NewSupplierRepository()
	svc := catalog.NewService(memory.NewProductRepository(), catalog.WithSuppliers(suppliers))

	contact, err := domain.NewContactInfo("Parts Ltd", "sales@parts.test", "", "")
	require.NoError(t, err)
	supplier, err := domain.NewSupplier(uuid.Nil, contact)
	require.NoError(t, err)
	require.NoError(t, suppliers.Add(supplier))

	unknown := uuid.New()
	_, err = svc.Create(decimal.NewFromInt(5), &unknown)
	require.ErrorIs(t, err, domain.ErrSupplierNotFound)

	id := supplier.ID()
	view, err := svc.Create(decimal.NewFromInt(5), &id)
	require.NoError(t, err)
	require.Equal(t, id, *view.SupplierID)

	supplier.Deactivate()
	require.NoError(t, suppliers.Save(supplier))
	_, err = svc.Create(decimal.NewFromInt(5), &id)
	require.ErrorIs(t, err, domain.ErrInactiveSupplier)

	_, err = svc.Create(decimal.NewFromInt(5), nil)
	require.NoError(t, err)
}
