package party_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/metrics"
	"github.com/vladislavdragonenkov/ordering/internal/service/party"
	"github.com/vladislavdragonenkov/ordering/internal/storage/memory"
)

func newCustomers(t *testing.T) (*party.CustomerService, domain.OutboxRepository) {
	t.Helper()
	outbox := memory.NewOutboxRepository()
	svc := party.NewCustomerService(memory.NewCustomerRepository(),
		party.WithOutbox(outbox),
		party.WithMetrics(metrics.NewServiceMetricsWithRegisterer(prometheus.NewRegistry())),
	)
	return svc, outbox
}

func TestCustomerService_CreateAndGet(t *testing.T) {
	svc, outbox := newCustomers(t)

	view, err := svc.Create(party.ContactRequest{Name: " Alice ", Email: "alice@example.com", Phone: "0600000000"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, view.ID)
	require.Equal(t, "Alice", view.Name)
	require.True(t, view.Active)
	require.False(t, view.CreatedAt.IsZero())

	got, err := svc.GetByID(view.ID)
	require.NoError(t, err)
	require.Equal(t, view, got)

	pending, err := outbox.PullPending(10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, domain.AggregateTypeCustomer, pending[0].AggregateType)
	require.Equal(t, domain.EventCustomerCreated, pending[0].EventType)

	var payload party.EventPayload
	require.NoError(t, json.Unmarshal(pending[0].Payload, &payload))
	require.Equal(t, "alice@example.com", payload.Email)
}

func TestCustomerService_CreateRejectsInvalidContact(t *testing.T) {
	svc, _ := newCustomers(t)

	tests := []struct {
		name string
		req  party.ContactRequest
	}{
		{name: "empty name", req: party.ContactRequest{Email: "a@example.com"}},
		{name: "empty email", req: party.ContactRequest{Name: "A"}},
		{name: "malformed email", req: party.ContactRequest{Name: "A", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.req)
			require.ErrorIs(t, err, domain.ErrInvalidContact)
		})
	}

	list, err := svc.List()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCustomerService_UpdateActivateDelete(t *testing.T) {
	svc, outbox := newCustomers(t)
	created, err := svc.Create(party.ContactRequest{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = svc.UpdateContact(created.ID, party.ContactRequest{Name: "Bob", Email: "broken"})
	require.ErrorIs(t, err, domain.ErrInvalidContact)

	updated, err := svc.UpdateContact(created.ID, party.ContactRequest{Name: "Robert", Email: "robert@example.com", Address: "3 place Bellecour"})
	require.NoError(t, err)
	require.Equal(t, "Robert", updated.Name)
	require.Equal(t, "3 place Bellecour", updated.Address)

	deactivated, err := svc.Deactivate(created.ID)
	require.NoError(t, err)
	require.False(t, deactivated.Active)
	activated, err := svc.Activate(created.ID)
	require.NoError(t, err)
	require.True(t, activated.Active)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.GetByID(created.ID)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
	require.ErrorIs(t, svc.Delete(created.ID), domain.ErrCustomerNotFound)
	_, err = svc.Activate(uuid.New())
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)

	pending, err := outbox.PullPending(10)
	require.NoError(t, err)
	types := make([]string, 0, len(pending))
	for _, msg := range pending {
		types = append(types, msg.EventType)
	}
	require.Equal(t, []string{
		domain.EventCustomerCreated,
		domain.EventCustomerContactUpdated,
		domain.EventCustomerActiveChanged,
		domain.EventCustomerActiveChanged,
		domain.EventCustomerDeleted,
	}, types)
}

func TestSupplierService_List(t *testing.T) {
	svc := party.NewSupplierService(memory.NewSupplierRepository())

	first, err := svc.Create(party.ContactRequest{Name: "Acme", Email: "sales@acme.test"})
	require.NoError(t, err)
	second, err := svc.Create(party.ContactRequest{Name: "Globex", Email: "contact@globex.test"})
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)

	_, err = svc.GetByID(uuid.New())
	require.ErrorIs(t, err, domain.ErrSupplierNotFound)
}
