package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/sangkips/billdesk-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientDefaultsPaymentTerms(t *testing.T) {
	f := newFixture(t)

	c, err := f.clients.CreateClient(context.Background(), &CreateClientInput{Name: "Acme", Email: "a@acme.example"})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultPaymentTerms, c.PaymentTerms)
	assert.Equal(t, testNow, c.CreatedAt)
}

func TestCreateClientValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.clients.CreateClient(context.Background(), &CreateClientInput{Email: "not-an-email", PaymentTerms: -5})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	fields := map[string]bool{}
	for _, fe := range apperror.GetAppError(err).Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
	assert.True(t, fields["payment_terms"])
}

func TestGetClientNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.clients.GetClient(context.Background(), uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateClientMergesFields(t *testing.T) {
	f := newFixture(t)
	c := f.client(t, "acme")

	terms := 14
	updated, err := f.clients.UpdateClient(context.Background(), &UpdateClientInput{ID: c.ID, PaymentTerms: &terms})
	require.NoError(t, err)
	assert.Equal(t, 14, updated.PaymentTerms)
	assert.Equal(t, "acme", updated.Name)

	bad := "nope"
	_, err = f.clients.UpdateClient(context.Background(), &UpdateClientInput{ID: c.ID, Email: &bad})
	assert.True(t, apperror.IsValidation(err))
}

func TestListClientsSearch(t *testing.T) {
	f := newFixture(t)
	f.client(t, "zeta")
	f.client(t, "acme")
	f.client(t, "globex")

	res, err := f.clients.ListClients(context.Background(), &ListClientsInput{Params: pagination.DefaultPagination()})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "acme", res.Items[0].Name)

	res, err = f.clients.ListClients(context.Background(), &ListClientsInput{Search: "GLOBEX.example"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "globex", res.Items[0].Name)
}

func TestClientSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	other := f.client(t, "other")

	paid := f.bill(t, *c, 200)
	_, err := f.bills.MarkAsPaid(ctx, paid.ID)
	require.NoError(t, err)
	pending := f.bill(t, *c, 300)
	f.bill(t, *other, 999)

	_, err = f.payments.RecordPayment(ctx, &RecordPaymentInput{BillID: pending.ID, Amount: dec(100)})
	require.NoError(t, err)

	summary, err := f.clients.GetClientSummary(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Billing.TotalBills)
	assert.True(t, dec(500).Equal(summary.Billing.TotalBilled))
	assert.True(t, dec(200).Equal(summary.Billing.PaidAmount))
	assert.True(t, dec(300).Equal(summary.Billing.PendingAmount))
	assert.Len(t, summary.Bills, 2)
	require.Len(t, summary.Payments, 1)
	assert.Equal(t, pending.BillNumber, summary.Payments[0].BillNumber)
	assert.Equal(t, "acme", summary.Payments[0].ClientName)
}

func TestClientSummaryFailsWhenAnyFetchFails(t *testing.T) {
	f := newFixture(t)
	c := f.client(t, "acme")
	f.store.SetFailure(errors.New("connection reset"))

	_, err := f.clients.GetClientSummary(context.Background(), c.ID)
	assert.True(t, apperror.IsBackendUnavailable(err))
}

func TestClientSummaryNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.clients.GetClientSummary(context.Background(), uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
