package service

import (
	"context"
	"testing"

	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) quotation(t *testing.T, c entity.Client) *entity.Quotation {
	t.Helper()
	q, err := f.quotes.CreateQuotation(context.Background(), &CreateQuotationInput{
		ClientID: c.ID,
		Items: []LineItemInput{
			{Description: "Logo", Quantity: dec(1), Rate: dec(500)},
			{Description: "Cards", Quantity: dec(2), Rate: dec(50)},
		},
	})
	require.NoError(t, err)
	return q
}

func TestCreateQuotation(t *testing.T) {
	f := newFixture(t)
	c := f.client(t, "acme")

	q := f.quotation(t, *c)

	assert.Equal(t, enum.QuotationStatusDraft, q.Status)
	assert.True(t, dec(600).Equal(q.Total))
	assert.Equal(t, testNow.Add(DefaultQuotationValidity), q.ValidUntil)
}

func TestQuotationStatusTransitions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	q := f.quotation(t, *c)

	_, err := f.quotes.UpdateQuotationStatus(ctx, q.ID, enum.QuotationStatusAccepted)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	sent, err := f.quotes.UpdateQuotationStatus(ctx, q.ID, enum.QuotationStatusSent)
	require.NoError(t, err)
	assert.Equal(t, enum.QuotationStatusSent, sent.Status)

	again, err := f.quotes.UpdateQuotationStatus(ctx, q.ID, enum.QuotationStatusSent)
	require.NoError(t, err)
	assert.Equal(t, enum.QuotationStatusSent, again.Status)

	_, err = f.quotes.UpdateQuotation(ctx, &UpdateQuotationInput{ID: q.ID})
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	rejected, err := f.quotes.UpdateQuotationStatus(ctx, q.ID, enum.QuotationStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, enum.QuotationStatusRejected, rejected.Status)

	_, err = f.quotes.UpdateQuotationStatus(ctx, q.ID, enum.QuotationStatusAccepted)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	_, err = f.quotes.UpdateQuotationStatus(ctx, q.ID, enum.QuotationStatus(9))
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateDraftQuotation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	q := f.quotation(t, *c)

	notes := "Includes two revisions"
	updated, err := f.quotes.UpdateQuotation(ctx, &UpdateQuotationInput{
		ID:    q.ID,
		Items: []LineItemInput{{Description: "Logo", Quantity: dec(1), Rate: dec(450)}},
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.True(t, dec(450).Equal(updated.Total))
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
}

func TestConvertAcceptedQuotationToBill(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	q := f.quotation(t, *c)

	_, err := f.quotes.ConvertToBill(ctx, q.ID)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	_, err = f.quotes.UpdateQuotationStatus(ctx, q.ID, enum.QuotationStatusSent)
	require.NoError(t, err)
	_, err = f.quotes.UpdateQuotationStatus(ctx, q.ID, enum.QuotationStatusAccepted)
	require.NoError(t, err)

	bill, err := f.quotes.ConvertToBill(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, bill.ClientID)
	assert.Equal(t, enum.BillStatusPending, bill.Status)
	assert.True(t, dec(600).Equal(bill.Total))
	require.Len(t, bill.Items, 2)
	assert.Equal(t, "Logo", bill.Items[0].Description)
	assert.Equal(t, "BILL-2024-001", bill.BillNumber)

	_, err = f.quotes.ConvertToBill(ctx, q.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	bills, err := f.store.Bills().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 1)

	converted, err := f.quotes.GetQuotation(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, converted.BillID)
	assert.Equal(t, bill.ID, *converted.BillID)
}

func TestListQuotations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acme := f.client(t, "acme")
	globex := f.client(t, "globex")
	f.quotation(t, *acme)
	sent := f.quotation(t, *globex)
	_, err := f.quotes.UpdateQuotationStatus(ctx, sent.ID, enum.QuotationStatusSent)
	require.NoError(t, err)

	res, err := f.quotes.ListQuotations(ctx, &ListQuotationsInput{Status: "sent"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "globex", res.Items[0].ClientName)

	res, err = f.quotes.ListQuotations(ctx, &ListQuotationsInput{Search: "ACM", Status: "all"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, acme.ID, res.Items[0].ClientID)
}

func TestDeleteQuotation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	q := f.quotation(t, *c)

	require.NoError(t, f.quotes.DeleteQuotation(ctx, q.ID))
	_, err := f.quotes.GetQuotation(ctx, q.ID)
	assert.True(t, apperror.IsNotFound(err))
}
