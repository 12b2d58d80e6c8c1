package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/sangkips/billdesk-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBillDerivesFields(t *testing.T) {
	f := newFixture(t)
	c := f.client(t, "acme")

	bill, err := f.bills.CreateBill(context.Background(), &CreateBillInput{
		ClientID: c.ID,
		Items: []LineItemInput{
			{Description: "Design", Quantity: dec(3), Rate: dec(100)},
			{Description: "Print", Quantity: decimal.RequireFromString("2.5"), Rate: dec(20)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "BILL-2024-001", bill.BillNumber)
	assert.Equal(t, enum.BillStatusPending, bill.Status)
	assert.True(t, dec(350).Equal(bill.Total))
	assert.True(t, dec(300).Equal(bill.Items[0].Amount))
	assert.Equal(t, testNow.AddDate(0, 0, 30), bill.DueDate)

	second := f.bill(t, *c, 10)
	assert.Equal(t, "BILL-2024-002", second.BillNumber)
}

func TestCreateBillExplicitDueDate(t *testing.T) {
	f := newFixture(t)
	c := f.client(t, "acme")
	due := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	bill, err := f.bills.CreateBill(context.Background(), &CreateBillInput{
		ClientID: c.ID,
		Items:    []LineItemInput{{Description: "x", Quantity: dec(1), Rate: dec(1)}},
		DueDate:  &due,
	})
	require.NoError(t, err)
	assert.Equal(t, due, bill.DueDate)
}

func TestCreateBillRejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	c := f.client(t, "acme")

	_, err := f.bills.CreateBill(context.Background(), &CreateBillInput{ClientID: c.ID})
	assert.True(t, apperror.IsValidation(err))

	_, err = f.bills.CreateBill(context.Background(), &CreateBillInput{
		ClientID: c.ID,
		Items:    []LineItemInput{{Description: "x", Quantity: dec(0), Rate: dec(5)}},
	})
	require.True(t, apperror.IsValidation(err))
	assert.Equal(t, "items[0].quantity", apperror.GetAppError(err).Errors[0].Field)

	_, err = f.bills.CreateBill(context.Background(), &CreateBillInput{
		ClientID: uuid.New(),
		Items:    []LineItemInput{{Description: "x", Quantity: dec(1), Rate: dec(5)}},
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestBillDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	bill := f.bill(t, *c, 1000)

	_, err := f.payments.RecordPayment(ctx, &RecordPaymentInput{BillID: bill.ID, Amount: dec(400)})
	require.NoError(t, err)
	_, err = f.payments.RecordPayment(ctx, &RecordPaymentInput{BillID: bill.ID, Amount: dec(300)})
	require.NoError(t, err)

	detail, err := f.bills.GetBillDetail(ctx, bill.ID)
	require.NoError(t, err)

	assert.Equal(t, "acme", detail.ClientName)
	assert.Equal(t, enum.BillStatusPending, detail.EffectiveStatus)
	assert.Len(t, detail.Payments, 2)
	assert.True(t, dec(700).Equal(detail.Progress.TotalPaid))
	assert.True(t, dec(300).Equal(detail.Progress.Remaining))
	assert.True(t, dec(70).Equal(detail.Progress.PercentPaid))
}

func TestBillDetailUnknownClient(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	bill := f.bill(t, *c, 50)
	require.NoError(t, f.store.Clients().Delete(ctx, c.ID))

	detail, err := f.bills.GetBillDetail(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Client", detail.ClientName)
}

func TestListBillsFiltersOnEffectiveStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acme := f.client(t, "acme")
	globex := f.client(t, "globex")

	past := testNow.AddDate(0, 0, -1)
	overdue, err := f.bills.CreateBill(ctx, &CreateBillInput{
		ClientID: acme.ID,
		Items:    []LineItemInput{{Description: "late", Quantity: dec(1), Rate: dec(10)}},
		DueDate:  &past,
	})
	require.NoError(t, err)
	f.bill(t, *acme, 20)
	paid := f.bill(t, *globex, 30)
	_, err = f.bills.MarkAsPaid(ctx, paid.ID)
	require.NoError(t, err)

	res, err := f.bills.ListBills(ctx, &ListBillsInput{Status: "overdue", Params: pagination.DefaultPagination()})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, overdue.ID, res.Items[0].ID)
	assert.Equal(t, enum.BillStatusPending, res.Items[0].Status)

	res, err = f.bills.ListBills(ctx, &ListBillsInput{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	res, err = f.bills.ListBills(ctx, &ListBillsInput{Search: "glob", Status: "all"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "globex", res.Items[0].ClientName)

	res, err = f.bills.ListBills(ctx, &ListBillsInput{Search: "BILL-2024-00"})
	require.NoError(t, err)
	assert.Len(t, res.Items, 3)
}

func TestUpdateBill(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	bill := f.bill(t, *c, 100)

	updated, err := f.bills.UpdateBill(ctx, &UpdateBillInput{
		ID:    bill.ID,
		Items: []LineItemInput{{Description: "revised", Quantity: dec(2), Rate: dec(75)}},
	})
	require.NoError(t, err)
	assert.True(t, dec(150).Equal(updated.Total))
	assert.Equal(t, bill.BillNumber, updated.BillNumber)

	stored, err := f.bills.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "revised", stored.Items[0].Description)

	_, err = f.bills.MarkAsPaid(ctx, bill.ID)
	require.NoError(t, err)
	_, err = f.bills.UpdateBill(ctx, &UpdateBillInput{ID: bill.ID})
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestMarkAsPaidIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	bill := f.bill(t, *c, 100)

	first, err := f.bills.MarkAsPaid(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.BillStatusPaid, first.Status)

	second, err := f.bills.MarkAsPaid(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.BillStatusPaid, second.Status)
}

func TestDeleteBill(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")
	bill := f.bill(t, *c, 100)

	require.NoError(t, f.bills.DeleteBill(ctx, bill.ID))
	assert.True(t, apperror.IsNotFound(f.bills.DeleteBill(ctx, bill.ID)))
}

func TestBillServiceBackendFailure(t *testing.T) {
	f := newFixture(t)
	f.store.SetFailure(errors.New("timeout"))

	_, err := f.bills.ListBills(context.Background(), &ListBillsInput{})
	assert.True(t, apperror.IsBackendUnavailable(err))
}

func TestCreateBillRejectsSubCentRate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.client(t, "acme")

	_, err := f.bills.CreateBill(ctx, &CreateBillInput{
		ClientID: c.ID,
		Items: []LineItemInput{
			{Description: "Print", Quantity: decimal.RequireFromString("1.5"), Rate: decimal.RequireFromString("0.333")},
		},
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "items[0].rate", appErr.Errors[0].Field)
	assert.Equal(t, "must have at most 2 decimal places", appErr.Errors[0].Message)

	bills, err := f.store.Bills().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bills)
}
