package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillRecalculate(t *testing.T) {
	bill := &Bill{
		ID: uuid.New(),
		Items: NewBillItems([]LineItem{
			{Description: "Logo design", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(150)},
			{Description: "Hosting", Quantity: decimal.RequireFromString("1.5"), Rate: decimal.NewFromInt(40)},
		}),
		Total: decimal.NewFromInt(999),
	}

	bill.Recalculate()

	assert.True(t, decimal.NewFromInt(300).Equal(bill.Items[0].Amount))
	assert.True(t, decimal.NewFromInt(60).Equal(bill.Items[1].Amount))
	assert.True(t, decimal.NewFromInt(360).Equal(bill.Total))
	assert.Equal(t, bill.ID, bill.Items[1].BillID)
	assert.Equal(t, 1, bill.Items[1].Position)
	assert.True(t, bill.Total.Equal(SumAmounts(bill.LineItems())))
}

func TestQuotationRecalculateEmpty(t *testing.T) {
	q := &Quotation{Total: decimal.NewFromInt(5)}
	q.Recalculate()

	assert.True(t, q.Total.IsZero())
}

func TestCloneDoesNotShareItems(t *testing.T) {
	bill := &Bill{Items: NewBillItems([]LineItem{{Description: "a"}})}
	clone := bill.Clone()
	clone.Items[0].Description = "b"

	assert.Equal(t, "a", bill.Items[0].Description)

	phone := "555"
	client := &Client{Phone: &phone}
	copied := client.Clone()
	*copied.Phone = "777"
	assert.Equal(t, "555", *client.Phone)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings("owner@example.com")

	assert.Equal(t, "owner@example.com", s.Company.Email)
	assert.Equal(t, "USD", s.Preferences.Currency)
	assert.Equal(t, "en", s.Preferences.Language)
	assert.Empty(t, s.Security.PasswordHash)
}

func TestRecalculateRoundsToCents(t *testing.T) {
	item := LineItem{Quantity: decimal.RequireFromString("1.5"), Rate: decimal.RequireFromString("0.333")}
	item.Recalculate()
	assert.Equal(t, "0.5", item.Amount.String())

	line := LineItem{Quantity: decimal.NewFromInt(1), Rate: decimal.RequireFromString("0.4444")}
	bill := &Bill{Items: NewBillItems([]LineItem{line, line, line})}
	bill.Recalculate()

	assert.Equal(t, "0.44", bill.Items[0].Amount.String())
	assert.Equal(t, "1.32", bill.Total.String())
	assert.True(t, bill.Total.Equal(SumAmounts(bill.LineItems())))
}

func TestHasMoneyScale(t *testing.T) {
	assert.True(t, HasMoneyScale(decimal.RequireFromString("12.5")))
	assert.True(t, HasMoneyScale(decimal.RequireFromString("12.50")))
	assert.False(t, HasMoneyScale(decimal.RequireFromString("0.0001")))
}

func TestQuotationCloneCopiesBillLink(t *testing.T) {
	billID := uuid.New()
	q := &Quotation{BillID: &billID}
	clone := q.Clone()
	*clone.BillID = uuid.New()

	assert.Equal(t, billID, *q.BillID)
	assert.True(t, q.Converted())
	assert.False(t, (&Quotation{}).Converted())
}
