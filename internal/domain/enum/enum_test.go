package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillStatusJSON(t *testing.T) {
	data, err := json.Marshal(BillStatusOverdue)
	require.NoError(t, err)
	assert.JSONEq(t, `"overdue"`, string(data))

	var s BillStatus
	require.NoError(t, json.Unmarshal([]byte(`"Paid"`), &s))
	assert.Equal(t, BillStatusPaid, s)

	assert.Error(t, json.Unmarshal([]byte(`"settled"`), &s))
}

func TestQuotationTransitions(t *testing.T) {
	tests := []struct {
		from, to QuotationStatus
		allowed  bool
	}{
		{QuotationStatusDraft, QuotationStatusSent, true},
		{QuotationStatusDraft, QuotationStatusAccepted, false},
		{QuotationStatusSent, QuotationStatusAccepted, true},
		{QuotationStatusSent, QuotationStatusRejected, true},
		{QuotationStatusSent, QuotationStatusDraft, false},
		{QuotationStatusAccepted, QuotationStatusRejected, false},
		{QuotationStatusRejected, QuotationStatusSent, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, QuotationStatusAccepted.IsTerminal())
	assert.False(t, QuotationStatusSent.IsTerminal())
}

func TestPaymentMethodNames(t *testing.T) {
	m, err := ParsePaymentMethod("bank transfer")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodBankTransfer, m)
	assert.Equal(t, "Bank Transfer", m.String())
	assert.Len(t, PaymentMethods(), 5)

	_, err = ParsePaymentMethod("Bitcoin")
	assert.Error(t, err)
}

func TestServiceEnumsScan(t *testing.T) {
	var c ServiceCategory
	require.NoError(t, c.Scan(int64(4)))
	assert.Equal(t, ServiceCategoryConsulting, c)

	var u ServiceUnit
	require.NoError(t, u.Scan(nil))
	assert.Equal(t, ServiceUnitProject, u)
	assert.False(t, ServiceUnit(9).IsValid())
	assert.Equal(t, "", ServiceUnit(9).String())
}
