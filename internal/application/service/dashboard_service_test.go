package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardEmpty(t *testing.T) {
	f := newFixture(t)

	d, err := f.dashboard.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, d.Summary.TotalClients)
	assert.True(t, d.Summary.TotalRevenue.IsZero())
	assert.Empty(t, d.RecentBills)
}

func TestDashboardSummarizesBills(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acme := f.client(t, "acme")
	globex := f.client(t, "globex")

	paid := f.bill(t, *acme, 1000)
	_, err := f.bills.MarkAsPaid(ctx, paid.ID)
	require.NoError(t, err)
	f.bill(t, *globex, 250)
	for i := 0; i < 5; i++ {
		f.bill(t, *acme, 10)
	}

	d, err := f.dashboard.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Summary.TotalClients)
	assert.True(t, dec(1000).Equal(d.Summary.TotalRevenue))
	assert.Len(t, d.RecentBills, RecentBillsLimit)
	for _, b := range d.RecentBills {
		assert.NotEqual(t, "Unknown Client", b.ClientName)
		assert.Contains(t, []enum.BillStatus{enum.BillStatusPending, enum.BillStatusPaid}, b.Status)
	}
}

func TestDashboardFailsWhenStoreFails(t *testing.T) {
	f := newFixture(t)
	f.store.SetFailure(errors.New("backend down"))

	_, err := f.dashboard.GetDashboard(context.Background())
	assert.True(t, apperror.IsBackendUnavailable(err))
}
