package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

type fixture struct {
	store     *memory.Store
	clients   *ClientService
	bills     *BillService
	payments  *PaymentService
	quotes    *QuotationService
	catalog   *CatalogService
	settings  *SettingsService
	dashboard *DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New(memory.WithClock(clock))

	f := &fixture{
		store:     store,
		clients:   NewClientService(store.Clients(), store.Bills(), store.Payments()),
		bills:     NewBillService(store.Bills(), store.Clients(), store.Payments()),
		payments:  NewPaymentService(store.Payments(), store.Bills(), store.Clients()),
		catalog:   NewCatalogService(store.Services()),
		settings:  NewSettingsService(store.Settings(), "owner@example.com", "initial-pass"),
		dashboard: NewDashboardService(store.Bills(), store.Clients()),
	}
	f.quotes = NewQuotationService(store.Quotations(), store.Clients(), f.bills)

	f.clients.now = clock
	f.bills.now = clock
	f.payments.now = clock
	f.quotes.now = clock
	f.catalog.now = clock
	f.settings.now = clock
	f.dashboard.now = clock
	return f
}

func (f *fixture) client(t *testing.T, name string) *entity.Client {
	t.Helper()
	c, err := f.clients.CreateClient(context.Background(), &CreateClientInput{
		Name:  name,
		Email: "billing@" + name + ".example",
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) bill(t *testing.T, c entity.Client, amounts ...int64) *entity.Bill {
	t.Helper()
	items := make([]LineItemInput, len(amounts))
	for i, a := range amounts {
		items[i] = LineItemInput{Description: "work", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(a)}
	}
	b, err := f.bills.CreateBill(context.Background(), &CreateBillInput{ClientID: c.ID, Items: items})
	require.NoError(t, err)
	return b
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
