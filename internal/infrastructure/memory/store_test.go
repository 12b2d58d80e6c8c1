package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

func newStore(opts ...Option) *Store {
	return New(append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func TestClientCRUD(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	repo := store.Clients()

	client := &entity.Client{Name: "Acme", Email: "a@acme.example", PaymentTerms: 30}
	require.NoError(t, repo.Create(ctx, client))
	assert.NotEqual(t, uuid.Nil, client.ID)
	assert.Equal(t, fixedNow, client.CreatedAt)

	got, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	got.Name = "Mutated"
	again, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", again.Name, "returned records must be copies")

	again.Name = "Acme Corp"
	require.NoError(t, repo.Update(ctx, again))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Acme Corp", all[0].Name)

	require.NoError(t, repo.Delete(ctx, client.ID))
	missing, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBillsByClientAndSequence(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	repo := store.Bills()
	clientID := uuid.New()

	for i, number := range []string{"BILL-2024-001", "BILL-2024-002", "BILL-2023-010"} {
		owner := clientID
		if i == 2 {
			owner = uuid.New()
		}
		bill := &entity.Bill{
			BillNumber: number,
			ClientID:   owner,
			Items:      entity.NewBillItems([]entity.LineItem{{Description: "x", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(10)}}),
		}
		bill.Recalculate()
		require.NoError(t, repo.Create(ctx, bill))
		assert.NotEqual(t, uuid.Nil, bill.Items[0].ID)
	}

	owned, err := repo.GetByClientID(ctx, clientID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	seq, err := repo.NextSequence(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 3, seq)

	require.NoError(t, repo.UpdateStatus(ctx, owned[0].ID, enum.BillStatusPaid))
	paid, err := repo.GetByID(ctx, owned[0].ID)
	require.NoError(t, err)
	assert.Equal(t, enum.BillStatusPaid, paid.Status)
}

func TestItemsAreNotAliased(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	bill := &entity.Bill{Items: entity.NewBillItems([]entity.LineItem{{Description: "original"}})}
	require.NoError(t, store.Bills().Create(ctx, bill))

	bill.Items[0].Description = "changed after create"

	got, err := store.Bills().GetByID(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Items[0].Description)
}

func TestPaymentsByBill(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	billID := uuid.New()

	require.NoError(t, store.Payments().Create(ctx, &entity.Payment{BillID: billID, Amount: decimal.NewFromInt(5)}))
	require.NoError(t, store.Payments().Create(ctx, &entity.Payment{BillID: uuid.New(), Amount: decimal.NewFromInt(7)}))

	payments, err := store.Payments().GetByBillID(ctx, billID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, fixedNow, payments[0].Date)
}

func TestServicesActiveAndCategory(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	repo := store.Services()

	require.NoError(t, repo.Create(ctx, &entity.Service{Name: "Logo", Category: enum.ServiceCategoryDesign, IsActive: true}))
	require.NoError(t, repo.Create(ctx, &entity.Service{Name: "Poster", Category: enum.ServiceCategoryDesign, IsActive: false}))
	require.NoError(t, repo.Create(ctx, &entity.Service{Name: "API", Category: enum.ServiceCategoryDevelopment, IsActive: true}))

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	design, err := repo.GetByCategory(ctx, enum.ServiceCategoryDesign)
	require.NoError(t, err)
	require.Len(t, design, 1)
	assert.Equal(t, "Logo", design[0].Name)
}

func TestSettingsSingleton(t *testing.T) {
	ctx := context.Background()
	store := newStore()

	got, err := store.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	settings := entity.DefaultSettings("owner@example.com")
	require.NoError(t, store.Settings().Save(ctx, settings))

	got, err = store.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, got.ID)
	assert.Equal(t, "owner@example.com", got.Company.Email)
}

func TestIdempotencyKeys(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	repo := store.Idempotency()
	account := uuid.New()

	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{Key: "k1", AccountID: account, ExpiresAt: fixedNow.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{Key: "k2", AccountID: account, ExpiresAt: fixedNow.Add(-time.Hour)}))

	other, err := repo.GetByKey(ctx, "k1", uuid.New())
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, repo.DeleteExpired(ctx, fixedNow))

	kept, err := repo.GetByKey(ctx, "k1", account)
	require.NoError(t, err)
	assert.NotNil(t, kept)

	expired, err := repo.GetByKey(ctx, "k2", account)
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestInjectedFailure(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	boom := errors.New("backend down")

	store.SetFailure(boom)
	_, err := store.Bills().GetAll(ctx)
	assert.ErrorIs(t, err, boom)

	store.SetFailure(nil)
	_, err = store.Bills().GetAll(ctx)
	assert.NoError(t, err)
}

func TestLatencyHonoursContext(t *testing.T) {
	store := newStore(WithLatency(time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := store.Clients().GetAll(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRecordSettlesBill(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	bill := &entity.Bill{ClientID: uuid.New(), Total: decimal.NewFromInt(100)}
	require.NoError(t, store.Bills().Create(ctx, bill))

	require.NoError(t, store.Payments().Record(ctx, &entity.Payment{BillID: bill.ID, Amount: decimal.NewFromInt(40)}, false))
	got, err := store.Bills().GetByID(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.BillStatusPending, got.Status)

	require.NoError(t, store.Payments().Record(ctx, &entity.Payment{BillID: bill.ID, Amount: decimal.NewFromInt(60)}, true))
	got, err = store.Bills().GetByID(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.BillStatusPaid, got.Status)

	payments, err := store.Payments().GetByBillID(ctx, bill.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestRecordWritesNothingOnFailure(t *testing.T) {
	ctx := context.Background()
	store := newStore()

	err := store.Payments().Record(ctx, &entity.Payment{BillID: uuid.New(), Amount: decimal.NewFromInt(10)}, true)
	require.Error(t, err)

	store.SetFailure(errors.New("backend down"))
	bill := uuid.New()
	assert.Error(t, store.Payments().Record(ctx, &entity.Payment{BillID: bill, Amount: decimal.NewFromInt(10)}, false))
	store.SetFailure(nil)

	all, err := store.Payments().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMarkConvertedOnce(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	repo := store.Quotations()
	q := &entity.Quotation{ClientID: uuid.New(), ValidUntil: fixedNow}
	require.NoError(t, repo.Create(ctx, q))

	first := uuid.New()
	linked, err := repo.MarkConverted(ctx, q.ID, first)
	require.NoError(t, err)
	assert.True(t, linked)

	linked, err = repo.MarkConverted(ctx, q.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, linked)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BillID)
	assert.Equal(t, first, *got.BillID)
}

func TestIdempotencyReserveCompleteRelease(t *testing.T) {
	ctx := context.Background()
	repo := newStore().Idempotency()
	account := uuid.New()
	key := func() *entity.IdempotencyKey {
		return &entity.IdempotencyKey{Key: "k1", AccountID: account, ExpiresAt: fixedNow.Add(time.Hour)}
	}

	ok, err := repo.Reserve(ctx, key(), fixedNow)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Reserve(ctx, key(), fixedNow)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByKey(ctx, "k1", account)
	require.NoError(t, err)
	assert.True(t, got.InFlight())

	require.NoError(t, repo.Complete(ctx, "k1", account, 201, `{"ok":true}`))
	got, err = repo.GetByKey(ctx, "k1", account)
	require.NoError(t, err)
	assert.Equal(t, 201, got.ResponseCode)

	require.NoError(t, repo.Release(ctx, "k1", account))
	ok, err = repo.Reserve(ctx, key(), fixedNow)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Reserve(ctx, key(), fixedNow.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, ok, "an expired key can be reserved again")
}
