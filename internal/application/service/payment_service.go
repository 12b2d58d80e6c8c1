package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/billing"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/sangkips/billdesk-api/internal/domain/repository"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/sangkips/billdesk-api/pkg/pagination"
	"github.com/sangkips/billdesk-api/pkg/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// PaymentService records and reports payments against bills
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	billRepo    repository.BillRepository
	clientRepo  repository.ClientRepository
	now         func() time.Time

	// serializes the balance check with the insert
	recordMu sync.Mutex
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	billRepo repository.BillRepository,
	clientRepo repository.ClientRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
		clientRepo:  clientRepo,
		now:         time.Now,
	}
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	BillID uuid.UUID          `json:"bill_id" validate:"required"`
	Amount decimal.Decimal    `json:"amount" validate:"gt=0"`
	Method enum.PaymentMethod `json:"method" validate:"enum"`
	Date   *time.Time         `json:"date"`
	Notes  *string            `json:"notes"`
}

// RecordPayment stores a manual payment. The amount may not exceed the
// remaining balance of the bill; a payment that settles the balance marks
// the bill as paid.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	s.recordMu.Lock()
	defer s.recordMu.Unlock()

	var (
		bill     *entity.Bill
		payments []entity.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bill, err = s.billRepo.GetByID(gctx, input.BillID)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.paymentRepo.GetByBillID(gctx, input.BillID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeError(err)
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.Status == enum.BillStatusPaid {
		return nil, apperror.NewFieldValidationError("bill_id", "bill is already paid")
	}

	progress := billing.ComputeBillPaymentProgress(bill, payments)
	if input.Amount.GreaterThan(progress.Remaining) {
		return nil, apperror.NewFieldValidationError("amount",
			"exceeds the remaining balance of "+progress.Remaining.StringFixed(2))
	}

	now := s.now()
	payment := &entity.Payment{
		BillID:         bill.ID,
		Amount:         input.Amount,
		Method:         input.Method,
		Date:           now,
		Notes:          input.Notes,
		TransactionRef: utils.ManualTransactionRef(now),
		CreatedAt:      now,
	}
	if input.Date != nil {
		payment.Date = *input.Date
	}

	settle := progress.Remaining.Sub(input.Amount).IsZero()
	if err := s.paymentRepo.Record(ctx, payment, settle); err != nil {
		return nil, storeError(err)
	}
	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListBillPayments returns the payments of a bill, newest first
func (s *PaymentService) ListBillPayments(ctx context.Context, billID uuid.UUID) ([]entity.Payment, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, storeError(err)
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	payments, err := s.paymentRepo.GetByBillID(ctx, billID)
	if err != nil {
		return nil, storeError(err)
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
	return payments, nil
}

// ListPaymentsInput represents the list payments input
type ListPaymentsInput struct {
	Search string
	Method string
	Params *pagination.PaginationParams
}

// PaymentList is a page of payments with statistics over all payments
type PaymentList struct {
	*pagination.PaginatedResult[PaymentView]
	Stats billing.PaymentStats `json:"stats"`
}

// ListPayments searches payments by bill number, client name or method and
// filters on method. Statistics cover every payment, not just the page.
func (s *PaymentService) ListPayments(ctx context.Context, input *ListPaymentsInput) (*PaymentList, error) {
	var (
		payments []entity.Payment
		bills    []entity.Bill
		clients  []entity.Client
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payments, err = s.paymentRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bills, err = s.billRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = s.clientRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeError(err)
	}

	views := newPaymentViews(payments, bills, clients)
	views = billing.Filter(views, billing.FilterSpec[PaymentView]{
		Search: input.Search,
		SearchFields: []billing.Field[PaymentView]{
			func(v PaymentView) string { return v.BillNumber },
			func(v PaymentView) string { return v.ClientName },
			func(v PaymentView) string { return v.Method.String() },
		},
		Categories: []billing.Category[PaymentView]{
			{Field: func(v PaymentView) string { return v.Method.String() }, Value: input.Method},
		},
	})
	sortPaymentsNewestFirst(views)

	return &PaymentList{
		PaginatedResult: pagination.Paginate(views, input.Params),
		Stats:           billing.SummarizePaymentStats(payments, s.now()),
	}, nil
}
