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
	"golang.org/x/sync/errgroup"
)

// BillService handles bill-related operations
type BillService struct {
	billRepo    repository.BillRepository
	clientRepo  repository.ClientRepository
	paymentRepo repository.PaymentRepository
	now         func() time.Time

	// serializes bill numbering
	numberMu sync.Mutex
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.BillRepository,
	clientRepo repository.ClientRepository,
	paymentRepo repository.PaymentRepository,
) *BillService {
	return &BillService{
		billRepo:    billRepo,
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	ClientID uuid.UUID       `json:"client_id" validate:"required"`
	Items    []LineItemInput `json:"items" validate:"required,min=1,dive"`
	DueDate  *time.Time      `json:"due_date"`
}

// CreateBill creates a pending bill numbered BILL-<year>-<seq>. Item amounts
// and the total are derived from the items. Without a due date the bill is
// due after the client's payment terms.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, storeError(err)
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	s.numberMu.Lock()
	defer s.numberMu.Unlock()

	now := s.now()
	seq, err := s.billRepo.NextSequence(ctx, now.Year())
	if err != nil {
		return nil, storeError(err)
	}

	bill := &entity.Bill{
		BillNumber: utils.BillNumber(now.Year(), seq),
		ClientID:   client.ID,
		Items:      entity.NewBillItems(toLineItems(input.Items)),
		Status:     enum.BillStatusPending,
		CreatedAt:  now,
	}
	bill.Recalculate()

	if input.DueDate != nil {
		bill.DueDate = *input.DueDate
	} else {
		terms := client.PaymentTerms
		if terms <= 0 {
			terms = entity.DefaultPaymentTerms
		}
		bill.DueDate = now.AddDate(0, 0, terms)
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, storeError(err)
	}
	return bill, nil
}

// GetBill retrieves a bill by ID
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// BillDetail is the bill detail view
type BillDetail struct {
	BillView
	Payments []entity.Payment        `json:"payments"`
	Progress billing.PaymentProgress `json:"progress"`
}

// GetBillDetail loads a bill with its client name, payments and payment
// progress. Bill, payments and clients are fetched concurrently.
func (s *BillService) GetBillDetail(ctx context.Context, id uuid.UUID) (*BillDetail, error) {
	var (
		bill     *entity.Bill
		payments []entity.Payment
		clients  []entity.Client
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bill, err = s.billRepo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.paymentRepo.GetByBillID(gctx, id)
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
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})

	views := newBillViews([]entity.Bill{*bill}, billing.ClientNames(clients), s.now())
	return &BillDetail{
		BillView: views[0],
		Payments: payments,
		Progress: billing.ComputeBillPaymentProgress(bill, payments),
	}, nil
}

// ListBillsInput represents the list bills input
type ListBillsInput struct {
	Search string
	Status string
	Params *pagination.PaginationParams
}

// ListBills searches bills by number or client name and filters on the
// effective status. Results are newest first.
func (s *BillService) ListBills(ctx context.Context, input *ListBillsInput) (*pagination.PaginatedResult[BillView], error) {
	var (
		bills   []entity.Bill
		clients []entity.Client
	)

	g, gctx := errgroup.WithContext(ctx)
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

	views := newBillViews(bills, billing.ClientNames(clients), s.now())
	views = billing.Filter(views, billing.FilterSpec[BillView]{
		Search: input.Search,
		SearchFields: []billing.Field[BillView]{
			func(v BillView) string { return v.BillNumber },
			func(v BillView) string { return v.ClientName },
		},
		Categories: []billing.Category[BillView]{
			{Field: func(v BillView) string { return v.EffectiveStatus.String() }, Value: input.Status},
		},
	})
	sortBillsNewestFirst(views)

	return pagination.Paginate(views, input.Params), nil
}

// UpdateBillInput represents the update bill input
type UpdateBillInput struct {
	ID      uuid.UUID       `json:"-"`
	Items   []LineItemInput `json:"items" validate:"omitempty,min=1,dive"`
	DueDate *time.Time      `json:"due_date"`
}

// UpdateBill replaces the items and due date of an unpaid bill
func (s *BillService) UpdateBill(ctx context.Context, input *UpdateBillInput) (*entity.Bill, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	bill, err := s.GetBill(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if bill.Status == enum.BillStatusPaid {
		return nil, apperror.NewConflictError("Paid bills cannot be edited")
	}

	if input.Items != nil {
		bill.Items = entity.NewBillItems(toLineItems(input.Items))
	}
	if input.DueDate != nil {
		bill.DueDate = *input.DueDate
	}
	bill.Recalculate()

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, storeError(err)
	}
	return bill, nil
}

// DeleteBill removes a bill. Payments recorded against it are kept.
func (s *BillService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetBill(ctx, id); err != nil {
		return err
	}
	return storeError(s.billRepo.Delete(ctx, id))
}

// MarkAsPaid moves a pending or overdue bill to paid. Paid bills are returned unchanged.
func (s *BillService) MarkAsPaid(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill.Status == enum.BillStatusPaid {
		return bill, nil
	}

	if err := s.billRepo.UpdateStatus(ctx, id, enum.BillStatusPaid); err != nil {
		return nil, storeError(err)
	}
	bill.Status = enum.BillStatusPaid
	return bill, nil
}
