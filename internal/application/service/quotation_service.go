package service

import (
	"context"
	"fmt"
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
	"golang.org/x/sync/errgroup"
)

// DefaultQuotationValidity is how long a quotation stays valid when no date is given
const DefaultQuotationValidity = 30 * 24 * time.Hour

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	clientRepo    repository.ClientRepository
	billService   *BillService
	now           func() time.Time

	// one conversion at a time
	convertMu sync.Mutex
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	billService *BillService,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		billService:   billService,
		now:           time.Now,
	}
}

// CreateQuotationInput represents the create quotation input
type CreateQuotationInput struct {
	ClientID   uuid.UUID       `json:"client_id" validate:"required"`
	Items      []LineItemInput `json:"items" validate:"required,min=1,dive"`
	ValidUntil *time.Time      `json:"valid_until"`
	Notes      *string         `json:"notes"`
}

// CreateQuotation creates a draft quotation with its total derived from the items
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
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

	now := s.now()
	quotation := &entity.Quotation{
		ClientID:   client.ID,
		Items:      entity.NewQuotationItems(toLineItems(input.Items)),
		ValidUntil: now.Add(DefaultQuotationValidity),
		Status:     enum.QuotationStatusDraft,
		Notes:      input.Notes,
		CreatedAt:  now,
	}
	if input.ValidUntil != nil {
		quotation.ValidUntil = *input.ValidUntil
	}
	quotation.Recalculate()

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, storeError(err)
	}
	return quotation, nil
}

// GetQuotation retrieves a quotation by ID
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotationsInput represents the list quotations input
type ListQuotationsInput struct {
	Search string
	Status string
	Params *pagination.PaginationParams
}

// ListQuotations searches quotations by client name and filters on status
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*pagination.PaginatedResult[QuotationView], error) {
	var (
		quotations []entity.Quotation
		clients    []entity.Client
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quotations, err = s.quotationRepo.GetAll(gctx)
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

	names := billing.ClientNames(clients)
	views := make([]QuotationView, len(quotations))
	for i := range quotations {
		views[i] = QuotationView{
			Quotation:  quotations[i],
			ClientName: billing.NameOr(names, quotations[i].ClientID, billing.UnknownClient),
		}
	}

	views = billing.Filter(views, billing.FilterSpec[QuotationView]{
		Search:       input.Search,
		SearchFields: []billing.Field[QuotationView]{func(v QuotationView) string { return v.ClientName }},
		Categories: []billing.Category[QuotationView]{
			{Field: func(v QuotationView) string { return v.Status.String() }, Value: input.Status},
		},
	})
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})

	return pagination.Paginate(views, input.Params), nil
}

// UpdateQuotationInput represents the update quotation input
type UpdateQuotationInput struct {
	ID         uuid.UUID       `json:"-"`
	Items      []LineItemInput `json:"items" validate:"omitempty,min=1,dive"`
	ValidUntil *time.Time      `json:"valid_until"`
	Notes      *string         `json:"notes"`
}

// UpdateQuotation edits a draft quotation
func (s *QuotationService) UpdateQuotation(ctx context.Context, input *UpdateQuotationInput) (*entity.Quotation, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	quotation, err := s.GetQuotation(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quotation.Status != enum.QuotationStatusDraft {
		return nil, apperror.NewConflictError("Only draft quotations can be edited")
	}

	if input.Items != nil {
		quotation.Items = entity.NewQuotationItems(toLineItems(input.Items))
	}
	if input.ValidUntil != nil {
		quotation.ValidUntil = *input.ValidUntil
	}
	if input.Notes != nil {
		quotation.Notes = input.Notes
	}
	quotation.Recalculate()

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, storeError(err)
	}
	return quotation, nil
}

// UpdateQuotationStatus moves a quotation along draft -> sent -> accepted|rejected
func (s *QuotationService) UpdateQuotationStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) (*entity.Quotation, error) {
	if !status.IsValid() {
		return nil, apperror.NewFieldValidationError("status", "is not a supported value")
	}

	quotation, err := s.GetQuotation(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation.Status == status {
		return quotation, nil
	}
	if !quotation.Status.CanTransitionTo(status) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot change quotation status from %s to %s", quotation.Status, status))
	}

	if err := s.quotationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, storeError(err)
	}
	quotation.Status = status
	return quotation, nil
}

// DeleteQuotation removes a quotation
func (s *QuotationService) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetQuotation(ctx, id); err != nil {
		return err
	}
	return storeError(s.quotationRepo.Delete(ctx, id))
}

// ConvertToBill issues a pending bill with the items of an accepted
// quotation. A quotation converts at most once.
func (s *QuotationService) ConvertToBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	s.convertMu.Lock()
	defer s.convertMu.Unlock()

	quotation, err := s.GetQuotation(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation.Status != enum.QuotationStatusAccepted {
		return nil, apperror.NewConflictError("Only accepted quotations can be converted to a bill")
	}
	if quotation.Converted() {
		return nil, alreadyConverted()
	}

	items := make([]LineItemInput, len(quotation.Items))
	for i, item := range quotation.Items {
		items[i] = LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		}
	}
	bill, err := s.billService.CreateBill(ctx, &CreateBillInput{
		ClientID: quotation.ClientID,
		Items:    items,
	})
	if err != nil {
		return nil, err
	}

	linked, err := s.quotationRepo.MarkConverted(ctx, id, bill.ID)
	if err != nil || !linked {
		// the bill must not outlive a failed link
		if derr := s.billService.DeleteBill(ctx, bill.ID); derr != nil {
			return nil, storeError(derr)
		}
		if err != nil {
			return nil, storeError(err)
		}
		return nil, alreadyConverted()
	}
	return bill, nil
}

func alreadyConverted() error {
	return apperror.NewConflictError("Quotation was already converted to a bill")
}
