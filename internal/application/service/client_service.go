package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/billing"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/repository"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/sangkips/billdesk-api/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo  repository.ClientRepository
	billRepo    repository.BillRepository
	paymentRepo repository.PaymentRepository
	now         func() time.Time
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo repository.ClientRepository,
	billRepo repository.BillRepository,
	paymentRepo repository.PaymentRepository,
) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Address      *string `json:"address"`
	PaymentTerms int     `json:"payment_terms" validate:"gt=0"`
}

// CreateClient creates a new client. Payment terms default to 30 days.
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	if input.PaymentTerms == 0 {
		input.PaymentTerms = entity.DefaultPaymentTerms
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	client := &entity.Client{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		PaymentTerms: input.PaymentTerms,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, storeError(err)
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClientsInput represents the list clients input
type ListClientsInput struct {
	Search string
	Params *pagination.PaginationParams
}

// ListClients searches clients by name or email, ordered by name
func (s *ClientService) ListClients(ctx context.Context, input *ListClientsInput) (*pagination.PaginatedResult[entity.Client], error) {
	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	clients = billing.Filter(clients, billing.FilterSpec[entity.Client]{
		Search: input.Search,
		SearchFields: []billing.Field[entity.Client]{
			func(c entity.Client) string { return c.Name },
			func(c entity.Client) string { return c.Email },
		},
	})
	sorted := append([]entity.Client(nil), clients...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	return pagination.Paginate(sorted, input.Params), nil
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	ID           uuid.UUID `json:"-"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	PaymentTerms *int      `json:"payment_terms"`
}

// UpdateClient merges the given fields into a client
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.GetClient(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	if input.PaymentTerms != nil {
		client.PaymentTerms = *input.PaymentTerms
	}

	merged := &CreateClientInput{
		Name:         client.Name,
		Email:        client.Email,
		Phone:        client.Phone,
		Address:      client.Address,
		PaymentTerms: client.PaymentTerms,
	}
	if err := validateInput(merged); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, storeError(err)
	}
	return client, nil
}

// ClientSummary is the client detail view
type ClientSummary struct {
	Client   *entity.Client               `json:"client"`
	Billing  billing.ClientBillingSummary `json:"billing"`
	Bills    []BillView                   `json:"bills"`
	Payments []PaymentView                `json:"payments"`
}

// GetClientSummary loads a client with its bills, billing totals and payment
// history. The three collections are fetched concurrently and any failure
// fails the whole view.
func (s *ClientService) GetClientSummary(ctx context.Context, id uuid.UUID) (*ClientSummary, error) {
	var (
		client   *entity.Client
		bills    []entity.Bill
		payments []entity.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		client, err = s.clientRepo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		bills, err = s.billRepo.GetByClientID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.paymentRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeError(err)
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	now := s.now()
	names := map[uuid.UUID]string{client.ID: client.Name}
	views := newBillViews(bills, names, now)
	sortBillsNewestFirst(views)

	history := billing.ClientPayments(client.ID, bills, payments)
	paymentViews := newPaymentViews(history, bills, []entity.Client{*client})

	return &ClientSummary{
		Client:   client,
		Billing:  billing.SummarizeClientBilling(client.ID, bills, payments, now),
		Bills:    views,
		Payments: paymentViews,
	}, nil
}
