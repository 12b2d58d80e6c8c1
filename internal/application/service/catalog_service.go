package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/billing"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
	"github.com/sangkips/billdesk-api/internal/domain/repository"
	"github.com/sangkips/billdesk-api/pkg/apperror"
	"github.com/sangkips/billdesk-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// Availability filter values for ListServices
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

// CatalogService manages the catalog of billable services
type CatalogService struct {
	serviceRepo repository.ServiceRepository
	now         func() time.Time
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo, now: time.Now}
}

// CreateServiceInput represents the create service input
type CreateServiceInput struct {
	Name        string               `json:"name" validate:"required,max=255"`
	Description string               `json:"description"`
	Category    enum.ServiceCategory `json:"category" validate:"enum"`
	Price       decimal.Decimal      `json:"price" validate:"gte=0"`
	Unit        enum.ServiceUnit     `json:"unit" validate:"enum"`
}

// CreateService adds an active service to the catalog
func (s *CatalogService) CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	service := &entity.Service{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Unit:        input.Unit,
		IsActive:    true,
		CreatedAt:   s.now(),
	}
	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, storeError(err)
	}
	return service, nil
}

// GetService retrieves a service by ID
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	if service == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return service, nil
}

// ListServicesInput represents the list services input
type ListServicesInput struct {
	Search   string
	Category string
	Status   string // active, inactive or all
	Params   *pagination.PaginationParams
}

// ServiceList is a page of services with statistics over the whole catalog
type ServiceList struct {
	*pagination.PaginatedResult[entity.Service]
	Stats billing.ServiceStats `json:"stats"`
}

// ListServices searches the catalog by name, description or category and
// filters on category and availability
func (s *CatalogService) ListServices(ctx context.Context, input *ListServicesInput) (*ServiceList, error) {
	services, err := s.serviceRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	filtered := billing.Filter(services, billing.FilterSpec[entity.Service]{
		Search: input.Search,
		SearchFields: []billing.Field[entity.Service]{
			func(svc entity.Service) string { return svc.Name },
			func(svc entity.Service) string { return svc.Description },
			func(svc entity.Service) string { return svc.Category.String() },
		},
		Categories: []billing.Category[entity.Service]{
			{Field: func(svc entity.Service) string { return svc.Category.String() }, Value: input.Category},
			{Field: availability, Value: input.Status},
		},
	})

	return &ServiceList{
		PaginatedResult: pagination.Paginate(filtered, input.Params),
		Stats:           billing.SummarizeServices(services),
	}, nil
}

func availability(svc entity.Service) string {
	if svc.IsActive {
		return ServiceStatusActive
	}
	return ServiceStatusInactive
}

// ListActiveServices returns the services that can be quoted and billed
func (s *CatalogService) ListActiveServices(ctx context.Context) ([]entity.Service, error) {
	services, err := s.serviceRepo.GetActive(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return services, nil
}

// ListServicesByCategory returns the active services of one category
func (s *CatalogService) ListServicesByCategory(ctx context.Context, category string) ([]entity.Service, error) {
	parsed, err := enum.ParseServiceCategory(category)
	if err != nil {
		return nil, apperror.NewFieldValidationError("category", "is not a supported value")
	}
	services, err := s.serviceRepo.GetByCategory(ctx, parsed)
	if err != nil {
		return nil, storeError(err)
	}
	return services, nil
}

// UpdateServiceInput represents the update service input
type UpdateServiceInput struct {
	ID          uuid.UUID             `json:"-"`
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Category    *enum.ServiceCategory `json:"category"`
	Price       *decimal.Decimal      `json:"price"`
	Unit        *enum.ServiceUnit     `json:"unit"`
	IsActive    *bool                 `json:"is_active"`
}

// UpdateService merges the given fields into a service
func (s *CatalogService) UpdateService(ctx context.Context, input *UpdateServiceInput) (*entity.Service, error) {
	service, err := s.GetService(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Unit != nil {
		service.Unit = *input.Unit
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	merged := &CreateServiceInput{
		Name:        service.Name,
		Description: service.Description,
		Category:    service.Category,
		Price:       service.Price,
		Unit:        service.Unit,
	}
	if err := validateInput(merged); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, storeError(err)
	}
	return service, nil
}

// ToggleServiceActive flips whether a service is offered
func (s *CatalogService) ToggleServiceActive(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	service, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	service.IsActive = !service.IsActive
	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, storeError(err)
	}
	return service, nil
}

// DeleteService removes a service from the catalog
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}
	return storeError(s.serviceRepo.Delete(ctx, id))
}
