package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/enum"
)

// ServiceRepository defines the interface for catalog service data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	GetAll(ctx context.Context) ([]entity.Service, error)
	GetActive(ctx context.Context) ([]entity.Service, error)
	GetByCategory(ctx context.Context, category enum.ServiceCategory) ([]entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}
